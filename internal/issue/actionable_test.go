// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "locate Python interpreter",
			},
			expected: "failed to locate Python interpreter",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "read seed file",
				Resource:  "THE SEED.txt",
			},
			expected: "failed to read seed file: THE SEED.txt",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "launch chat UI",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to launch chat UI: permission denied",
		},
		{
			name: "operation with resource and cause",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "config.cue",
				Cause:     errors.New("syntax error"),
			},
			expected: "failed to load configuration: config.cue: syntax error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	ae := &ActionableError{
		Operation:   "locate Python interpreter",
		Suggestions: []string{"Install Python 3", "Create a venv next to the launcher"},
		Cause:       errors.New("all candidates missing"),
	}

	short := ae.Format(false)
	if !strings.Contains(short, "• Install Python 3") {
		t.Errorf("Format(false) missing suggestion: %q", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("Format(false) should not include error chain: %q", short)
	}

	long := ae.Format(true)
	if !strings.Contains(long, "Error chain:") {
		t.Errorf("Format(true) missing error chain: %q", long)
	}
	if !strings.Contains(long, "1. all candidates missing") {
		t.Errorf("Format(true) missing chain entry: %q", long)
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	ae := WrapWithOperation(cause, "launch chat UI")
	if !errors.Is(ae, cause) {
		t.Error("errors.Is() failed to find wrapped cause")
	}
}

func TestWrapWithOperation_NilError(t *testing.T) {
	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}
}

func TestErrorContext_Build(t *testing.T) {
	ae := NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		WithSuggestion("Run 'chatlaunch config init' to create one").
		Wrap(errors.New("not found")).
		Build()

	if ae == nil {
		t.Fatal("Build() = nil, want error")
	}
	if ae.Operation != "load configuration" || ae.Resource != "config.cue" {
		t.Errorf("Build() context mismatch: %+v", ae)
	}
	if !ae.HasSuggestions() {
		t.Error("HasSuggestions() = false, want true")
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}
