// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"testing"

	"chatlaunch-cli/pkg/types"
)

func TestExitErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "code only",
			err:  &ExitError{Code: 7},
			want: "exit status 7",
		},
		{
			name: "wrapped error wins",
			err:  &ExitError{Code: 1, Err: errors.New("boom")},
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := fmt.Errorf("handler: %w", &ExitError{Code: 2, Err: cause})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal("errors.As should find the ExitError through wrapping")
	}
	if exitErr.Code != types.ExitCode(2) {
		t.Errorf("Code = %d, want 2", exitErr.Code)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}
