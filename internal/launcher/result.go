// SPDX-License-Identifier: MPL-2.0

package launcher

import "chatlaunch-cli/pkg/types"

// Result is the outcome of a launch attempt. ExitCode mirrors the child
// process when one was spawned; Error is set only for infrastructure
// failures, never for a non-zero child exit.
type Result struct {
	ExitCode types.ExitCode
	Error    error
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code types.ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal child termination
// rather than launcher failures.
func NewExitCodeResult(code types.ExitCode) *Result {
	return &Result{ExitCode: code}
}
