// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"chatlaunch-cli/internal/interp"
	"chatlaunch-cli/pkg/types"
)

// Fixed launch defaults, matching the original launcher script.
const (
	// DefaultScript is the chat UI entry point expected next to the launcher.
	DefaultScript = "offline_chatbot_programs_modern_ui.py"
	// DefaultSeedFile is the seed prompt file forwarded via --seed-file.
	DefaultSeedFile = "THE SEED.txt"
	// seedFileFlag is the flag name the chat UI reads the seed path from.
	seedFileFlag = "--seed-file"
)

type (
	// Request captures all launch inputs as an immutable value.
	Request struct {
		// Script is the target program file name passed as the interpreter's
		// first argument.
		Script string
		// SeedFile is forwarded to the script via --seed-file.
		SeedFile string
		// ExtraArgs come from configuration and sit between the fixed
		// arguments and the passthrough arguments.
		ExtraArgs []string
		// Passthrough arguments are appended verbatim, in caller order.
		Passthrough []string
		// WorkDir is the child working directory. Empty means the
		// launcher directory (see Dir).
		WorkDir string
		// Interpreter overrides candidate probing when set.
		Interpreter *interp.Candidate

		// Stdin, Stdout and Stderr are wired straight through to the child.
		// Nil values fall back to the launcher's own streams.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// Launcher runs the chat UI through a resolved interpreter.
	Launcher struct {
		// Resolver probes interpreter candidates when the request carries
		// no explicit interpreter.
		Resolver *interp.Resolver
	}
)

// New creates a Launcher with a default resolver.
func New() *Launcher {
	return &Launcher{Resolver: interp.NewResolver()}
}

// Dir returns the directory containing the launcher executable, following
// symlinks. This is the child working directory regardless of the caller's
// current directory.
func Dir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate launcher executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve launcher path: %w", err)
	}
	return filepath.Dir(resolved), nil
}

// BuildArgs constructs the interpreter argument vector:
// the script, the seed file flag pair, configured extra arguments, then
// the passthrough arguments unmodified and in order.
func BuildArgs(req Request) []string {
	args := make([]string, 0, 3+len(req.ExtraArgs)+len(req.Passthrough))
	args = append(args, req.Script, seedFileFlag, req.SeedFile)
	args = append(args, req.ExtraArgs...)
	args = append(args, req.Passthrough...)
	return args
}

// Launch resolves an interpreter and runs the chat UI. The child inherits
// the launcher environment and the request's stdio. A non-zero child exit
// becomes the Result's exit code with no error; launcher failures get
// exit code 1 and a wrapped error.
func (l *Launcher) Launch(ctx context.Context, req Request) *Result {
	candidate, err := l.interpreter(req)
	if err != nil {
		return NewErrorResult(1, err)
	}

	argv := append(append([]string{}, candidate.Args...), BuildArgs(req)...)
	cmd := exec.CommandContext(ctx, candidate.Command, argv...)

	if req.WorkDir != "" {
		cmd.Dir = req.WorkDir
	}
	cmd.Env = os.Environ()

	cmd.Stdin = req.Stdin
	cmd.Stdout = req.Stdout
	cmd.Stderr = req.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return NewExitCodeResult(types.ExitCode(exitErr.ExitCode()))
		}
		return NewErrorResult(1, fmt.Errorf("failed to launch chat UI: %w", err))
	}

	return NewSuccessResult()
}

// Describe returns the full command line a launch would run, for dry-run
// output. Arguments containing whitespace are quoted.
func (l *Launcher) Describe(req Request) (string, error) {
	candidate, err := l.interpreter(req)
	if err != nil {
		return "", err
	}

	parts := append([]string{candidate.Command}, candidate.Args...)
	parts = append(parts, BuildArgs(req)...)

	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = quoteArg(p)
	}
	return strings.Join(quoted, " "), nil
}

// interpreter returns the request's explicit interpreter or resolves one
// relative to the request working directory.
func (l *Launcher) interpreter(req Request) (interp.Candidate, error) {
	if req.Interpreter != nil {
		return *req.Interpreter, nil
	}
	return l.Resolver.Resolve(req.WorkDir)
}

func quoteArg(s string) string {
	if strings.ContainsAny(s, " \t") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
