// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"chatlaunch-cli/internal/config"
	"chatlaunch-cli/internal/interp"
	"chatlaunch-cli/internal/launcher"
	"chatlaunch-cli/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer — Cobra command handlers receive an App reference and
	// delegate business logic through its service interfaces.
	App struct {
		Config   ConfigProvider
		Launcher LaunchService
		stdout   io.Writer
		stderr   io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp. Tests can supply mock
	// implementations to isolate specific service behavior.
	Dependencies struct {
		Config   ConfigProvider
		Launcher LaunchService
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// LaunchRequest captures all CLI launch inputs as an immutable value.
	// It is the request-scoped data contract between the CLI layer (Cobra
	// handlers) and the LaunchService implementation.
	LaunchRequest struct {
		// Script is the target program file name.
		Script string
		// SeedFile is forwarded via --seed-file.
		SeedFile string
		// Interpreter is an explicit interpreter executable; empty means
		// probe candidates in priority order.
		Interpreter string
		// VenvDir is the virtual environment directory name.
		VenvDir string
		// ExtraArgs come from configuration.
		ExtraArgs []string
		// Passthrough arguments are appended verbatim, in caller order.
		Passthrough []string
		// Workdir overrides the launcher-directory default.
		Workdir string
		// DryRun prints the command line without spawning.
		DryRun bool

		// Stdout and Stderr receive the child's output (and the dry-run
		// command line). Nil means the launcher's own streams.
		Stdout io.Writer
		Stderr io.Writer
	}

	// LaunchResult contains launch outcomes.
	LaunchResult struct {
		ExitCode types.ExitCode
	}

	// LaunchService performs a resolved launch request.
	LaunchService interface {
		Launch(ctx context.Context, req LaunchRequest) (LaunchResult, error)
	}

	// ConfigProvider loads configuration using explicit options.
	// This abstraction enables testing with mock implementations.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// defaultLaunchService implements LaunchService on internal/launcher.
	defaultLaunchService struct{}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Launcher == nil {
		deps.Launcher = &defaultLaunchService{}
	}

	return &App{
		Config:   deps.Config,
		Launcher: deps.Launcher,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}

// Launch resolves the working directory and interpreter and runs the chat UI.
// DryRun requests write the command line to the request's stdout instead of
// spawning.
func (s *defaultLaunchService) Launch(ctx context.Context, req LaunchRequest) (LaunchResult, error) {
	workdir := req.Workdir
	if workdir == "" {
		dir, err := launcher.Dir()
		if err != nil {
			return LaunchResult{ExitCode: 1}, err
		}
		workdir = dir
	}

	resolver := interp.NewResolver()
	if req.VenvDir != "" {
		resolver.VenvDir = req.VenvDir
	}
	l := &launcher.Launcher{Resolver: resolver}

	launchReq := launcher.Request{
		Script:      req.Script,
		SeedFile:    req.SeedFile,
		ExtraArgs:   req.ExtraArgs,
		Passthrough: req.Passthrough,
		WorkDir:     workdir,
		Stdout:      req.Stdout,
		Stderr:      req.Stderr,
	}
	if req.Interpreter != "" {
		launchReq.Interpreter = &interp.Candidate{Kind: interp.KindGeneric, Command: req.Interpreter}
	}

	if req.DryRun {
		line, err := l.Describe(launchReq)
		if err != nil {
			return LaunchResult{ExitCode: 1}, err
		}
		out := req.Stdout
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprintln(out, line)
		return LaunchResult{}, nil
	}

	result := l.Launch(ctx, launchReq)
	return LaunchResult{ExitCode: result.ExitCode}, result.Error
}
