// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chatlaunch-cli/internal/config"
	"chatlaunch-cli/internal/interp"
	"chatlaunch-cli/internal/issue"
)

// newLaunchLogger builds the logger used for verbose launch output.
// Debug messages are suppressed unless verbose mode is on.
func newLaunchLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "chatlaunch",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfigOrDefaults loads configuration for a command run. Without an
// explicit --config path a load failure degrades to defaults with a warning;
// with one it is an error, because the user asked for that file specifically.
func loadConfigOrDefaults(app *App, cmd *cobra.Command) (*config.Config, error) {
	cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err == nil {
		return cfg, nil
	}

	if cfgFile != "" {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(cfgFile).
			WithSuggestion("Run " + CmdStyle.Render("chatlaunch config init") + " to create a default config file").
			WithSuggestion("Check the file against " + CmdStyle.Render("chatlaunch config show")).
			Wrap(err).
			BuildError()
	}

	fmt.Fprintln(app.stderr, WarningStyle.Render(fmt.Sprintf("Warning: failed to load config, using defaults: %v", err)))
	return config.DefaultConfig(), nil
}

// buildLaunchRequest merges command-line overrides over the loaded
// configuration. Flags always win; passthrough args are forwarded verbatim.
func buildLaunchRequest(app *App, cfg *config.Config, passthrough []string) LaunchRequest {
	req := LaunchRequest{
		Script:      cfg.Script,
		SeedFile:    cfg.SeedFile,
		Interpreter: cfg.Interpreter,
		VenvDir:     cfg.VenvDir,
		ExtraArgs:   cfg.ExtraArgs,
		Passthrough: passthrough,
		Workdir:     workdirOverride,
		DryRun:      dryRun,
		Stdout:      app.stdout,
		Stderr:      app.stderr,
	}
	if scriptOverride != "" {
		req.Script = scriptOverride
	}
	if seedFileOverride != "" {
		req.SeedFile = seedFileOverride
	}
	if interpreterOverride != "" {
		req.Interpreter = interpreterOverride
	}
	return req
}

// runLaunch is the root command handler: resolve configuration, probe for an
// interpreter, and hand control to the chat UI. The child's exit code becomes
// the launcher's exit code.
func runLaunch(app *App, cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigOrDefaults(app, cmd)
	if err != nil {
		return err
	}
	if cfg.UI.Verbose {
		verbose = true
	}
	logger := newLaunchLogger(app.stderr)

	req := buildLaunchRequest(app, cfg, args)
	logger.Debug("resolved launch request",
		"script", req.Script,
		"seed_file", req.SeedFile,
		"venv_dir", req.VenvDir,
		"interpreter", req.Interpreter,
		"passthrough", len(req.Passthrough),
		"dry_run", req.DryRun,
	)

	res, err := app.Launcher.Launch(cmd.Context(), req)
	if err != nil {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true

		if errors.Is(err, interp.ErrInterpreterNotFound) {
			// The original launcher printed this diagnostic on standard
			// output before exiting; keep that contract.
			fmt.Fprintln(app.stdout, "Python was not found. Install Python 3 or create a venv next to the launcher.")
			if rendered, renderErr := issue.Get(issue.InterpreterNotFoundId).Render("auto"); renderErr == nil {
				fmt.Fprint(app.stderr, rendered)
			} else {
				logger.Debug("issue rendering failed", "err", renderErr)
			}
			return &ExitError{Code: 1}
		}

		ae := issue.NewErrorContext().
			WithOperation("launch chat UI").
			WithResource(req.Script).
			WithSuggestion("Run " + CmdStyle.Render("chatlaunch doctor") + " to inspect the launcher environment").
			WithSuggestion("Run with " + CmdStyle.Render("--verbose") + " for the full error chain").
			Wrap(err).
			Build()
		fmt.Fprintln(app.stderr, ErrorStyle.Render("Error:")+" "+ae.Format(verbose))
		code := res.ExitCode
		if code.IsSuccess() {
			code = 1
		}
		return &ExitError{Code: code, Err: err}
	}

	if !res.ExitCode.IsSuccess() {
		// The child failed on its own terms; its output already explains why.
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		logger.Debug("chat UI exited", "code", res.ExitCode)
		return &ExitError{Code: res.ExitCode}
	}

	logger.Debug("chat UI exited", "code", res.ExitCode)
	return nil
}
