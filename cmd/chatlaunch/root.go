// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// dryRun prints the resolved command line without spawning
	dryRun bool
	// workdirOverride replaces the launcher-directory working directory
	workdirOverride string
	// scriptOverride replaces the configured target script
	scriptOverride string
	// seedFileOverride replaces the configured seed file
	seedFileOverride string
	// interpreterOverride bypasses candidate probing
	interpreterOverride string
)

// newRootCommand builds the chatlaunch command tree.
func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chatlaunch [-- args...]",
		Short: "Launcher for the Offline LM Studio Programs UI",
		Long: TitleStyle.Render("chatlaunch") + SubtitleStyle.Render(" - Launcher for the Offline LM Studio Programs UI") + `

chatlaunch locates a Python interpreter and starts the chat UI from the
launcher's own directory, seeding the welcome message from a seed file.

Interpreter candidates are probed in strict priority order:
  1. A virtual environment next to the launcher (venv/)
  2. The versioned resolver on PATH (py -3 on Windows, python3 elsewhere)
  3. The generic python command on PATH

Arguments after ` + CmdStyle.Render("--") + ` are forwarded to the chat UI unmodified:

  chatlaunch -- --show-seed --seed-delay 500`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(app, cmd, args)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/chatlaunch/config.cue)")

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the resolved command line without launching")
	rootCmd.Flags().StringVar(&workdirOverride, "workdir", "", "working directory for the chat UI (default: launcher directory)")
	rootCmd.Flags().StringVar(&scriptOverride, "script", "", "target script file name")
	rootCmd.Flags().StringVar(&seedFileOverride, "seed-file", "", "seed prompt file forwarded to the chat UI")
	rootCmd.Flags().StringVar(&interpreterOverride, "interpreter", "", "explicit interpreter executable (skips probing)")

	rootCmd.AddCommand(newDoctorCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newDocsCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// Use fang.Execute for enhanced Cobra styling.
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version.
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}
