// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"chatlaunch-cli/internal/interp"
	"chatlaunch-cli/internal/launcher"
)

// Icons for doctor output
var (
	doctorSuccessIcon = SuccessStyle.Render("✓")
	doctorErrorIcon   = ErrorStyle.Render("✗")
	doctorWarnIcon    = WarningStyle.Render("!")
)

// newDoctorCommand builds the doctor command, which reports what the
// launcher can see: interpreter candidates, the target script and the
// seed file.
func newDoctorCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the launcher environment",
		Long: TitleStyle.Render("chatlaunch doctor") + SubtitleStyle.Render(" - Diagnose the launcher environment") + `

Probes every interpreter candidate in priority order and checks that the
chat UI script and the seed file exist in the working directory. Nothing
is launched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(app, cmd)
		},
	}
}

func runDoctor(app *App, cmd *cobra.Command) error {
	cfg, err := loadConfigOrDefaults(app, cmd)
	if err != nil {
		return err
	}

	workdir := workdirOverride
	if workdir == "" {
		dir, err := launcher.Dir()
		if err != nil {
			return err
		}
		workdir = dir
	}

	fmt.Fprintln(app.stdout, TitleStyle.Render("Launcher environment"))
	fmt.Fprintf(app.stdout, "  Working directory: %s\n\n", CmdStyle.Render(workdir))

	fmt.Fprintln(app.stdout, TitleStyle.Render("Interpreter candidates")+SubtitleStyle.Render(" (first available wins)"))
	resolver := interp.NewResolver()
	if cfg.VenvDir != "" {
		resolver.VenvDir = cfg.VenvDir
	}
	found := false
	for _, probe := range resolver.ProbeAll(workdir) {
		switch {
		case probe.Available && !found:
			fmt.Fprintf(app.stdout, "  %s %s %s\n", doctorSuccessIcon, probe.Describe(), SuccessStyle.Render("(selected)"))
			found = true
		case probe.Available:
			fmt.Fprintf(app.stdout, "  %s %s %s\n", doctorSuccessIcon, probe.Describe(), SubtitleStyle.Render("(shadowed)"))
		default:
			fmt.Fprintf(app.stdout, "  %s %s\n", doctorErrorIcon, probe.Describe())
		}
	}
	if !found {
		fmt.Fprintf(app.stdout, "\n  %s No Python interpreter available\n", doctorErrorIcon)
	}

	fmt.Fprintln(app.stdout)
	fmt.Fprintln(app.stdout, TitleStyle.Render("Files"))
	printFileCheck(app, "Chat UI script", filepath.Join(workdir, cfg.Script), doctorErrorIcon)
	// A missing seed file is a warning only: the chat UI still starts,
	// it just skips the welcome message.
	printFileCheck(app, "Seed file", filepath.Join(workdir, cfg.SeedFile), doctorWarnIcon)

	if !found {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: 1}
	}
	return nil
}

func printFileCheck(app *App, label, path, missingIcon string) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		fmt.Fprintf(app.stdout, "  %s %s: %s\n", doctorSuccessIcon, label, CmdStyle.Render(path))
		return
	}
	fmt.Fprintf(app.stdout, "  %s %s: %s %s\n", missingIcon, label, CmdStyle.Render(path), SubtitleStyle.Render("(missing)"))
}
