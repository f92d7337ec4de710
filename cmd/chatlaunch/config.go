// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chatlaunch-cli/internal/config"
	"chatlaunch-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `chatlaunch config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage chatlaunch configuration",
		Long: `Manage chatlaunch configuration.

Configuration is stored in:
  - Linux: ~/.config/chatlaunch/config.cue
  - macOS: ~/Library/Application Support/chatlaunch/config.cue
  - Windows: %APPDATA%\chatlaunch\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cmd.Context(), app, args[0], args[1])
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
			if err != nil {
				return err
			}

			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		if rendered, renderErr := issue.Get(issue.ConfigLoadFailedId).Render("auto"); renderErr == nil {
			fmt.Fprint(app.stderr, rendered)
		}
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	// The provider does not cache resolved paths; derive the file path from
	// the standard config directory.
	if cfgPath, ok := resolvedConfigPath(); ok {
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(app.stdout)

	fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("script"), valueStyle.Render(cfg.Script))
	fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("seed_file"), valueStyle.Render(cfg.SeedFile))
	if cfg.Interpreter != "" {
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("interpreter"), valueStyle.Render(cfg.Interpreter))
	} else {
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("interpreter"), SubtitleStyle.Render("(probe candidates)"))
	}
	fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("venv_dir"), valueStyle.Render(cfg.VenvDir))

	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("extra_args"))
	if len(cfg.ExtraArgs) == 0 {
		fmt.Fprintf(app.stdout, "  %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		for _, arg := range cfg.ExtraArgs {
			fmt.Fprintf(app.stdout, "  - %s\n", valueStyle.Render(arg))
		}
	}

	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(app.stdout, "  color_scheme: %s\n", valueStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Fprintf(app.stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err := config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n",
		SuccessStyle.Render("✓"), filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

func setConfigValue(ctx context.Context, app *App, key, value string) error {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{})
	if err != nil {
		return err
	}

	switch key {
	case "script":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("invalid script: must not be blank")
		}
		cfg.Script = value

	case "seed_file":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("invalid seed_file: must not be blank")
		}
		cfg.SeedFile = value

	case "interpreter":
		// Empty restores candidate probing.
		cfg.Interpreter = value

	case "venv_dir":
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("invalid venv_dir: must not be blank")
		}
		cfg.VenvDir = value

	case "ui.verbose":
		cfg.UI.Verbose = value == "true" || value == "1"

	case "ui.color_scheme":
		scheme := config.ColorScheme(value)
		if valid, errs := scheme.IsValid(); !valid {
			return errs[0]
		}
		cfg.UI.ColorScheme = scheme

	default:
		return fmt.Errorf("unknown configuration key: %s\nValid keys: script, seed_file, interpreter, venv_dir, ui.verbose, ui.color_scheme", key)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(app.stdout, "%s Set %s = %s\n", SuccessStyle.Render("✓"), key, value)
	return nil
}

// resolvedConfigPath returns the standard config file path when the file
// exists on disk.
func resolvedConfigPath() (string, bool) {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return "", false
	}
	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	info, err := os.Stat(cfgPath)
	if err != nil || info.IsDir() {
		return "", false
	}
	return cfgPath, true
}
