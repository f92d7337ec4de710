// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"chatlaunch-cli/internal/interp"
	"chatlaunch-cli/internal/launcher"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidScript is returned when a script value is whitespace-only.
	ErrInvalidScript = errors.New("invalid script")
	// ErrInvalidSeedFile is returned when a seed_file value is whitespace-only.
	ErrInvalidSeedFile = errors.New("invalid seed file")
	// ErrInvalidVenvDir is returned when a venv_dir value is whitespace-only.
	ErrInvalidVenvDir = errors.New("invalid venv dir")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Script is the target program file name.
		Script string `json:"script" mapstructure:"script"`
		// SeedFile is forwarded to the script via --seed-file.
		SeedFile string `json:"seed_file" mapstructure:"seed_file"`
		// Interpreter is an explicit interpreter executable; empty means
		// probe candidates in priority order.
		Interpreter string `json:"interpreter" mapstructure:"interpreter"`
		// VenvDir is the virtual environment directory name beneath the
		// launcher directory.
		VenvDir string `json:"venv_dir" mapstructure:"venv_dir"`
		// ExtraArgs sit between the fixed arguments and the passthrough
		// arguments.
		ExtraArgs []string `json:"extra_args" mapstructure:"extra_args"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no config file exists.
// The defaults reproduce the original launcher behavior exactly.
func DefaultConfig() *Config {
	return &Config{
		Script:   launcher.DefaultScript,
		SeedFile: launcher.DefaultSeedFile,
		VenvDir:  interp.DefaultVenvDir,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// IsValid returns whether the ColorScheme is one of the recognized values.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: s}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be auto, dark, or light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// Script, SeedFile and VenvDir must not be whitespace-only; Interpreter may
// be empty (meaning "probe"); UI is delegated to UI.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if strings.TrimSpace(c.Script) == "" {
		errs = append(errs, ErrInvalidScript)
	}
	if strings.TrimSpace(c.SeedFile) == "" {
		errs = append(errs, ErrInvalidSeedFile)
	}
	if strings.TrimSpace(c.VenvDir) == "" {
		errs = append(errs, ErrInvalidVenvDir)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
