// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"chatlaunch-cli/internal/config"
	"chatlaunch-cli/internal/interp"
	"chatlaunch-cli/internal/launcher"
	"chatlaunch-cli/pkg/types"
)

type (
	fakeConfigProvider struct {
		cfg *config.Config
		err error
	}

	fakeLaunchService struct {
		got LaunchRequest
		res LaunchResult
		err error
	}
)

func (p *fakeConfigProvider) Load(_ context.Context, _ config.LoadOptions) (*config.Config, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.cfg, nil
}

func (s *fakeLaunchService) Launch(_ context.Context, req LaunchRequest) (LaunchResult, error) {
	s.got = req
	return s.res, s.err
}

// resetFlags restores package-level flag state after a test.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		verbose = false
		cfgFile = ""
		dryRun = false
		workdirOverride = ""
		scriptOverride = ""
		seedFileOverride = ""
		interpreterOverride = ""
	})
}

func newTestApp(provider ConfigProvider, service LaunchService) (*App, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	app := NewApp(Dependencies{
		Config:   provider,
		Launcher: service,
		Stdout:   stdout,
		Stderr:   stderr,
	})
	return app, stdout, stderr
}

func TestRunLaunchForwardsPassthrough(t *testing.T) {
	resetFlags(t)

	service := &fakeLaunchService{}
	app, stdout, _ := newTestApp(&fakeConfigProvider{cfg: config.DefaultConfig()}, service)

	err := runLaunch(app, &cobra.Command{}, []string{"--show-seed", "--seed-delay", "500"})
	if err != nil {
		t.Fatalf("runLaunch() error = %v", err)
	}

	if service.got.Script != launcher.DefaultScript {
		t.Errorf("Script = %q, want %q", service.got.Script, launcher.DefaultScript)
	}
	if service.got.SeedFile != launcher.DefaultSeedFile {
		t.Errorf("SeedFile = %q, want %q", service.got.SeedFile, launcher.DefaultSeedFile)
	}
	want := []string{"--show-seed", "--seed-delay", "500"}
	if len(service.got.Passthrough) != len(want) {
		t.Fatalf("Passthrough = %v, want %v", service.got.Passthrough, want)
	}
	for i, arg := range want {
		if service.got.Passthrough[i] != arg {
			t.Errorf("Passthrough[%d] = %q, want %q", i, service.got.Passthrough[i], arg)
		}
	}
	if service.got.Stdout != stdout {
		t.Error("child stdout should be wired to the app stdout")
	}
}

func TestRunLaunchFlagOverrides(t *testing.T) {
	resetFlags(t)
	scriptOverride = "other_ui.py"
	seedFileOverride = "alt-seed.txt"
	interpreterOverride = "/opt/python/bin/python3"
	workdirOverride = "/tmp/elsewhere"
	dryRun = true

	service := &fakeLaunchService{}
	app, _, _ := newTestApp(&fakeConfigProvider{cfg: config.DefaultConfig()}, service)

	if err := runLaunch(app, &cobra.Command{}, nil); err != nil {
		t.Fatalf("runLaunch() error = %v", err)
	}

	if service.got.Script != "other_ui.py" {
		t.Errorf("Script = %q, want flag override", service.got.Script)
	}
	if service.got.SeedFile != "alt-seed.txt" {
		t.Errorf("SeedFile = %q, want flag override", service.got.SeedFile)
	}
	if service.got.Interpreter != "/opt/python/bin/python3" {
		t.Errorf("Interpreter = %q, want flag override", service.got.Interpreter)
	}
	if service.got.Workdir != "/tmp/elsewhere" {
		t.Errorf("Workdir = %q, want flag override", service.got.Workdir)
	}
	if !service.got.DryRun {
		t.Error("DryRun should be forwarded")
	}
}

func TestRunLaunchChildExitCode(t *testing.T) {
	resetFlags(t)

	service := &fakeLaunchService{res: LaunchResult{ExitCode: 7}}
	app, _, _ := newTestApp(&fakeConfigProvider{cfg: config.DefaultConfig()}, service)

	err := runLaunch(app, &cobra.Command{}, nil)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("runLaunch() error = %v, want *ExitError", err)
	}
	if exitErr.Code != types.ExitCode(7) {
		t.Errorf("Code = %d, want 7", exitErr.Code)
	}
	if exitErr.Err != nil {
		t.Errorf("a plain child exit should carry no error, got %v", exitErr.Err)
	}
}

func TestRunLaunchInterpreterNotFound(t *testing.T) {
	resetFlags(t)

	service := &fakeLaunchService{
		res: LaunchResult{ExitCode: 1},
		err: &interp.NotFoundError{Probed: []string{"venv/bin/python3", "python3", "python"}},
	}
	app, stdout, _ := newTestApp(&fakeConfigProvider{cfg: config.DefaultConfig()}, service)

	err := runLaunch(app, &cobra.Command{}, nil)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("runLaunch() error = %v, want *ExitError", err)
	}
	if exitErr.Code != types.ExitCode(1) {
		t.Errorf("Code = %d, want 1", exitErr.Code)
	}
	if !strings.Contains(stdout.String(), "Python was not found") {
		t.Errorf("diagnostic should go to standard output, got %q", stdout.String())
	}
}

func TestRunLaunchInfrastructureFailure(t *testing.T) {
	resetFlags(t)

	service := &fakeLaunchService{
		res: LaunchResult{ExitCode: 1},
		err: errors.New("fork/exec: permission denied"),
	}
	app, stdout, stderr := newTestApp(&fakeConfigProvider{cfg: config.DefaultConfig()}, service)

	err := runLaunch(app, &cobra.Command{}, nil)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("runLaunch() error = %v, want *ExitError", err)
	}
	if exitErr.Code != types.ExitCode(1) {
		t.Errorf("Code = %d, want 1", exitErr.Code)
	}
	if !strings.Contains(stderr.String(), "launch chat UI") {
		t.Errorf("launch failures should be reported on stderr, got %q", stderr.String())
	}
	if strings.Contains(stdout.String(), "permission denied") {
		t.Error("launch failures should not leak onto standard output")
	}
}

func TestLoadConfigOrDefaults(t *testing.T) {
	t.Run("load failure degrades to defaults with warning", func(t *testing.T) {
		resetFlags(t)

		app, _, stderr := newTestApp(&fakeConfigProvider{err: errors.New("corrupt config")}, &fakeLaunchService{})

		cfg, err := loadConfigOrDefaults(app, &cobra.Command{})
		if err != nil {
			t.Fatalf("loadConfigOrDefaults() error = %v", err)
		}
		if cfg.Script != launcher.DefaultScript {
			t.Errorf("Script = %q, want default", cfg.Script)
		}
		if !strings.Contains(stderr.String(), "using defaults") {
			t.Errorf("expected a fallback warning on stderr, got %q", stderr.String())
		}
	})

	t.Run("explicit config path failure is fatal", func(t *testing.T) {
		resetFlags(t)
		cfgFile = "/nonexistent/config.cue"

		app, _, _ := newTestApp(&fakeConfigProvider{err: errors.New("no such file")}, &fakeLaunchService{})

		if _, err := loadConfigOrDefaults(app, &cobra.Command{}); err == nil {
			t.Fatal("an explicit --config path that fails to load should be an error")
		}
	})

	t.Run("config verbose turns on verbose mode", func(t *testing.T) {
		resetFlags(t)

		cfg := config.DefaultConfig()
		cfg.UI.Verbose = true
		app, _, _ := newTestApp(&fakeConfigProvider{cfg: cfg}, &fakeLaunchService{})

		if err := runLaunch(app, &cobra.Command{}, nil); err != nil {
			t.Fatalf("runLaunch() error = %v", err)
		}
		if !verbose {
			t.Error("config ui.verbose should enable verbose mode")
		}
	})
}
