// SPDX-License-Identifier: MPL-2.0

package interp

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"chatlaunch-cli/internal/platform"
)

// fakeFileInfo satisfies fs.FileInfo for stat fakes.
type fakeFileInfo struct {
	name string
	dir  bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0o755 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }

// fakeFS builds stat/lookPath funcs from the sets of paths and commands
// that should be considered present.
func fakeFS(files map[string]bool, commands map[string]string) (func(string) (fs.FileInfo, error), func(string) (string, error)) {
	stat := func(path string) (fs.FileInfo, error) {
		if dir, ok := files[path]; ok {
			return fakeFileInfo{name: filepath.Base(path), dir: dir}, nil
		}
		return nil, os.ErrNotExist
	}
	lookPath := func(cmd string) (string, error) {
		if resolved, ok := commands[cmd]; ok {
			return resolved, nil
		}
		return "", os.ErrNotExist
	}
	return stat, lookPath
}

func TestResolver_VenvWinsOverSearchPath(t *testing.T) {
	venvPython := filepath.Join("app", "venv", "Scripts", "python.exe")
	stat, lookPath := fakeFS(
		map[string]bool{venvPython: false},
		map[string]string{"py": `C:\Windows\py.exe`, "python": `C:\Python\python.exe`},
	)

	r := NewResolver(WithStat(stat), WithLookPath(lookPath), WithGOOS(platform.Windows))

	got, err := r.Resolve("app")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Kind != KindVenv {
		t.Errorf("Resolve() kind = %q, want %q", got.Kind, KindVenv)
	}
	if got.Command != venvPython {
		t.Errorf("Resolve() command = %q, want %q", got.Command, venvPython)
	}
}

func TestResolver_VersionedWinsOverGeneric(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		commands map[string]string
		wantCmd  string
		wantArgs []string
	}{
		{
			name:     "windows prefers py launcher",
			goos:     platform.Windows,
			commands: map[string]string{"py": `C:\Windows\py.exe`, "python": `C:\Python\python.exe`},
			wantCmd:  `C:\Windows\py.exe`,
			wantArgs: []string{"-3"},
		},
		{
			name:     "linux prefers python3",
			goos:     platform.Linux,
			commands: map[string]string{"python3": "/usr/bin/python3", "python": "/usr/bin/python"},
			wantCmd:  "/usr/bin/python3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stat, lookPath := fakeFS(nil, tt.commands)
			r := NewResolver(WithStat(stat), WithLookPath(lookPath), WithGOOS(tt.goos))

			got, err := r.Resolve("app")
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got.Kind != KindVersioned {
				t.Errorf("Resolve() kind = %q, want %q", got.Kind, KindVersioned)
			}
			if got.Command != tt.wantCmd {
				t.Errorf("Resolve() command = %q, want %q", got.Command, tt.wantCmd)
			}
			if len(got.Args) != len(tt.wantArgs) {
				t.Errorf("Resolve() args = %v, want %v", got.Args, tt.wantArgs)
			}
		})
	}
}

func TestResolver_GenericAsLastResort(t *testing.T) {
	stat, lookPath := fakeFS(nil, map[string]string{"python": "/usr/local/bin/python"})
	r := NewResolver(WithStat(stat), WithLookPath(lookPath), WithGOOS(platform.Linux))

	got, err := r.Resolve("app")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Kind != KindGeneric {
		t.Errorf("Resolve() kind = %q, want %q", got.Kind, KindGeneric)
	}
	if got.Command != "/usr/local/bin/python" {
		t.Errorf("Resolve() command = %q", got.Command)
	}
}

func TestResolver_NothingFound(t *testing.T) {
	stat, lookPath := fakeFS(nil, nil)
	r := NewResolver(WithStat(stat), WithLookPath(lookPath), WithGOOS(platform.Windows))

	_, err := r.Resolve("app")
	if err == nil {
		t.Fatal("Resolve() error = nil, want NotFoundError")
	}
	if !errors.Is(err, ErrInterpreterNotFound) {
		t.Errorf("Resolve() error does not wrap ErrInterpreterNotFound: %v", err)
	}

	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("Resolve() error is not *NotFoundError: %T", err)
	}
	// windows: one venv path, py -3, python
	if len(nfe.Probed) != 3 {
		t.Errorf("NotFoundError.Probed = %v, want 3 entries", nfe.Probed)
	}
}

func TestResolver_VenvDirectoryIsNotAnInterpreter(t *testing.T) {
	venvPython := filepath.Join("app", "venv", "Scripts", "python.exe")
	stat, lookPath := fakeFS(
		map[string]bool{venvPython: true}, // a directory, not a file
		map[string]string{"python": `C:\Python\python.exe`},
	)
	r := NewResolver(WithStat(stat), WithLookPath(lookPath), WithGOOS(platform.Windows))

	got, err := r.Resolve("app")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Kind != KindGeneric {
		t.Errorf("Resolve() kind = %q, want %q (directory must not match)", got.Kind, KindGeneric)
	}
}

func TestResolver_ProbeAll(t *testing.T) {
	stat, lookPath := fakeFS(nil, map[string]string{"python3": "/usr/bin/python3"})
	r := NewResolver(WithStat(stat), WithLookPath(lookPath), WithGOOS(platform.Linux))

	probes := r.ProbeAll("app")
	// linux: two venv paths, python3, python
	if len(probes) != 4 {
		t.Fatalf("ProbeAll() returned %d probes, want 4", len(probes))
	}

	var available int
	for _, p := range probes {
		if p.Available {
			available++
			if p.Kind != KindVersioned {
				t.Errorf("unexpected available candidate: %+v", p)
			}
			if p.Resolved != "/usr/bin/python3" {
				t.Errorf("Probe.Resolved = %q", p.Resolved)
			}
		}
	}
	if available != 1 {
		t.Errorf("ProbeAll() available = %d, want 1", available)
	}
}

func TestCandidate_Describe(t *testing.T) {
	c := Candidate{Kind: KindVersioned, Command: "py", Args: []string{"-3"}}
	if got := c.Describe(); got != "py -3" {
		t.Errorf("Describe() = %q, want %q", got, "py -3")
	}

	c = Candidate{Kind: KindGeneric, Command: "python"}
	if got := c.Describe(); got != "python" {
		t.Errorf("Describe() = %q, want %q", got, "python")
	}
}

func TestResolver_CustomVenvDir(t *testing.T) {
	venvPython := filepath.Join("app", ".venv", "bin", "python3")
	stat, lookPath := fakeFS(map[string]bool{venvPython: false}, nil)
	r := NewResolver(WithStat(stat), WithLookPath(lookPath), WithGOOS(platform.Linux))
	r.VenvDir = ".venv"

	got, err := r.Resolve("app")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got.Command != venvPython {
		t.Errorf("Resolve() command = %q, want %q", got.Command, venvPython)
	}
}
