// SPDX-License-Identifier: MPL-2.0

package interp

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"chatlaunch-cli/internal/platform"
)

// Candidate kinds, in priority order.
const (
	// KindVenv is a virtual-environment interpreter beneath the launcher directory.
	KindVenv Kind = "venv"
	// KindVersioned is the versioned resolver on the search path (py -3 / python3).
	KindVersioned Kind = "versioned"
	// KindGeneric is the unversioned python command on the search path.
	KindGeneric Kind = "generic"
)

// DefaultVenvDir is the virtual environment directory name probed beneath
// the launcher directory.
const DefaultVenvDir = "venv"

type (
	// Kind classifies an interpreter candidate.
	Kind string

	// Candidate is one possible interpreter location.
	Candidate struct {
		// Kind classifies where the candidate comes from.
		Kind Kind
		// Command is the executable path (venv) or command name (search path).
		Command string
		// Args are implicit arguments the candidate needs before the script
		// (the Windows py launcher takes -3 to select Python 3).
		Args []string
	}

	// Probe is a Candidate annotated with its availability on this host.
	Probe struct {
		Candidate
		// Available reports whether the candidate exists.
		Available bool
		// Resolved is the absolute executable path when available.
		Resolved string
	}

	// Resolver probes interpreter candidates. The zero value is not usable;
	// construct with NewResolver. The lookup functions are injectable so
	// priority ordering is testable without touching the host system.
	Resolver struct {
		// VenvDir is the venv directory name beneath the base directory.
		VenvDir string

		lookPath func(string) (string, error)
		stat     func(string) (fs.FileInfo, error)
		goos     string
	}

	// Option configures a Resolver.
	Option func(*Resolver)
)

// WithLookPath overrides the search-path lookup (tests).
func WithLookPath(f func(string) (string, error)) Option {
	return func(r *Resolver) { r.lookPath = f }
}

// WithStat overrides the filesystem stat (tests).
func WithStat(f func(string) (fs.FileInfo, error)) Option {
	return func(r *Resolver) { r.stat = f }
}

// WithGOOS overrides the detected operating system (tests).
func WithGOOS(goos string) Option {
	return func(r *Resolver) { r.goos = goos }
}

// NewResolver creates a Resolver backed by the real OS lookups.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		VenvDir:  DefaultVenvDir,
		lookPath: exec.LookPath,
		stat:     os.Stat,
		goos:     runtime.GOOS,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Candidates returns the ordered candidate list for baseDir without
// probing availability.
func (r *Resolver) Candidates(baseDir string) []Candidate {
	var out []Candidate

	for _, p := range platform.VenvInterpreters(r.venvDir(baseDir), r.goos) {
		out = append(out, Candidate{Kind: KindVenv, Command: p})
	}

	cmd, args := platform.VersionedCandidate(r.goos)
	out = append(out, Candidate{Kind: KindVersioned, Command: cmd, Args: args})

	out = append(out, Candidate{Kind: KindGeneric, Command: platform.GenericInterpreter})

	return out
}

// Resolve returns the first available candidate for baseDir. When no
// candidate exists it returns a NotFoundError wrapping ErrInterpreterNotFound.
func (r *Resolver) Resolve(baseDir string) (Candidate, error) {
	var probed []string

	for _, c := range r.Candidates(baseDir) {
		resolved, ok := r.locate(c)
		if ok {
			c.Command = resolved
			return c, nil
		}
		probed = append(probed, c.Describe())
	}

	return Candidate{}, &NotFoundError{Probed: probed}
}

// ProbeAll reports every candidate with its availability, for diagnostics.
func (r *Resolver) ProbeAll(baseDir string) []Probe {
	candidates := r.Candidates(baseDir)
	probes := make([]Probe, 0, len(candidates))

	for _, c := range candidates {
		resolved, ok := r.locate(c)
		probes = append(probes, Probe{Candidate: c, Available: ok, Resolved: resolved})
	}

	return probes
}

// locate checks a single candidate. Venv candidates are checked on disk;
// search-path candidates go through LookPath.
func (r *Resolver) locate(c Candidate) (string, bool) {
	if c.Kind == KindVenv {
		info, err := r.stat(c.Command)
		if err != nil || info.IsDir() {
			return "", false
		}
		return c.Command, true
	}

	resolved, err := r.lookPath(c.Command)
	if err != nil {
		return "", false
	}
	return resolved, true
}

func (r *Resolver) venvDir(baseDir string) string {
	dir := r.VenvDir
	if dir == "" {
		dir = DefaultVenvDir
	}
	if baseDir == "" {
		return dir
	}
	return filepath.Join(baseDir, dir)
}

// Describe returns a human-readable form of the candidate, including
// implicit arguments.
func (c Candidate) Describe() string {
	if len(c.Args) == 0 {
		return c.Command
	}
	return fmt.Sprintf("%s %s", c.Command, strings.Join(c.Args, " "))
}
