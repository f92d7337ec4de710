// SPDX-License-Identifier: MPL-2.0

package platform

import "path/filepath"

// Python interpreter command names per platform.
const (
	// VersionedLauncher is the Windows "py" launcher, which resolves an
	// installed Python 3 via its own registry lookup.
	VersionedLauncher = "py"
	// VersionedInterpreter is the versioned interpreter name on Unix-like
	// systems, where the "py" launcher does not exist.
	VersionedInterpreter = "python3"
	// GenericInterpreter is the unversioned interpreter name on all platforms.
	GenericInterpreter = "python"
)

// VersionedLauncherArgs are the arguments the Windows "py" launcher needs
// to select a Python 3 installation.
var VersionedLauncherArgs = []string{"-3"}

// VenvInterpreters returns the interpreter paths a virtual environment may
// contain beneath venvDir, in preference order, for the given GOOS.
// Windows virtual environments keep executables under Scripts; Unix-like
// ones under bin, where python3 is preferred over the unversioned name.
func VenvInterpreters(venvDir, goos string) []string {
	if goos == Windows {
		return []string{filepath.Join(venvDir, "Scripts", "python.exe")}
	}
	return []string{
		filepath.Join(venvDir, "bin", "python3"),
		filepath.Join(venvDir, "bin", "python"),
	}
}

// VersionedCandidate returns the versioned interpreter command and its
// implicit arguments for the given GOOS.
func VersionedCandidate(goos string) (string, []string) {
	if goos == Windows {
		return VersionedLauncher, VersionedLauncherArgs
	}
	return VersionedInterpreter, nil
}
