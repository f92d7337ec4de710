// SPDX-License-Identifier: MPL-2.0

// Package launcher builds and runs the chat UI child process.
//
// The launcher composes a fixed argument prefix (the target script and the
// seed file flag) with caller-supplied passthrough arguments, runs the
// resolved interpreter from the launcher directory, and propagates the
// child's exit status unchanged.
package launcher
