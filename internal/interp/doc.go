// SPDX-License-Identifier: MPL-2.0

// Package interp locates a Python interpreter for the chat UI.
//
// Candidates are probed in strict priority order: a virtual environment
// beneath the launcher directory, then the versioned resolver on the
// system search path, then the generic interpreter. The first candidate
// that exists wins and no further candidates are checked.
package interp
