// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes the platform-specific knowledge the launcher
// needs: OS name constants for runtime.GOOS comparisons, the layout of
// Python virtual environments (Scripts vs bin), and the interpreter
// command names used when probing the system search path.
package platform
