// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for chatlaunch.
//
// This package implements the Cobra command hierarchy for the chatlaunch
// CLI: the root launch command, interpreter diagnostics, configuration
// management, and documentation rendering.
package cmd
