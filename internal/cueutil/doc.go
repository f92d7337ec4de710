// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides helpers for parsing and validating CUE files,
// shared by the configuration loader.
package cueutil
