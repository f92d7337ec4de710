// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the chatlaunch configuration.
//
// Configuration lives in a single CUE file under the platform config
// directory. The file is validated against an embedded CUE schema, merged
// into Viper on top of defaults, and unmarshalled into a typed Config.
// A missing config file is not an error; defaults apply.
package config
