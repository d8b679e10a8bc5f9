// SPDX-License-Identifier: MPL-2.0

// Package config handles ipsbench configuration using Viper with CUE as the
// file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/ipsbench/config.cue (or the
// platform equivalent: ~/Library/Application Support on macOS, %APPDATA% on
// Windows), falling back to ./config.cue and then to built-in defaults. Files
// are validated against the embedded #Config schema (config_schema.cue)
// before they are merged into Viper.
package config
