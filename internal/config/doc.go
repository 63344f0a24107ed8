// Package config provides centralized configuration management for vizcli.
//
// Configuration is loaded from environment variables (VIZ_ prefix) with an
// optional YAML file named by VIZ_CONFIG_FILE; environment values override
// file values. All defaults are chosen so that running a binary with no
// flags, no env, and no config file reads the bundled datasets from ./data
// and writes charts to ./output.
//
// The Paths struct is the single source of truth for file locations: input
// CSVs, exported charts, and log files are all resolved through it.
package config
