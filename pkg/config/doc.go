// Package config handles configuration management for pathmaster.
// It layers embedded TOML defaults, an optional user file (TOML or YAML),
// PATHMASTER_* environment variables and command-line flags.
package config
