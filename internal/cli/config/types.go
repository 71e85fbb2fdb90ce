// Package config provides configuration management for the mazo CLI.
//
// Configuration is loaded from mazo.yaml, MAZO_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	sharedcfg "github.com/mazo-labs/mazo/internal/config"
)

// Config holds all CLI configuration options.
type Config struct {
	SectionsDir string `koanf:"sections_dir"`
	Output      string `koanf:"output"`
	StatePath   string `koanf:"state_path"`
	Pattern     string `koanf:"pattern"`
	AllowEmpty  bool   `koanf:"allow_empty"`
	Verbose     bool   `koanf:"verbose"`

	// ProjectRoot is the directory relative paths are resolved against.
	// It is derived, not read from the config file.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultSectionsDir = sharedcfg.DefaultSectionsDir
	DefaultOutput      = sharedcfg.DefaultOutput
	DefaultPattern     = sharedcfg.DefaultPattern
	DefaultStateFile   = sharedcfg.DefaultStatePath
)
