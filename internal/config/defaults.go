// Package config provides shared configuration defaults for mazo.
package config

// Default configuration values.
const (
	DefaultSectionsDir = "sections"
	DefaultOutput      = "english.json"
	DefaultPattern     = "sec_*.json"
	DefaultStatePath   = ".mazo/state.db"
	DefaultAllowEmpty  = true
)
