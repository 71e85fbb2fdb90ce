package config

import (
	"fmt"
	"os"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SectionsDir == "" {
		return fmt.Errorf("sections_dir is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if c.Pattern == "" {
		return fmt.Errorf("pattern is required")
	}

	// Directory existence is checked separately so help commands work
	// without a project on disk.
	return nil
}

// ValidateDirectories checks if required directories exist.
func (c *Config) ValidateDirectories() error {
	if _, err := os.Stat(c.SectionsDir); os.IsNotExist(err) {
		return fmt.Errorf("sections directory does not exist: %s\nHint: Create the directory or use --sections-dir to specify a different path", c.SectionsDir)
	}
	return nil
}
