// Package commands implements the mazo subcommands.
package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mazo-labs/mazo/internal/assembler"
	"github.com/mazo-labs/mazo/internal/cli/config"
	intconfig "github.com/mazo-labs/mazo/internal/config"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg       *config.Config
	Logger    *slog.Logger
	Assembler *assembler.Assembler
}

// NewCommandContext creates a CommandContext with an assembler.
// Returns the context and a cleanup function that must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	asm, err := createAssembler(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = asm.Close()
	}

	return &CommandContext{
		Cfg:       cfg,
		Logger:    logger,
		Assembler: asm,
	}, cleanup, nil
}

// NewCommandContextWithoutAssembler creates a CommandContext without an
// assembler. Useful for commands that don't touch the sections directory.
func NewCommandContextWithoutAssembler(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    getConfig(),
		Logger: config.GetLogger(cmd.Context()),
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	sectionsDir := getEnvOrDefault("MAZO_SECTIONS_DIR", intconfig.DefaultSectionsDir)
	output := getEnvOrDefault("MAZO_OUTPUT", intconfig.DefaultOutput)
	pattern := getEnvOrDefault("MAZO_PATTERN", intconfig.DefaultPattern)
	statePath := getEnvOrDefault("MAZO_STATE_PATH", config.DefaultStateFile)
	allowEmpty := os.Getenv("MAZO_ALLOW_EMPTY") != "false"
	verbose := os.Getenv("MAZO_VERBOSE") == "true"

	return &config.Config{
		SectionsDir: sectionsDir,
		Output:      output,
		Pattern:     pattern,
		StatePath:   statePath,
		AllowEmpty:  allowEmpty,
		Verbose:     verbose,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func createAssembler(cfg *config.Config, logger *slog.Logger) (*assembler.Assembler, error) {
	// Ensure state directory exists
	if cfg.StatePath != ":memory:" {
		stateDir := filepath.Dir(cfg.StatePath)
		if stateDir != "." && stateDir != "" {
			if err := os.MkdirAll(stateDir, 0750); err != nil {
				return nil, err
			}
		}
	}

	asmCfg := assembler.Config{
		SectionsDir: cfg.SectionsDir,
		Output:      cfg.Output,
		Pattern:     cfg.Pattern,
		AllowEmpty:  cfg.AllowEmpty,
		StatePath:   cfg.StatePath,
		Logger:      logger,
	}

	return assembler.New(asmCfg)
}
