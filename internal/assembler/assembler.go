// Package assembler builds the deck artifact from partitioned card sections.
// It discovers partition files, loads them in file name order, assigns each
// card its position as id, and writes the combined JSON array atomically.
package assembler

import (
	"fmt"
	"log/slog"

	"github.com/mazo-labs/mazo/internal/state"
)

// Assembler orchestrates deck builds from partition files to artifact.
type Assembler struct {
	logger *slog.Logger
	store  state.Store

	sectionsDir string
	output      string
	pattern     string
	allowEmpty  bool
}

// Config holds assembler configuration.
type Config struct {
	// SectionsDir is the directory holding partition files
	SectionsDir string
	// Output is the artifact path the assembled deck is written to
	Output string
	// Pattern matches partition file names within SectionsDir. Brace sets
	// are supported, e.g. "sec_*.{json,yaml}". Defaults to "sec_*.json".
	Pattern string
	// AllowEmpty controls the zero-partition policy: when true an empty
	// deck is written with a warning, when false discovery fails
	AllowEmpty bool
	// StatePath is the path to the SQLite build history database.
	// ":memory:" keeps history for the process lifetime only.
	StatePath string
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an assembler and opens its build history store.
func New(cfg Config) (*Assembler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	logger.Debug("initializing assembler", "sections_dir", cfg.SectionsDir, "output", cfg.Output)

	store := state.NewSQLiteStore(logger)
	if err := store.Open(cfg.StatePath); err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}
	if err := store.InitSchema(); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize state schema: %w", err)
	}

	pattern := cfg.Pattern
	if pattern == "" {
		pattern = "sec_*.json"
	}

	return &Assembler{
		logger:      logger,
		store:       store,
		sectionsDir: cfg.SectionsDir,
		output:      cfg.Output,
		pattern:     pattern,
		allowEmpty:  cfg.AllowEmpty,
	}, nil
}

// SectionsDir returns the directory the assembler reads partitions from.
func (a *Assembler) SectionsDir() string {
	return a.sectionsDir
}

// Output returns the artifact path builds write to.
func (a *Assembler) Output() string {
	return a.output
}

// Pattern returns the partition file name pattern.
func (a *Assembler) Pattern() string {
	return a.pattern
}

// Store exposes the build history store for commands that report on it.
func (a *Assembler) Store() state.Store {
	return a.store
}

// Close releases the build history store.
func (a *Assembler) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
