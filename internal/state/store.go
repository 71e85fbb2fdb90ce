// Package state records build history for the deck assembler using SQLite.
// History is observational: it feeds status reporting and never drives
// assembly, which always rebuilds the full deck.
package state

import "time"

// Build statuses.
const (
	BuildStatusRunning   = "running"
	BuildStatusCompleted = "completed"
	BuildStatusFailed    = "failed"
)

// Build is one recorded assembly run.
type Build struct {
	ID           string
	SectionsDir  string
	OutputPath   string
	Status       string
	Partitions   int
	Cards        int
	ArtifactHash string
	Error        string
	StartedAt    time.Time
	CompletedAt  *time.Time
}

// PartitionHash records the content hash a partition had at the last
// successful build, for staleness reporting.
type PartitionHash struct {
	Name      string
	Hash      string
	Cards     int
	UpdatedAt time.Time
}

// Store is the build history contract the assembler and the CLI depend on.
type Store interface {
	// CreateBuild opens a new build record in the running state.
	CreateBuild(sectionsDir, outputPath string) (*Build, error)
	// CompleteBuild closes a build record with its final status and counts.
	CompleteBuild(id, status, errMsg string, partitions, cards int, artifactHash string) error
	// GetBuild retrieves a build by ID.
	GetBuild(id string) (*Build, error)
	// GetLatestBuild returns the most recent build, or nil when none exist.
	GetLatestBuild() (*Build, error)
	// ListBuilds returns the most recent builds, newest first.
	ListBuilds(limit int) ([]*Build, error)
	// ReplacePartitionHashes swaps the recorded partition set wholesale.
	ReplacePartitionHashes(hashes []PartitionHash) error
	// GetPartitionHashes returns the recorded partition set, sorted by name.
	GetPartitionHashes() ([]PartitionHash, error)
	// Close releases the underlying database.
	Close() error
}
