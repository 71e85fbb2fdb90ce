package state

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite build history store instance.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{logger: logger}
}

// Open opens a connection to the SQLite database.
// Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InitSchema brings the database schema up to date.
func (s *SQLiteStore) InitSchema() error {
	return s.Migrate()
}

// generateID creates a new UUID.
func generateID() string {
	return uuid.New().String()
}

// --- Build operations ---

// CreateBuild opens a new build record in the running state.
func (s *SQLiteStore) CreateBuild(sectionsDir, outputPath string) (*Build, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	build := &Build{
		ID:          generateID(),
		SectionsDir: sectionsDir,
		OutputPath:  outputPath,
		Status:      BuildStatusRunning,
		StartedAt:   time.Now().UTC(),
	}

	s.logger.Debug("creating build", "build_id", build.ID)

	_, err := s.db.Exec(
		`INSERT INTO builds (id, sections_dir, output_path, status, started_at) VALUES (?, ?, ?, ?, ?)`,
		build.ID, build.SectionsDir, build.OutputPath, build.Status, build.StartedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create build: %w", err)
	}

	return build, nil
}

// CompleteBuild closes a build record with its final status and counts.
func (s *SQLiteStore) CompleteBuild(id, status, errMsg string, partitions, cards int, artifactHash string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	now := time.Now().UTC()
	_, err := s.db.Exec(
		`UPDATE builds SET status = ?, error = ?, partitions = ?, cards = ?, artifact_hash = ?, completed_at = ? WHERE id = ?`,
		status, errMsg, partitions, cards, artifactHash, now, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete build: %w", err)
	}
	return nil
}

// GetBuild retrieves a build by ID.
func (s *SQLiteStore) GetBuild(id string) (*Build, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	row := s.db.QueryRow(
		`SELECT id, sections_dir, output_path, status, partitions, cards, artifact_hash, error, started_at, completed_at
		 FROM builds WHERE id = ?`, id,
	)
	build, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("build not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get build: %w", err)
	}
	return build, nil
}

// GetLatestBuild returns the most recent build, or nil when none exist.
func (s *SQLiteStore) GetLatestBuild() (*Build, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	row := s.db.QueryRow(
		`SELECT id, sections_dir, output_path, status, partitions, cards, artifact_hash, error, started_at, completed_at
		 FROM builds ORDER BY started_at DESC, rowid DESC LIMIT 1`,
	)
	build, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // No builds yet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest build: %w", err)
	}
	return build, nil
}

// ListBuilds returns the most recent builds, newest first.
func (s *SQLiteStore) ListBuilds(limit int) ([]*Build, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(
		`SELECT id, sections_dir, output_path, status, partitions, cards, artifact_hash, error, started_at, completed_at
		 FROM builds ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var builds []*Build
	for rows.Next() {
		build, err := scanBuild(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan build: %w", err)
		}
		builds = append(builds, build)
	}
	return builds, rows.Err()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBuild(row scanner) (*Build, error) {
	var build Build
	var completedAt sql.NullTime
	err := row.Scan(
		&build.ID, &build.SectionsDir, &build.OutputPath, &build.Status,
		&build.Partitions, &build.Cards, &build.ArtifactHash, &build.Error,
		&build.StartedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		build.CompletedAt = &t
	}
	return &build, nil
}

// --- Partition hash operations ---

// ReplacePartitionHashes swaps the recorded partition set wholesale. A
// successful build records exactly the partitions it saw, so partitions
// deleted between builds drop out of the record.
func (s *SQLiteStore) ReplacePartitionHashes(hashes []PartitionHash) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM partition_hashes`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear partition hashes: %w", err)
	}

	now := time.Now().UTC()
	for _, h := range hashes {
		if _, err := tx.Exec(
			`INSERT INTO partition_hashes (name, hash, cards, updated_at) VALUES (?, ?, ?, ?)`,
			h.Name, h.Hash, h.Cards, now,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record partition %s: %w", h.Name, err)
		}
	}

	return tx.Commit()
}

// GetPartitionHashes returns the recorded partition set, sorted by name.
func (s *SQLiteStore) GetPartitionHashes() ([]PartitionHash, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(
		`SELECT name, hash, cards, updated_at FROM partition_hashes ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get partition hashes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var hashes []PartitionHash
	for rows.Next() {
		var h PartitionHash
		if err := rows.Scan(&h.Name, &h.Hash, &h.Cards, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan partition hash: %w", err)
		}
		hashes = append(hashes, h)
	}
	return hashes, rows.Err()
}
