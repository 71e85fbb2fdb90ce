package state

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazo-labs/mazo/internal/testutil"
)

// Driver-level failures are exercised with sqlmock; the happy paths run
// against a real in-memory database in sqlite_test.go.

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &SQLiteStore{db: db, logger: testutil.NewTestLogger(t)}, mock
}

func TestSQLiteStore_ExecErrors(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		call      func(s *SQLiteStore) error
		errMsg    string
	}{
		{
			name: "create build insert fails",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO builds").WillReturnError(assert.AnError)
			},
			call: func(s *SQLiteStore) error {
				_, err := s.CreateBuild("sections", "english.json")
				return err
			},
			errMsg: "failed to create build",
		},
		{
			name: "complete build update fails",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE builds").WillReturnError(assert.AnError)
			},
			call: func(s *SQLiteStore) error {
				return s.CompleteBuild("id", BuildStatusCompleted, "", 1, 1, "")
			},
			errMsg: "failed to complete build",
		},
		{
			name: "list builds query fails",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM builds").WillReturnError(assert.AnError)
			},
			call: func(s *SQLiteStore) error {
				_, err := s.ListBuilds(5)
				return err
			},
			errMsg: "failed to list builds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			tt.setupMock(mock)

			err := tt.call(store)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReplacePartitionHashesRollsBack(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM partition_hashes").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO partition_hashes").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.ReplacePartitionHashes([]PartitionHash{
		{Name: "sec_001.json", Hash: "aaaa", Cards: 10},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sec_001.json")
	assert.NoError(t, mock.ExpectationsWereMet())
}
