package tabsink

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewlab/revminer/schema"
)

func newSQLiteSink(t *testing.T) (*DatabaseSink, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "revminer.db")
	s, err := NewDatabaseSink(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	return s, dbPath
}

func countRows(t *testing.T, dbPath, table string) int {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestDatabaseSinkSQLiteRoundTrip(t *testing.T) {
	s, dbPath := newSQLiteSink(t)

	require.NoError(t, s.AppendReview(schema.ReviewRow{
		Subject: "subj", Issue: 100, OwnerEmail: "o@x.com", OwnerID: 1,
	}))
	require.NoError(t, s.AppendComment(schema.CommentRow{
		AuthorEmail: "a@x.com", AuthorID: 2, Text: "needs work", Lineno: 3,
		Left: true, CompositePatchsetFileID: "100-1-a.cc",
	}))
	require.NoError(t, s.AppendDeveloper(schema.DeveloperRow{DeveloperID: 1, Email: "o@x.com"}))
	require.NoError(t, s.AppendParticipant(schema.ParticipantRow{DeveloperID: 2, Issue: 100}))
	require.NoError(t, s.Close())

	assert.Equal(t, 1, countRows(t, dbPath, "reviews"))
	assert.Equal(t, 1, countRows(t, dbPath, "comments"))
	assert.Equal(t, 1, countRows(t, dbPath, "developers"))
	assert.Equal(t, 1, countRows(t, dbPath, "participants"))

	// The side flag lands in left_side, and empty enrichment columns are NULL.
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var leftSide bool
	require.NoError(t, db.QueryRow("SELECT left_side FROM comments WHERE author_id = 2").Scan(&leftSide))
	assert.True(t, leftSide)

	var reviewsWithOwner sql.NullInt64
	require.NoError(t, db.QueryRow("SELECT reviews_with_owner FROM participants WHERE developer_id = 2").Scan(&reviewsWithOwner))
	assert.False(t, reviewsWithOwner.Valid)
}

func TestDatabaseSinkResetsTablesOnOpen(t *testing.T) {
	s, dbPath := newSQLiteSink(t)
	require.NoError(t, s.AppendReview(schema.ReviewRow{Issue: 100}))
	require.NoError(t, s.Close())
	require.Equal(t, 1, countRows(t, dbPath, "reviews"))

	// Each run starts from scratch.
	s2, err := NewDatabaseSink(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, s2.AppendReview(schema.ReviewRow{Issue: 200}))
	require.NoError(t, s2.Close())

	assert.Equal(t, 1, countRows(t, dbPath, "reviews"))
}

func TestDatabaseSinkCloseIdempotent(t *testing.T) {
	s, _ := newSQLiteSink(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestDatabaseSinkUnsupportedBackend(t *testing.T) {
	_, err := NewDatabaseSink(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}

func TestInsertQueryPlaceholders(t *testing.T) {
	assert.Equal(t,
		"INSERT INTO developers (developer_id, email) VALUES (?, ?)",
		insertQuery("developers", schema.SQLiteBackend))
	assert.Equal(t,
		"INSERT INTO developers (developer_id, email) VALUES ($1, $2)",
		insertQuery("developers", schema.PostgreSQLBackend))
}

func TestInsertColumnsCoverAllTables(t *testing.T) {
	for _, table := range schema.TableNames {
		assert.NotEmpty(t, insertColumns[table], "missing insert columns for %s", table)
	}
}
