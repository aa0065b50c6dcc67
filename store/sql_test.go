// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/prompt-battle/db"
)

func setupSQLite(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(conn))
	return conn
}

func TestSQLPersisterEmpty(t *testing.T) {
	p := NewSQLPersister(setupSQLite(t))

	_, err := p.Load()
	assert.True(t, errors.Is(err, ErrNoSnapshot))
}

func TestSQLPersisterRoundTrip(t *testing.T) {
	conn := setupSQLite(t)
	s := New(NewSQLPersister(conn), Options{})

	a := s.Add("Ada", "First")
	b := s.Add("Grace", "Second")
	_, err := s.ToggleVote(b.ID, "user-1")
	require.NoError(t, err)
	require.True(t, s.Delete(a.ID))

	reloaded := New(NewSQLPersister(conn), Options{})
	assert.Equal(t, 1, reloaded.Count())
	assert.True(t, reloaded.HasVoted(b.ID, "user-1"))
	assert.Equal(t, s.Snapshot().SubmissionCounter, reloaded.Snapshot().SubmissionCounter)

	// Saves overwrite the single row
	var rows int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM store_snapshot`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSQLPersisterCorruptPayload(t *testing.T) {
	conn := setupSQLite(t)
	_, err := conn.Exec(`
		INSERT INTO store_snapshot (id, payload, updated_at) VALUES (1, 'nope', CURRENT_TIMESTAMP)
	`)
	require.NoError(t, err)

	p := NewSQLPersister(conn)
	_, err = p.Load()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoSnapshot))

	s := New(p, Options{})
	assert.Equal(t, 0, s.Count())
	s.Add("Ada", "Prompt")

	snap, err := p.Load()
	require.NoError(t, err)
	assert.Len(t, snap.Submissions, 1)
}
