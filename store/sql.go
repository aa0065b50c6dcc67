// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/prompt-battle/models"
)

// snapshotRowID is the key of the single row holding the snapshot
const snapshotRowID = 1

// SQLPersister keeps the snapshot as a JSON document in the store_snapshot
// table. The table must exist, see db.CreateSchema.
type SQLPersister struct {
	db *sql.DB
}

func NewSQLPersister(db *sql.DB) *SQLPersister {
	return &SQLPersister{db: db}
}

func (p *SQLPersister) Load() (models.Snapshot, error) {
	var payload string
	err := p.db.QueryRow(`
		SELECT payload FROM store_snapshot WHERE id = $1
	`, snapshotRowID).Scan(&payload)

	if err == sql.ErrNoRows {
		return models.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
	}

	return decodeSnapshot([]byte(payload))
}

func (p *SQLPersister) Save(snap models.Snapshot) error {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	updatedAt := snap.LastUpdated
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = p.db.Exec(`
		INSERT INTO store_snapshot (id, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at
	`, snapshotRowID, string(data), updatedAt)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
