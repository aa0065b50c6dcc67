// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/danielhkuo/prompt-battle/models"
)

// ErrNoSnapshot means nothing has been persisted yet
var ErrNoSnapshot = errors.New("no snapshot")

// Persister loads and saves the whole store state
type Persister interface {
	Load() (models.Snapshot, error)
	Save(snap models.Snapshot) error
}

// FilePersister keeps the snapshot in a single JSON file.
// Saves overwrite the file in place; a crash mid-write can leave it
// truncated, in which case the next load starts empty.
type FilePersister struct {
	path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (p *FilePersister) Path() string {
	return p.path
}

func (p *FilePersister) Load() (models.Snapshot, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read %s: %w", p.path, err)
	}

	return decodeSnapshot(data)
}

func (p *FilePersister) Save(snap models.Snapshot) error {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.path, err)
	}
	return nil
}

func encodeSnapshot(snap models.Snapshot) ([]byte, error) {
	if snap.Submissions == nil {
		snap.Submissions = []models.Submission{}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (models.Snapshot, error) {
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if snap.Submissions == nil {
		snap.Submissions = []models.Submission{}
	}
	return snap, nil
}
