package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"

	"taphoa/models"
)

// Store is the durable slot the POS state is saved to. Save overwrites
// the whole slot; there is no merge and no versioning. Load reports
// found=false when the slot is empty or unreadable so the caller can
// fall back to defaults.
type Store interface {
	Load(ctx context.Context) (snap models.Snapshot, found bool, err error)
	Save(ctx context.Context, snap models.Snapshot) error
	Close(ctx context.Context) error
}

// FileStore keeps the snapshot as a JSON file on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (models.Snapshot, bool, error) {
	var snap models.Snapshot

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return snap, false, nil
	}
	if err != nil {
		return snap, false, err
	}

	if err := json.Unmarshal(raw, &snap); err != nil {
		// Corrupt slot: start from defaults rather than refuse to boot.
		log.Printf("store: cannot parse %s, falling back to defaults: %v", s.path, err)
		return models.Snapshot{}, false, nil
	}
	return snap, true, nil
}

func (s *FileStore) Save(ctx context.Context, snap models.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write never corrupts the slot.
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Close(ctx context.Context) error { return nil }
