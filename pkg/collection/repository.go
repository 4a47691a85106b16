package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

// Snapshot is the persisted collection state.
type Snapshot struct {
	Watchlist Watchlist `json:"watchlist"`
	Portfolio Portfolio `json:"portfolio"`
}

// Repository loads and saves collection snapshots. Implementations decide
// where the state lives; mutation logic never does I/O itself.
type Repository interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snapshot Snapshot) error
}

// FileRepository persists snapshots as a JSON file. Saves write to a
// temporary file in the same directory and rename over the target, so a
// crash mid-write never corrupts the stored state.
type FileRepository struct {
	path string
}

// NewFileRepository creates the parent directory if needed.
func NewFileRepository(path string) (*FileRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return &FileRepository{path: path}, nil
}

// Load reads the stored snapshot. A missing file is an empty collection,
// not an error.
func (r *FileRepository) Load(ctx context.Context) (Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("read state file: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("decode state file: %w", err)
	}
	return snapshot, nil
}

// Save writes the snapshot atomically.
func (r *FileRepository) Save(ctx context.Context, snapshot Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", r.path, rand.Int())
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

var _ Repository = (*FileRepository)(nil)
