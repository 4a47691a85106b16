package collection

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "collection.json")
	repo, err := NewFileRepository(path)
	if err != nil {
		t.Fatalf("NewFileRepository: %v", err)
	}

	ctx := context.Background()
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	snapshot := Snapshot{
		Watchlist: Watchlist{}.Add(card("a"), now),
		Portfolio: Portfolio{}.Apply(card("b"), tx(TransactionBuy, 2, 10)),
	}

	if err := repo.Save(ctx, snapshot); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Watchlist) != 1 || !loaded.Watchlist.Contains("a") {
		t.Errorf("watchlist = %+v", loaded.Watchlist)
	}
	item := loaded.Portfolio.Item("b")
	if item == nil || item.Quantity != 2 {
		t.Errorf("portfolio = %+v", loaded.Portfolio)
	}
}

func TestFileRepositoryMissingFileIsEmpty(t *testing.T) {
	repo, err := NewFileRepository(filepath.Join(t.TempDir(), "collection.json"))
	if err != nil {
		t.Fatalf("NewFileRepository: %v", err)
	}

	snapshot, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snapshot.Watchlist) != 0 || len(snapshot.Portfolio) != 0 {
		t.Errorf("missing file should load empty, got %+v", snapshot)
	}
}

func TestFileRepositoryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	repo, err := NewFileRepository(path)
	if err != nil {
		t.Fatalf("NewFileRepository: %v", err)
	}

	if _, err := repo.Load(context.Background()); err == nil {
		t.Error("corrupt state file should be an error, not silently empty")
	}
}

func TestFileRepositoryLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepository(filepath.Join(dir, "collection.json"))
	if err != nil {
		t.Fatalf("NewFileRepository: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := repo.Save(context.Background(), Snapshot{}); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory should hold only the state file, got %v", names)
	}
}
