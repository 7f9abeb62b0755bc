package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/serpientes/internal/storage"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func TestRollSavesProgress(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "progress.db")

	if err := execute(t, "roll", "--db", dbPath, "--player", "ana", "--die", "4", "--log-level", "error"); err != nil {
		t.Fatalf("roll failed: %v", err)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	st, err := store.Progress("ana").Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if st.Position != 4 || st.Rolls != 1 {
		t.Errorf("saved state = %+v, want position 4 after one roll", st)
	}
}

func TestRollNeedsDatabase(t *testing.T) {
	// A regular file where the database directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	dbPath := filepath.Join(blocker, "progress.db")

	if err := execute(t, "roll", "--db", dbPath, "--player", "ana", "--die", "4", "--log-level", "error"); err == nil {
		t.Error("roll should fail when its progress cannot be saved")
	}
}
