package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	session := NewSessionID()

	entries := []SolveEntry{
		{SessionID: session, CubeSize: 3, ScrambleMoves: 20, SeedText: "abc", MoveCount: 20, Duration: 90 * time.Second},
		{SessionID: session, CubeSize: 3, ScrambleMoves: 20, SeedText: "", MoveCount: 34, Duration: 3 * time.Minute},
		{SessionID: session, CubeSize: 4, ScrambleMoves: 40, SeedText: "big", MoveCount: 40, Duration: 10 * time.Minute},
	}
	for _, e := range entries {
		if _, err := store.SaveSolve(e); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	size3, err := store.SolvesForSize(3, 10)
	if err != nil {
		t.Fatalf("SolvesForSize() failed: %v", err)
	}
	if len(size3) != 2 {
		t.Fatalf("Expected 2 size-3 solves, got %d", len(size3))
	}
	// Best move count first.
	if size3[0].MoveCount != 20 || size3[1].MoveCount != 34 {
		t.Errorf("Solves not ordered by move count: %d, %d", size3[0].MoveCount, size3[1].MoveCount)
	}
	if size3[0].SeedText != "abc" || size3[0].SessionID != session {
		t.Errorf("Round-tripped entry = %+v", size3[0])
	}
	if size3[0].Duration != 90*time.Second {
		t.Errorf("Duration = %v, expected 90s", size3[0].Duration)
	}
}

func TestStoreRecentSolvesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveSolve(SolveEntry{
			SessionID: "s", CubeSize: 3, ScrambleMoves: 10, MoveCount: 10 + i,
		}); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	recent, err := store.RecentSolves(3)
	if err != nil {
		t.Fatalf("RecentSolves() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 solves with limit, got %d", len(recent))
	}
	// Newest first.
	if recent[0].MoveCount != 14 {
		t.Errorf("Expected newest solve first, got move count %d", recent[0].MoveCount)
	}
}

func TestStoreBestSolve(t *testing.T) {
	store := openTestStore(t)

	// No solves yet.
	best, err := store.BestSolve(3)
	if err != nil {
		t.Fatalf("BestSolve() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil best for empty table, got %+v", best)
	}

	store.SaveSolve(SolveEntry{SessionID: "s", CubeSize: 3, ScrambleMoves: 20, MoveCount: 50})
	store.SaveSolve(SolveEntry{SessionID: "s", CubeSize: 3, ScrambleMoves: 20, MoveCount: 28})
	store.SaveSolve(SolveEntry{SessionID: "s", CubeSize: 4, ScrambleMoves: 20, MoveCount: 10})

	best, err = store.BestSolve(3)
	if err != nil {
		t.Fatalf("BestSolve() failed: %v", err)
	}
	if best == nil || best.MoveCount != 28 {
		t.Errorf("Best solve = %+v, expected move count 28", best)
	}
}

func TestStoreClearSolves(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(SolveEntry{SessionID: "s", CubeSize: 3, ScrambleMoves: 20, MoveCount: 30})
	store.SaveSolve(SolveEntry{SessionID: "s", CubeSize: 3, ScrambleMoves: 20, MoveCount: 40})
	store.SaveSolve(SolveEntry{SessionID: "s", CubeSize: 5, ScrambleMoves: 20, MoveCount: 60})

	if err := store.ClearSolves(3); err != nil {
		t.Fatalf("ClearSolves() failed: %v", err)
	}

	size3, _ := store.SolvesForSize(3, 10)
	if len(size3) != 0 {
		t.Errorf("Expected 0 size-3 solves after clear, got %d", len(size3))
	}
	size5, _ := store.SolvesForSize(5, 10)
	if len(size5) != 1 {
		t.Errorf("Size-5 solves should not be affected by clearing size 3")
	}
}

func TestNewSessionIDUnique(t *testing.T) {
	if NewSessionID() == NewSessionID() {
		t.Error("session IDs collide")
	}
	if NewSessionID() == "" {
		t.Error("empty session ID")
	}
}
