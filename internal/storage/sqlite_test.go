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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, lines := range []int{10, 5, 20} {
		if _, err := store.SaveScore("tetris", lines); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("tetris_garbage", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	runs, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	expected := []int{20, 10, 5}
	for i, want := range expected {
		if runs[i].Lines != want {
			t.Errorf("runs[%d].Lines = %d, expected %d", i, runs[i].Lines, want)
		}
		if runs[i].GameID != "tetris" {
			t.Errorf("runs[%d].GameID = %q", i, runs[i].GameID)
		}
	}

	garbage, err := store.TopScores("tetris_garbage", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(garbage) != 1 {
		t.Errorf("Expected 1 garbage run, got %d", len(garbage))
	}
}

func TestStoreSaveRunFields(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "tetris", Lines: 42, Seed: 7, Duration: 90 * time.Second})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveRun() id = %d, expected positive", id)
	}

	runs, err := store.AllScores("tetris")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.Lines != 42 || r.Seed != 7 || r.Duration != 90*time.Second {
		t.Errorf("run = %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("tetris", i); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	runs, err := store.TopScores("tetris", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}
	if runs[0].Lines != 19 {
		t.Errorf("Expected best to be 19, got %d", runs[0].Lines)
	}

	runs, err = store.TopScores("tetris", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("Default limit should be 10, got %d", len(runs))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.SaveScore("tetris", 12)
	store.SaveScore("tetris", 30)
	store.SaveScore("tetris", 3)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 1)
	store.SaveScore("tetris_garbage", 2)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	runs, _ := store.AllScores("tetris")
	if len(runs) != 0 {
		t.Errorf("Expected no tetris runs after clear, got %d", len(runs))
	}
	runs, _ = store.AllScores("tetris_garbage")
	if len(runs) != 1 {
		t.Errorf("Other modes should be untouched, got %d runs", len(runs))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GameStats("tetris")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("tetris", 10)
	store.SaveScore("tetris", 20)

	stats, err = store.GameStats("tetris")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestLines != 20 || stats.TotalLines != 30 || stats.AvgLines != 15 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tetris/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".tetris", "scores.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}
