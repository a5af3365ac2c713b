package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	// Parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		id       string
		score    int
		distance float64
	}{
		{"run-a", 12, 2400.5},
		{"run-b", 3, 800},
		{"run-c", 25, 5100},
		{"run-d", 12, 2500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.id, r.score, r.distance); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(top))
	}

	// Score descending, ties in insertion order
	wantIDs := []string{"run-c", "run-a", "run-d", "run-b"}
	for i, want := range wantIDs {
		if top[i].RunID != want {
			t.Errorf("rank %d: expected %s, got %s", i+1, want, top[i].RunID)
		}
	}
	if top[1].Distance != 2400.5 {
		t.Errorf("Expected distance 2400.5, got %v", top[1].Distance)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun("run", i*10, 0); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs with limit, got %d", len(top))
	}
	if top[0].Score != 140 {
		t.Errorf("Expected top score 140, got %d", top[0].Score)
	}

	// Non-positive limit falls back to 10
	top, err = store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(top))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty store, got %d", score)
	}

	if err := store.SetHighScore(17); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	// A lower value never overwrites a higher one
	if err := store.SetHighScore(9); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	score, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 17 {
		t.Errorf("Expected high score 17, got %d", score)
	}

	if err := store.SetHighScore(30); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if score, _ := store.HighScore(); score != 30 {
		t.Errorf("Expected high score 30, got %d", score)
	}
}

func TestStoreHighScoreIsIndependentOfRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun("run", 99, 0); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if score, _ := store.HighScore(); score != 0 {
		t.Errorf("Expected runs not to touch the high score key, got %d", score)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("run", 100, 10)
	store.SaveRun("run", 200, 20)
	store.SetHighScore(200)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(top))
	}
	if score, _ := store.HighScore(); score != 0 {
		t.Errorf("Expected high score reset, got %d", score)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun("a", 10, 1000)
	store.SaveRun("b", 20, 3000)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.BestScore != 20 {
		t.Errorf("Expected best 20, got %d", stats.BestScore)
	}
	if stats.AvgScore != 15 {
		t.Errorf("Expected average 15, got %v", stats.AvgScore)
	}
	if stats.TotalDistance != 4000 {
		t.Errorf("Expected total distance 4000, got %v", stats.TotalDistance)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveRun("run", 42, 100)
	store1.SetHighScore(42)
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	score, err := store2.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 42 {
		t.Errorf("Expected persisted high score 42, got %d", score)
	}
}

func TestHighScoreKeeper(t *testing.T) {
	store := openTestStore(t)
	keeper := NewHighScoreKeeper(store, nil)

	if err := keeper.SaveHighScore(8); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	score, err := keeper.LoadHighScore()
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if score != 8 {
		t.Errorf("Expected 8, got %d", score)
	}
}

func TestHighScoreKeeperClosedStore(t *testing.T) {
	store := openTestStore(t)
	store.Close()
	keeper := NewHighScoreKeeper(store, nil)

	if _, err := keeper.LoadHighScore(); err == nil {
		t.Error("Expected load error on closed store")
	}
	if err := keeper.SaveHighScore(5); err == nil {
		t.Error("Expected save error on closed store")
	}
}

func TestHighScoreKeeperNilStore(t *testing.T) {
	keeper := NewHighScoreKeeper(nil, nil)

	score, err := keeper.LoadHighScore()
	if err != nil || score != 0 {
		t.Errorf("Expected (0, nil), got (%d, %v)", score, err)
	}
	if err := keeper.SaveHighScore(3); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}
