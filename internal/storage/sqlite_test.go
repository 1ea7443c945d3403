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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []RunEntry{
		{Mode: "normal", Score: 100, Length: 13, DurationTicks: 900},
		{Mode: "normal", Score: 50, Length: 8, DurationTicks: 400},
		{Mode: "normal", Score: 200, Length: 23, DurationTicks: 2100},
		{Mode: "hard", Score: 500, Length: 53, DurationTicks: 4000},
	} {
		if _, err := store.SaveRun(e); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("normal", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in descending order: %v", runs)
	}
	if runs[0].Length != 23 || runs[0].DurationTicks != 2100 {
		t.Errorf("Run details not round-tripped: %+v", runs[0])
	}

	hardRuns, err := store.TopRuns("hard", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(hardRuns) != 1 {
		t.Errorf("Expected 1 hard run, got %d", len(hardRuns))
	}

	// Empty mode matches every run
	allRuns, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(allRuns) != 4 {
		t.Errorf("Expected 4 runs across all modes, got %d", len(allRuns))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{Mode: "normal", Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns("normal", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestScore("normal")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty mode, got %d", best)
	}

	store.SaveRun(RunEntry{Mode: "normal", Score: 100})
	store.SaveRun(RunEntry{Mode: "normal", Score: 300})
	store.SaveRun(RunEntry{Mode: "hard", Score: 200})

	best, err = store.BestScore("normal")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}

	best, err = store.BestScore("")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected overall best of 300, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Mode: "normal", Score: 100})
	store.SaveRun(RunEntry{Mode: "normal", Score: 200})
	store.SaveRun(RunEntry{Mode: "hard", Score: 300})

	// Clear only normal runs
	if err := store.ClearRuns("normal"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	normalRuns, _ := store.TopRuns("normal", 10)
	if len(normalRuns) != 0 {
		t.Errorf("Expected 0 normal runs after clear, got %d", len(normalRuns))
	}

	hardRuns, _ := store.TopRuns("hard", 10)
	if len(hardRuns) != 1 {
		t.Error("Hard runs should not be affected by clearing normal")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 25; i++ {
		store.SaveRun(RunEntry{Mode: "normal", Score: i * 10})
	}

	runs, err := store.RecentRuns(20)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(runs) != 20 {
		t.Fatalf("Expected 20 recent runs, got %d", len(runs))
	}

	// Latest insert comes first
	if runs[0].Score != 240 {
		t.Errorf("Expected most recent run first (score 240), got %d", runs[0].Score)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Mode: "normal", Score: 100})
	store.SaveRun(RunEntry{Mode: "normal", Score: 300})
	store.SaveRun(RunEntry{Mode: "hard", Score: 50})

	stats, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, expected 2", stats.RunsCount)
	}
	if stats.BestScore != 300 {
		t.Errorf("BestScore = %d, expected 300", stats.BestScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 modes, got %d", len(all))
	}
	if all["hard"] == nil || all["hard"].BestScore != 50 {
		t.Errorf("Missing or wrong hard stats: %+v", all["hard"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
