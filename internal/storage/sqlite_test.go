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

	// Parent directories are created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{GameID: "tetris", Player: "ann", Score: 100, Level: 1, Lines: 1},
		{GameID: "tetris", Player: "bob", Score: 50, Level: 1, Lines: 0},
		{GameID: "tetris", Player: "ann", Score: 1500, Level: 3, Lines: 4},
		{GameID: "other", Player: "eve", Score: 9000},
	}
	for _, r := range results {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []int{1500, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, want)
		}
	}

	top := scores[0]
	if top.Player != "ann" || top.Level != 3 || top.Lines != 4 {
		t.Errorf("top entry = %+v, expected ann at level 3 with 4 lines", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveScore(Result{GameID: "tetris", Score: i * 100}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("tetris", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("tetris", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("HighScore() on empty store = %d, expected 0", score)
	}

	store.SaveScore(Result{GameID: "tetris", Score: 300})
	store.SaveScore(Result{GameID: "tetris", Score: 700})

	score, _ = store.HighScore("tetris")
	if score != 700 {
		t.Errorf("HighScore() = %d, expected 700", score)
	}

	// The shared record counts too
	if err := store.SetHighScore("tetris", 900); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	score, _ = store.HighScore("tetris")
	if score != 900 {
		t.Errorf("HighScore() = %d, expected 900", score)
	}
}

func TestStoreSetHighScoreKeepsMaximum(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{400, 1200, 800} {
		if err := store.SetHighScore("tetris", s); err != nil {
			t.Fatalf("SetHighScore(%d) failed: %v", s, err)
		}
	}

	score, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 1200 {
		t.Errorf("HighScore() = %d, expected 1200", score)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(Result{GameID: "tetris", Score: 100})
	store.SetHighScore("tetris", 500)
	store.SaveScore(Result{GameID: "other", Score: 200})

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	score, _ := store.HighScore("tetris")
	if score != 0 {
		t.Errorf("HighScore() after clear = %d, expected 0", score)
	}

	other, _ := store.HighScore("other")
	if other != 200 {
		t.Errorf("other game HighScore() = %d, expected 200", other)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore(Result{GameID: "tetris", Score: 100, Level: 1, Lines: 1})
	store.SaveScore(Result{GameID: "tetris", Score: 300, Level: 2, Lines: 5})

	stats, err = store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"GamesCount", stats.GamesCount, 2},
		{"HighScore", stats.HighScore, 300},
		{"AvgScore", stats.AvgScore, 200.0},
		{"TotalLines", stats.TotalLines, int64(6)},
		{"BestLevel", stats.BestLevel, 2},
	}
	for _, tc := range tests {
		if tc.got != tc.expected {
			t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.expected)
		}
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}
}

func TestDBHighScores(t *testing.T) {
	store := openTestStore(t)
	hs := store.HighScores("tetris")

	if got := hs.LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore() = %d, expected 0", got)
	}

	if err := hs.SaveHighScore(1500); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if err := hs.SaveHighScore(700); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	if got := hs.LoadHighScore(); got != 1500 {
		t.Errorf("LoadHighScore() = %d, expected 1500", got)
	}

	// A second handle on the same game sees the shared record
	if got := store.HighScores("tetris").LoadHighScore(); got != 1500 {
		t.Errorf("second handle LoadHighScore() = %d, expected 1500", got)
	}
}
