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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRewards(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveReward(Reward{GameID: "trace", Glyph: "A", Word: "Apple"}); err != nil {
		t.Fatalf("SaveReward() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	n, err := store.RewardCount("A")
	if err != nil || n != 1 {
		t.Errorf("RewardCount(A) = %d, %v, expected 1", n, err)
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	rewards := []Reward{
		{GameID: "trace", Glyph: "A", Word: "Apple", Reward: "🍎", Strokes: 3, ElapsedMS: 4200},
		{GameID: "trace", Glyph: "B", Word: "Bear", Reward: "🐻", Strokes: 3, ElapsedMS: 5100},
		{GameID: "trace_abc", Glyph: "C", Word: "Cat", Reward: "🐱", Strokes: 1, ElapsedMS: 1800},
	}
	for _, r := range rewards {
		if _, err := store.SaveReward(r); err != nil {
			t.Fatalf("SaveReward() failed: %v", err)
		}
	}

	all, err := store.RecentRewards("", 10)
	if err != nil {
		t.Fatalf("RecentRewards() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("RecentRewards(\"\") = %d rewards, expected 3", len(all))
	}
	// Newest first
	if all[0].Glyph != "C" || all[2].Glyph != "A" {
		t.Errorf("order = %s %s %s, expected C B A", all[0].Glyph, all[1].Glyph, all[2].Glyph)
	}
	if all[2].Reward != "🍎" || all[2].Strokes != 3 || all[2].ElapsedMS != 4200 {
		t.Errorf("round trip = %+v", all[2])
	}
	if all[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	trace, err := store.RecentRewards("trace", 10)
	if err != nil {
		t.Fatalf("RecentRewards(trace) failed: %v", err)
	}
	if len(trace) != 2 {
		t.Errorf("RecentRewards(trace) = %d rewards, expected 2", len(trace))
	}

	limited, err := store.RecentRewards("", 1)
	if err != nil || len(limited) != 1 {
		t.Errorf("RecentRewards limit 1 = %d, %v", len(limited), err)
	}
}

func TestStoreSaveRewardRequiresGlyph(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveReward(Reward{GameID: "trace"}); err == nil {
		t.Error("SaveReward() without glyph should fail")
	}
}

func TestStoreClearRewards(t *testing.T) {
	store := openTestStore(t)
	store.SaveReward(Reward{GameID: "trace", Glyph: "A"})
	store.SaveReward(Reward{GameID: "trace_abc", Glyph: "B"})

	if err := store.ClearRewards("trace"); err != nil {
		t.Fatalf("ClearRewards() failed: %v", err)
	}
	left, _ := store.RecentRewards("", 10)
	if len(left) != 1 || left[0].GameID != "trace_abc" {
		t.Errorf("after ClearRewards(trace) = %+v", left)
	}

	if err := store.ClearRewards(""); err != nil {
		t.Fatalf("ClearRewards(\"\") failed: %v", err)
	}
	left, _ = store.RecentRewards("", 10)
	if len(left) != 0 {
		t.Errorf("after ClearRewards(\"\") %d rewards remain", len(left))
	}
}

func TestStoreLetterStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveReward(Reward{GameID: "trace", Glyph: "B", Word: "Bear", ElapsedMS: 900})
	store.SaveReward(Reward{GameID: "trace", Glyph: "A", Word: "Apple", ElapsedMS: 3000})
	store.SaveReward(Reward{GameID: "trace_abc", Glyph: "A", Word: "Apple", ElapsedMS: 2000})

	stats, err := store.GetLetterStats()
	if err != nil {
		t.Fatalf("GetLetterStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("GetLetterStats() = %d rows, expected 2", len(stats))
	}
	a := stats[0]
	if a.Glyph != "A" || a.Count != 2 || a.FastestMS != 2000 || a.Word != "Apple" {
		t.Errorf("A stats = %+v", a)
	}
	if a.LastTraced.IsZero() {
		t.Error("LastTraced should be set")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("trace")
	if err != nil {
		t.Fatalf("GetGameStats() on empty store failed: %v", err)
	}
	if empty.Completed != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveReward(Reward{GameID: "trace", Glyph: "A", ElapsedMS: 3000})
	store.SaveReward(Reward{GameID: "trace", Glyph: "A", ElapsedMS: 1500})
	store.SaveReward(Reward{GameID: "trace", Glyph: "Q", ElapsedMS: 7000})
	store.SaveReward(Reward{GameID: "trace_abc", Glyph: "A", ElapsedMS: 2500})

	stats, err := store.GetGameStats("trace")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Completed != 3 || stats.Distinct != 2 || stats.FastestMS != 1500 {
		t.Errorf("trace stats = %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["trace_abc"].Completed != 1 {
		t.Errorf("GetAllGamesStats() = %+v", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.trace/rewards.db")
	if err != nil {
		t.Fatalf("Open() with ~ failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".trace", "rewards.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
