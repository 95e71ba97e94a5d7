// Package storage provides the SQLite reward ledger.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only finished letters are recorded. In-progress stroke state lives in the
// session and is never written here.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the reward ledger.
type Store struct {
	db *sql.DB
}

// Reward is one completed letter.
type Reward struct {
	ID        int64
	GameID    string // "trace" or "trace_abc"
	Glyph     string
	Word      string
	Reward    string // Reward glyph shown on completion
	Strokes   int
	ElapsedMS int64 // Time from first stroke unlock to completion
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rewards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			glyph TEXT NOT NULL,
			word TEXT NOT NULL DEFAULT '',
			reward TEXT NOT NULL DEFAULT '',
			strokes INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rewards_game_id ON rewards(game_id);
		CREATE INDEX IF NOT EXISTS idx_rewards_glyph ON rewards(glyph);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime handles both driver-native and text datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveReward records a completed letter.
// Returns the ID of the inserted record.
func (s *Store) SaveReward(r Reward) (int64, error) {
	if r.Glyph == "" {
		return 0, fmt.Errorf("storage: reward has no glyph")
	}

	result, err := s.db.Exec(
		`INSERT INTO rewards (game_id, glyph, word, reward, strokes, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Glyph, r.Word, r.Reward, r.Strokes, r.ElapsedMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save reward: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRewards retrieves the newest rewards, optionally filtered by game.
// An empty gameID returns rewards from every game.
func (s *Store) RecentRewards(gameID string, limit int) ([]Reward, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, glyph, word, reward, strokes, elapsed_ms, created_at
		 FROM rewards
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rewards: %w", err)
	}
	defer rows.Close()

	var rewards []Reward
	for rows.Next() {
		var r Reward
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Glyph, &r.Word, &r.Reward, &r.Strokes, &r.ElapsedMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rewards = append(rewards, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rewards, nil
}

// RewardCount returns how many times a glyph has been completed.
func (s *Store) RewardCount(glyph string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM rewards WHERE glyph = ?", glyph).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count rewards: %w", err)
	}
	return n, nil
}

// ClearRewards deletes all rewards for the given game, or every reward when
// gameID is empty.
func (s *Store) ClearRewards(gameID string) error {
	_, err := s.db.Exec("DELETE FROM rewards WHERE ? = '' OR game_id = ?", gameID, gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rewards: %w", err)
	}
	return nil
}

// LetterStats contains aggregated statistics for one glyph.
type LetterStats struct {
	Glyph      string
	Word       string
	Reward     string
	Count      int
	FastestMS  int64
	LastTraced time.Time
}

// GetLetterStats returns per-glyph statistics ordered by glyph.
func (s *Store) GetLetterStats() ([]LetterStats, error) {
	rows, err := s.db.Query(
		`SELECT glyph, MAX(word), MAX(reward), COUNT(*), MIN(elapsed_ms), MAX(created_at)
		 FROM rewards
		 GROUP BY glyph
		 ORDER BY glyph`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get letter stats: %w", err)
	}
	defer rows.Close()

	var stats []LetterStats
	for rows.Next() {
		var ls LetterStats
		var last any
		if err := rows.Scan(&ls.Glyph, &ls.Word, &ls.Reward, &ls.Count, &ls.FastestMS, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastTraced = parseTime(last)
		stats = append(stats, ls)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// GameStats contains aggregated statistics for a game mode.
type GameStats struct {
	GameID     string
	Completed  int // Letters completed
	Distinct   int // Distinct glyphs completed
	FastestMS  int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var last any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT glyph), COALESCE(MIN(elapsed_ms), 0), MAX(created_at)
		 FROM rewards WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Completed, &stats.Distinct, &stats.FastestMS, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(last)

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), COUNT(DISTINCT glyph), MIN(elapsed_ms), MAX(created_at)
		 FROM rewards
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var last any
		if err := rows.Scan(&gs.GameID, &gs.Completed, &gs.Distinct, &gs.FastestMS, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(last)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
