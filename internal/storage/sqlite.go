// Package storage persists recorded replays in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ReplaySummary is a replay without its event log, for listings.
type ReplaySummary struct {
	ID        int64
	GameID    string
	Seed      int64
	TickRate  int
	Frames    uint64
	Score     int
	Events    int
	CreatedAt time.Time
}

// Duration returns the simulated length of the run.
func (s ReplaySummary) Duration() time.Duration {
	if s.TickRate <= 0 {
		return 0
	}
	return time.Duration(s.Frames) * time.Second / time.Duration(s.TickRate)
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
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			skip_title INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id);

		CREATE TABLE IF NOT EXISTS replay_events (
			replay_id INTEGER NOT NULL REFERENCES replays(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			intent TEXT NOT NULL,
			PRIMARY KEY (replay_id, seq)
		);
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

// SaveReplay stores r and its events in one transaction.
// Returns the ID of the inserted replay.
func (s *Store) SaveReplay(r replay.Replay) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	skipTitle := 0
	if r.SkipTitle {
		skipTitle = 1
	}
	res, err := tx.Exec(
		`INSERT INTO replays (game_id, seed, tick_rate, skip_title, frames, score)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Seed, r.TickRate, skipTitle, int64(r.Frames), r.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO replay_events (replay_id, seq, tick, intent) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for i, ev := range r.Events {
		if _, err := stmt.Exec(id, i, int64(ev.Tick), ev.Intent.String()); err != nil {
			return 0, fmt.Errorf("storage: cannot save event %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return id, nil
}

// LoadReplay retrieves a replay with its events.
// Returns nil, nil when no replay has the given ID.
func (s *Store) LoadReplay(id int64) (*replay.Replay, error) {
	var r replay.Replay
	var frames, skipTitle int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, seed, tick_rate, skip_title, frames, score, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.GameID, &r.Seed, &r.TickRate, &skipTitle, &frames, &r.Score, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	r.Frames = uint64(frames)
	r.SkipTitle = skipTitle != 0
	r.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		"SELECT tick, intent FROM replay_events WHERE replay_id = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tick int64
		var name string
		if err := rows.Scan(&tick, &name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		intent := core.ParseIntent(name)
		if intent == core.IntentNone {
			return nil, fmt.Errorf("storage: replay %d has unknown intent %q", id, name)
		}
		r.Events = append(r.Events, replay.Event{Tick: uint64(tick), Intent: intent, Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &r, nil
}

// ListReplays returns the most recent replays for gameID, newest first.
// An empty gameID lists every game.
func (s *Store) ListReplays(gameID string, limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.game_id, r.seed, r.tick_rate, r.frames, r.score, r.created_at,
		        (SELECT COUNT(*) FROM replay_events e WHERE e.replay_id = r.id)
		 FROM replays r
		 WHERE ? = '' OR r.game_id = ?
		 ORDER BY r.id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var out []ReplaySummary
	for rows.Next() {
		var sum ReplaySummary
		var frames int64
		var createdAt any
		if err := rows.Scan(&sum.ID, &sum.GameID, &sum.Seed, &sum.TickRate, &frames, &sum.Score, &createdAt, &sum.Events); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sum.Frames = uint64(frames)
		sum.CreatedAt = parseTime(createdAt)
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// DeleteReplay removes a replay and its events. Deleting a missing replay
// is not an error.
func (s *Store) DeleteReplay(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM replay_events WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete events: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM replays WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
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
