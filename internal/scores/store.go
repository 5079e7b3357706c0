// Package scores keeps the history of finished games in a single SQLite file.
package scores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeGameOver  Outcome = "game_over"
	OutcomeAbandoned Outcome = "abandoned"
)

type Result struct {
	ID         int64
	Player     string
	Score      int
	Level      int
	LivesLeft  int
	Matches    int
	Hints      int
	Outcome    Outcome
	Seed       int64
	FinishedAt time.Time
}

type Store struct {
	db   *sql.DB
	path string
}

func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = "micromatch-scores.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player TEXT NOT NULL,
		score INTEGER NOT NULL,
		level INTEGER NOT NULL,
		lives_left INTEGER NOT NULL,
		matches INTEGER NOT NULL,
		hints INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		seed INTEGER NOT NULL,
		finished_at INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create results table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Record(ctx context.Context, r Result) (int64, error) {
	if s == nil {
		return 0, errors.New("scores store not open")
	}
	if strings.TrimSpace(r.Player) == "" {
		r.Player = "player"
	}
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO results (player, score, level, lives_left, matches, hints, outcome, seed, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Score, r.Level, r.LivesLeft, r.Matches, r.Hints, string(r.Outcome), r.Seed, r.FinishedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("result id: %w", err)
	}
	return id, nil
}

// Top returns the best results: highest score first, then fewer hints, then
// the earliest finish.
func (s *Store) Top(ctx context.Context, limit int) ([]Result, error) {
	if s == nil {
		return nil, errors.New("scores store not open")
	}
	if limit < 1 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player, score, level, lives_left, matches, hints, outcome, seed, finished_at
		 FROM results ORDER BY score DESC, hints ASC, finished_at ASC, id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Result
	for rows.Next() {
		var (
			r        Result
			outcome  string
			finished int64
		)
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Level, &r.LivesLeft, &r.Matches, &r.Hints, &outcome, &r.Seed, &finished); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.FinishedAt = time.UnixMilli(finished).UTC()
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}
