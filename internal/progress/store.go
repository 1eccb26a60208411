// Package progress persists a learner's attempt history in a local
// SQLite database.
package progress

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	lesson INTEGER NOT NULL,
	stability_score INTEGER NOT NULL,
	error_count INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_attempts_lesson ON attempts(lesson);
`

// Attempt is one recorded practice run.
type Attempt struct {
	ID             int64     `json:"id"`
	Lesson         int       `json:"lesson"`
	StabilityScore int       `json:"stabilityScore"`
	ErrorCount     int       `json:"errorCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Store wraps the attempts database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the attempts database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open progress database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize progress database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing database handle. Used by tests.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordAttempt stores one practice run.
func (s *Store) RecordAttempt(lesson, stabilityScore, errorCount int) error {
	_, err := s.db.Exec(
		"INSERT INTO attempts (lesson, stability_score, error_count) VALUES (?, ?, ?)",
		lesson, stabilityScore, errorCount,
	)
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}
	return nil
}

// Attempts returns every recorded attempt, newest first.
func (s *Store) Attempts() ([]Attempt, error) {
	rows, err := s.db.Query(
		"SELECT id, lesson, stability_score, error_count, created_at FROM attempts ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.Lesson, &a.StabilityScore, &a.ErrorCount, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// BestScores returns the highest stability score recorded per lesson.
func (s *Store) BestScores() (map[int]int, error) {
	rows, err := s.db.Query(
		"SELECT lesson, MAX(stability_score) FROM attempts GROUP BY lesson",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query best scores: %w", err)
	}
	defer rows.Close()

	best := make(map[int]int)
	for rows.Next() {
		var lesson, score int
		if err := rows.Scan(&lesson, &score); err != nil {
			return nil, fmt.Errorf("failed to scan best score: %w", err)
		}
		best[lesson] = score
	}
	return best, rows.Err()
}
