// Package storage provides SQLite-based persistence for solve records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for solve persistence.
type Store struct {
	db *sql.DB
}

// SolveEntry represents one completed solve.
type SolveEntry struct {
	ID            int64
	SessionID     string
	CubeSize      int
	ScrambleMoves int
	SeedText      string
	MoveCount     int
	Duration      time.Duration
	CreatedAt     time.Time
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			cube_size INTEGER NOT NULL,
			scramble_moves INTEGER NOT NULL,
			seed_text TEXT NOT NULL DEFAULT '',
			move_count INTEGER NOT NULL,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_size ON solves(cube_size);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(cube_size, move_count ASC);
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

// NewSessionID returns a fresh identifier for grouping one player's solves.
func NewSessionID() string {
	return uuid.NewString()
}

// SaveSolve records a completed solve. Returns the ID of the inserted record.
func (s *Store) SaveSolve(e SolveEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO solves
		 (session_id, cube_size, scramble_moves, seed_text, move_count, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.CubeSize, e.ScrambleMoves, e.SeedText, e.MoveCount, e.Duration.Seconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentSolves retrieves the most recent solves, newest first.
func (s *Store) RecentSolves(limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, cube_size, scramble_moves, seed_text, move_count, duration_secs, created_at
		 FROM solves
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// SolvesForSize retrieves solves for one cube size, best move count first.
func (s *Store) SolvesForSize(cubeSize, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, cube_size, scramble_moves, seed_text, move_count, duration_secs, created_at
		 FROM solves
		 WHERE cube_size = ?
		 ORDER BY move_count ASC, duration_secs ASC
		 LIMIT ?`,
		cubeSize, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// BestSolve returns the lowest-move-count solve for a cube size, or nil if
// none exists.
func (s *Store) BestSolve(cubeSize int) (*SolveEntry, error) {
	entries, err := s.SolvesForSize(cubeSize, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// ClearSolves deletes all solves for the given cube size.
func (s *Store) ClearSolves(cubeSize int) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE cube_size = ?", cubeSize)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

func scanSolves(rows *sql.Rows) ([]SolveEntry, error) {
	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var durationSecs float64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.CubeSize, &e.ScrambleMoves,
			&e.SeedText, &e.MoveCount, &durationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationSecs * float64(time.Second))

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
