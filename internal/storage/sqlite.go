package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
)

// Store is the local persistence layer: the unlocked flag, per-activity
// completion flags and custom expenses survive restarts. Everything else is
// recomputed, so this is deliberately a single small sqlite file.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite at %s: %w", path, err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS gate_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			unlocked INTEGER NOT NULL DEFAULT 0,
			unlocked_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS activity_progress (
			activity_id TEXT PRIMARY KEY,
			completed INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS custom_expenses (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			price_nok REAL NOT NULL,
			price_eur REAL NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("running migration: %w", err)
		}
	}
	return nil
}

// Unlocked reports whether the gate has been passed on this device before
func (s *Store) Unlocked() (bool, error) {
	var unlocked int
	err := s.db.QueryRow("SELECT unlocked FROM gate_state WHERE id = 1").Scan(&unlocked)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading gate state: %w", err)
	}
	return unlocked != 0, nil
}

// SetUnlocked persists a successful gate pass
func (s *Store) SetUnlocked() error {
	_, err := s.db.Exec(`INSERT INTO gate_state (id, unlocked, unlocked_at)
		VALUES (1, 1, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET unlocked = 1, unlocked_at = datetime('now')`)
	if err != nil {
		return fmt.Errorf("persisting gate state: %w", err)
	}
	return nil
}

// SetCompleted persists a user completion toggle
func (s *Store) SetCompleted(activityID string, completed bool) error {
	val := 0
	if completed {
		val = 1
	}
	_, err := s.db.Exec(`INSERT INTO activity_progress (activity_id, completed)
		VALUES (?, ?)
		ON CONFLICT(activity_id) DO UPDATE SET completed = excluded.completed`,
		activityID, val)
	if err != nil {
		return fmt.Errorf("persisting completion for %s: %w", activityID, err)
	}
	return nil
}

// CompletedActivities returns the IDs of activities checked off by the user
func (s *Store) CompletedActivities() ([]string, error) {
	rows, err := s.db.Query("SELECT activity_id FROM activity_progress WHERE completed = 1")
	if err != nil {
		return nil, fmt.Errorf("reading completions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning completion row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AddExpense persists a custom budget entry
func (s *Store) AddExpense(e domain.CustomExpense) error {
	_, err := s.db.Exec(`INSERT INTO custom_expenses (id, title, price_nok, price_eur)
		VALUES (?, ?, ?, ?)`,
		e.ID, e.Title, e.PriceNOK, e.PriceEUR)
	if err != nil {
		return fmt.Errorf("persisting expense: %w", err)
	}
	return nil
}

// DeleteExpense removes a custom budget entry; missing IDs are not an error
func (s *Store) DeleteExpense(id string) error {
	_, err := s.db.Exec("DELETE FROM custom_expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting expense %s: %w", id, err)
	}
	return nil
}

// Expenses lists all custom budget entries in insertion order
func (s *Store) Expenses() ([]domain.CustomExpense, error) {
	rows, err := s.db.Query("SELECT id, title, price_nok, price_eur FROM custom_expenses ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("reading expenses: %w", err)
	}
	defer rows.Close()

	var out []domain.CustomExpense
	for rows.Next() {
		var e domain.CustomExpense
		if err := rows.Scan(&e.ID, &e.Title, &e.PriceNOK, &e.PriceEUR); err != nil {
			return nil, fmt.Errorf("scanning expense row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
