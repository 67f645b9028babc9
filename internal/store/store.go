// Package store provides the SQLite-backed persistence boundary for
// tracker state. State is held as five independently keyed JSON documents,
// so a missing or unreadable key only costs that one collection.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"budgie/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store persists tracker state in a local SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the state database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the state database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads all five state keys. Each key is parsed independently: a
// missing key leaves the built-in default in place, and persisted values
// are decoded as-is without further validation.
func (s *Store) Load() (model.State, error) {
	state := model.DefaultState(time.Now())

	rows, err := s.db.Query("SELECT key, value FROM state")
	if err != nil {
		return state, fmt.Errorf("reading state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return state, err
		}

		switch key {
		case keyMonthlyBudget:
			_ = json.Unmarshal([]byte(value), &state.MonthlyBudget)
		case keyProjectDuration:
			_ = json.Unmarshal([]byte(value), &state.ProjectDuration)
		case keyExpenses:
			state.Expenses = nil
			_ = json.Unmarshal([]byte(value), &state.Expenses)
		case keyExpenseBlocks:
			state.ExpenseBlocks = nil
			_ = json.Unmarshal([]byte(value), &state.ExpenseBlocks)
		case keyReportHistory:
			state.ReportHistory = nil
			_ = json.Unmarshal([]byte(value), &state.ReportHistory)
		}
	}
	return state, rows.Err()
}

// Save writes all five state keys in one transaction.
func (s *Store) Save(state model.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	entries := []struct {
		key   string
		value any
	}{
		{keyMonthlyBudget, state.MonthlyBudget},
		{keyProjectDuration, state.ProjectDuration},
		{keyExpenses, state.Expenses},
		{keyExpenseBlocks, state.ExpenseBlocks},
		{keyReportHistory, state.ReportHistory},
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, e := range entries {
		data, err := json.Marshal(e.value)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", e.key, err)
		}
		_, err = tx.Exec(`INSERT OR REPLACE INTO state (key, value, updated_at)
			VALUES (?, ?, ?)`, e.key, string(data), now)
		if err != nil {
			return fmt.Errorf("writing %s: %w", e.key, err)
		}
	}

	return tx.Commit()
}

// Reset drops all persisted state. Used by `budgie setup --reset`.
func (s *Store) Reset() error {
	_, err := s.db.Exec("DELETE FROM state")
	return err
}
