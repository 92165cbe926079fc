// Package store provides the SQLite mirror of ledger expenses.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/finledger/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is a single-table expense mirror.
type Store struct {
	db *sql.DB
}

// Open opens or creates the expense database at the given path and applies
// pending schema migrations.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening expense db: %w", err)
	}
	// One connection keeps every statement on the same WAL snapshot.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging expense db: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Replace truncates the table and inserts expenses in order, atomically.
// On error the previous contents are kept.
func (s *Store) Replace(expenses []model.Expense) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM expenses"); err != nil {
		return fmt.Errorf("clearing expenses: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO expenses (category, description, amount) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range expenses {
		if _, err := stmt.Exec(e.Category, e.Description, e.Amount.InexactFloat64()); err != nil {
			return fmt.Errorf("inserting %s/%s: %w", e.Category, e.Description, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rebuild: %w", err)
	}
	return nil
}

// Insert appends a single expense row and returns its id.
func (s *Store) Insert(e model.Expense) (int64, error) {
	res, err := s.db.Exec("INSERT INTO expenses (category, description, amount) VALUES (?, ?, ?)",
		e.Category, e.Description, e.Amount.InexactFloat64())
	if err != nil {
		return 0, fmt.Errorf("inserting expense: %w", err)
	}
	return res.LastInsertId()
}

// Delete removes the row with the given id.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec("DELETE FROM expenses WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting expense %d: %w", id, err)
	}
	return nil
}

// Rows returns every expense row ordered by id.
func (s *Store) Rows() ([]model.ExpenseRow, error) {
	rows, err := s.db.Query("SELECT id, category, description, amount FROM expenses ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.ExpenseRow
	for rows.Next() {
		var r model.ExpenseRow
		if err := rows.Scan(&r.ID, &r.Category, &r.Description, &r.Amount); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// Count returns the number of expense rows.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&count)
	return count, err
}
