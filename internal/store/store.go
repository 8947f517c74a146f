// Package store mirrors a budget dataset into a SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/pbudget/internal/dataset"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is a SQLite copy of the budget entries.
type Store struct {
	db *sql.DB
}

// Entry is one mirrored row. Fields missing from a short CSV row are NULL.
type Entry struct {
	Line      int
	Timestamp sql.NullString
	Amount    sql.NullString
	Category  sql.NullString
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ReplaceEntries swaps the table contents for the data rows of d in a single
// transaction. Columns are located by header name, so reordered files mirror
// correctly. It returns the number of rows written.
func (s *Store) ReplaceEntries(d dataset.Dataset, source string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return 0, err
	}

	tsIdx := d.ColumnIndex("timestamp")
	amountIdx := d.ColumnIndex("amount")
	catIdx := d.ColumnIndex(dataset.CategoryColumn)

	stmt, err := tx.Prepare(`INSERT INTO entries (line, timestamp, amount, category) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() { _ = stmt.Close() }()

	n := 0
	for i, row := range d.Entries() {
		_, err := stmt.Exec(i+1, field(row, tsIdx), field(row, amountIdx), field(row, catIdx))
		if err != nil {
			return 0, fmt.Errorf("inserting line %d: %w", i+1, err)
		}
		n++
	}

	meta := map[string]string{
		"source":      source,
		"exported_at": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range meta {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO export_meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// Entries returns all mirrored rows in file order.
func (s *Store) Entries() ([]Entry, error) {
	rows, err := s.db.Query("SELECT line, timestamp, amount, category FROM entries ORDER BY line")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Line, &e.Timestamp, &e.Amount, &e.Category); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Categories reads the distinct categories back from the categories view.
func (s *Store) Categories() ([]string, error) {
	rows, err := s.db.Query("SELECT category FROM categories")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// EntryCount returns the number of mirrored rows.
func (s *Store) EntryCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count)
	return count, err
}

// Meta returns an export_meta value, or "" when unset.
func (s *Store) Meta(key string) (string, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM export_meta WHERE key = ?", key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return v, err
}

func field(row []string, idx int) sql.NullString {
	if idx < 0 || idx >= len(row) {
		return sql.NullString{}
	}
	return sql.NullString{String: row[idx], Valid: true}
}
