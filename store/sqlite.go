package store

import (
	"database/sql"
	"fmt"

	"github.com/ZaguanLabs/isoglot"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore is a durable translation memory backed by SQLite. Unlike the
// Redis snapshot store, it upserts per entry, so several sessions can feed
// one shared memory file.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS entries (
	key         TEXT PRIMARY KEY,
	translation TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT 'CORE',
	status      TEXT NOT NULL DEFAULT 'PENDING'
);`

// OpenSQLiteStore opens (creating if needed) a SQLite translation memory
// at path. Use ":memory:" for an ephemeral store.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Save upserts the glossary snapshot. An existing row's translation is only
// overwritten by a non-empty one, so a fresh unresolved session cannot
// erase accumulated memory.
func (s *SQLiteStore) Save(g *isoglot.Glossary) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save: %w", err)
	}
	defer tx.Rollback()

	const query = `INSERT INTO entries (key, translation, category, status)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			translation = COALESCE(NULLIF(excluded.translation, ''), entries.translation),
			status = CASE WHEN excluded.translation != '' THEN excluded.status ELSE entries.status END`

	for _, row := range Snapshot(g) {
		if _, err := tx.Exec(query, row.Key, row.Translation, string(row.Category), string(row.Status)); err != nil {
			return fmt.Errorf("upserting entry %q: %w", row.Key, err)
		}
	}
	return tx.Commit()
}

// Load reads every stored entry and applies it to the glossary.
func (s *SQLiteStore) Load(g *isoglot.Glossary) (*ApplyResult, error) {
	rows, err := s.db.Query(`SELECT key, translation, category, status FROM entries ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var loaded []Row
	for rows.Next() {
		var row Row
		var category, status string
		if err := rows.Scan(&row.Key, &row.Translation, &category, &status); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		row.Category = isoglot.Category(category)
		row.Status = isoglot.Status(status)
		loaded = append(loaded, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return Apply(g, loaded), nil
}

// Len returns the number of stored entries.
func (s *SQLiteStore) Len() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
