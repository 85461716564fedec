// Package history persists a record of every placed book, so reruns and
// collision decisions can be audited after the log file rotates away.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS placements (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	asin        TEXT NOT NULL DEFAULT '',
	title       TEXT NOT NULL,
	author      TEXT NOT NULL DEFAULT '',
	source_path TEXT NOT NULL,
	dest_path   TEXT NOT NULL,
	size_bytes  INTEGER NOT NULL DEFAULT 0,
	mode        TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_placements_asin ON placements(asin);
CREATE INDEX IF NOT EXISTS idx_placements_created_at ON placements(created_at);
`

// Transfer modes recorded per placement.
const (
	ModeMoved  = "moved"
	ModeCopied = "copied"
)

// Placement is one placed book.
type Placement struct {
	ID         int64
	ASIN       string
	Title      string
	Author     string
	SourcePath string
	DestPath   string
	SizeBytes  int64
	Mode       string
	CreatedAt  time.Time
}

// Store persists placements in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
// Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a placement record.
func (s *Store) Add(p *Placement) error {
	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO placements (asin, title, author, source_path, dest_path, size_bytes, mode, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ASIN, p.Title, p.Author, p.SourcePath, p.DestPath, p.SizeBytes, p.Mode, now,
	)
	if err != nil {
		return fmt.Errorf("insert placement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	p.ID = id
	p.CreatedAt = now
	return nil
}

// Recent returns the most recent placements, newest first.
func (s *Store) Recent(limit int) ([]*Placement, error) {
	query := `SELECT id, asin, title, author, source_path, dest_path, size_bytes, mode, created_at
		FROM placements ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Placement
	for rows.Next() {
		p := &Placement{}
		if err := rows.Scan(&p.ID, &p.ASIN, &p.Title, &p.Author, &p.SourcePath,
			&p.DestPath, &p.SizeBytes, &p.Mode, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan placement: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate placements: %w", err)
	}
	return results, nil
}
