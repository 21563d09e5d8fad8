// Package library keeps a catalog of imported game records in a local
// SQLite database, so replays can be addressed by id instead of pasting
// full record strings around.
package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

// ErrNotFound indicates no entry exists with the given id.
var ErrNotFound = errors.New("library: entry not found")

const schema = `CREATE TABLE IF NOT EXISTS replays (
	id TEXT PRIMARY KEY,
	white TEXT NOT NULL DEFAULT '',
	black TEXT NOT NULL DEFAULT '',
	event TEXT NOT NULL DEFAULT '',
	record TEXT NOT NULL,
	plies INTEGER NOT NULL,
	imported_at TEXT NOT NULL
);`

// Entry is one cataloged game record.
type Entry struct {
	ID         string
	White      string
	Black      string
	Event      string
	Record     string
	Plies      int
	ImportedAt time.Time
}

// Library is a catalog of game records. It is safe for concurrent use.
type Library struct {
	db *sql.DB
}

// Open opens the catalog at path, creating the database and schema when
// they do not exist yet.
func Open(path string) (*Library, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening library: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Library{db: db}, nil
}

// Save stores an entry and returns its id. An entry without an id gets
// a fresh one; saving with an existing id replaces that entry.
func (l *Library) Save(ctx context.Context, e Entry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.ImportedAt.IsZero() {
		e.ImportedAt = time.Now().UTC()
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO replays (id, white, black, event, record, plies, imported_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?);`,
		e.ID, e.White, e.Black, e.Event, e.Record, e.Plies, e.ImportedAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("saving entry: %w", err)
	}
	return e.ID, nil
}

// Get returns the entry with the given id.
func (l *Library) Get(ctx context.Context, id string) (*Entry, error) {
	row := l.db.QueryRowContext(ctx,
		`SELECT id, white, black, event, record, plies, imported_at
		 FROM replays WHERE id = ?;`, id)

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("loading entry: %w", err)
	}
	return e, nil
}

// List returns every entry, most recently imported first.
func (l *Library) List(ctx context.Context) ([]Entry, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, white, black, event, record, plies, imported_at
		 FROM replays ORDER BY imported_at DESC, id;`)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	return entries, nil
}

// Close closes the underlying database.
func (l *Library) Close() error {
	return l.db.Close()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*Entry, error) {
	var e Entry
	var imported string
	if err := s.Scan(&e.ID, &e.White, &e.Black, &e.Event, &e.Record, &e.Plies, &imported); err != nil {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339, imported); err == nil {
		e.ImportedAt = t
	}
	return &e, nil
}
