// Package store provides the SQLite item catalog for tagsift.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence of catalog items. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Item is one entry of a rendered list: a menu product, a feed entry, a row.
//
// Name and Description are the raw texts as scraped. PrimaryText and
// SecondaryText are their folded forms; they are not stored and are filled
// in by the session that loads the items.
type Item struct {
	ID          string
	SourceName  string
	Name        string
	Description string
	URL         string
	Position    int
	Fetched     time.Time

	PrimaryText   string
	SecondaryText string
}

// SourceCount is the number of catalog items per source.
type SourceCount struct {
	Name  string
	Count int
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		source_name TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		url TEXT,
		position INTEGER NOT NULL DEFAULT 0,
		fetched_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_items_source ON items(source_name, position);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveItems upserts items, returning the count of items that were not in the
// catalog before. Re-importing a source refreshes text and position in place.
func (s *Store) SaveItems(items []Item) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.Prepare(`SELECT 1 FROM items WHERE id = ?`)
	if err != nil {
		return 0, err
	}
	defer exists.Close()

	upsert, err := tx.Prepare(`
		INSERT INTO items (id, source_name, name, description, url, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			url = excluded.url,
			position = excluded.position,
			fetched_at = excluded.fetched_at
	`)
	if err != nil {
		return 0, err
	}
	defer upsert.Close()

	newCount := 0
	for _, item := range items {
		var one int
		err := exists.QueryRow(item.ID).Scan(&one)
		switch {
		case err == sql.ErrNoRows:
			newCount++
		case err != nil:
			return 0, fmt.Errorf("lookup %s: %w", item.ID, err)
		}

		if _, err := upsert.Exec(
			item.ID,
			item.SourceName,
			item.Name,
			item.Description,
			item.URL,
			item.Position,
			item.Fetched,
		); err != nil {
			return 0, fmt.Errorf("save %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return newCount, nil
}

// Items returns every catalog item in list order (source, then position).
// It satisfies the session item source contract.
func (s *Store) Items(ctx context.Context) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryItems(ctx, `
		SELECT id, source_name, name, description, url, position, fetched_at
		FROM items
		ORDER BY source_name, position
	`)
}

// ItemsBySource returns the items of one source in list order.
func (s *Store) ItemsBySource(ctx context.Context, source string) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryItems(ctx, `
		SELECT id, source_name, name, description, url, position, fetched_at
		FROM items
		WHERE source_name = ?
		ORDER BY position
	`, source)
}

// Sources lists the catalog's sources with their item counts.
func (s *Store) Sources(ctx context.Context) ([]SourceCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT source_name, COUNT(*) FROM items GROUP BY source_name ORDER BY source_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SourceCount
	for rows.Next() {
		var sc SourceCount
		if err := rows.Scan(&sc.Name, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// DeleteSource removes all items of a source, returning how many were removed.
func (s *Store) DeleteSource(source string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM items WHERE source_name = ?", source)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// Clear removes every item.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM items")
	return err
}

// queryItems executes a query and scans results into Items.
// Caller must hold s.mu (read lock is sufficient).
func (s *Store) queryItems(ctx context.Context, query string, args ...any) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		var url sql.NullString
		err := rows.Scan(
			&item.ID,
			&item.SourceName,
			&item.Name,
			&item.Description,
			&url,
			&item.Position,
			&item.Fetched,
		)
		if err != nil {
			return nil, err
		}
		item.URL = url.String
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
