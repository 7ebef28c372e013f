package cache

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS completions (
		fingerprint TEXT NOT NULL,
		prefix      TEXT NOT NULL,
		value       BLOB NOT NULL,
		PRIMARY KEY (fingerprint, prefix)
	);

	CREATE TABLE IF NOT EXISTS runs (
		id           TEXT PRIMARY KEY,
		fingerprint  TEXT NOT NULL,
		word_length  INTEGER NOT NULL,
		word_count   INTEGER NOT NULL,
		duration_ms  INTEGER NOT NULL,
		answers      BLOB NOT NULL,
		created_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
`

// Store is the persistent memoization layer: a SQLite-backed key-value
// store of subtree completions plus a record of finished runs. Open it
// for the duration of a search and close it on every exit path.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping cache database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetCompletions looks up the completion list stored for a prefix under
// a fingerprint. The second return is false on a miss. An entry written
// under any other fingerprint is never returned: the primary key scopes
// every read to the exact parameter set it was computed for.
func (s *Store) GetCompletions(fingerprint, prefix string) (CompletionList, bool, error) {
	var blob []byte
	err := s.db.QueryRow(
		`SELECT value FROM completions WHERE fingerprint = ? AND prefix = ?`,
		fingerprint, prefix,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query completions: %w", err)
	}

	completions, err := decodeCompletions(blob)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode cached completions: %w", err)
	}
	return completions, true, nil
}

// PutCompletions stores the completion list for a prefix. The write is a
// single transactional upsert, so a reader either sees the whole list or
// nothing; a stale entry under the same key is overwritten.
func (s *Store) PutCompletions(fingerprint, prefix string, completions CompletionList) error {
	blob, err := encodeCompletions(completions)
	if err != nil {
		return fmt.Errorf("failed to encode completions: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO completions (fingerprint, prefix, value) VALUES (?, ?, ?)`,
		fingerprint, prefix, blob,
	); err != nil {
		return fmt.Errorf("failed to write completions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit completions: %w", err)
	}
	return nil
}

// CountEntries returns the number of cached completion lists, optionally
// restricted to one fingerprint (empty string counts everything).
func (s *Store) CountEntries(fingerprint string) (int, error) {
	var (
		count int
		err   error
	)
	if fingerprint == "" {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM completions`).Scan(&count)
	} else {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM completions WHERE fingerprint = ?`, fingerprint).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return count, nil
}
