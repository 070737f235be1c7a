package snapshot

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const latestKey = "latest"

// SQLiteStore keeps the latest snapshot as a single-row blob.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open snapshot database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			key TEXT PRIMARY KEY,
			payload BLOB NOT NULL
		)`); err != nil {
		db.Close()
		return fmt.Errorf("failed to create snapshot table: %w", err)
	}

	s.db = db
	return nil
}

// Save serializes the snapshot and replaces the stored row in one
// statement, so a concurrent reader never observes a torn payload.
func (s *SQLiteStore) Save(snap *Snapshot) error {
	if err := s.open(); err != nil {
		return err
	}

	data, err := Encode(snap)
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(
		"INSERT OR REPLACE INTO snapshots (key, payload) VALUES (?, ?)",
		latestKey, data,
	); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() (*Snapshot, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.QueryRow("SELECT payload FROM snapshots WHERE key = ?", latestKey).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return decodeOrNothing(data)
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}
