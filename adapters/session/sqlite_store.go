package session

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// SQLiteStore implements the SessionStore interface. It is the CLI's stand-in
// for browser local storage: a small key-value table holding the two token
// strings between runs.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the session database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	if err := initializeStore(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// Initialize session table
func initializeStore(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create session table: %w", err)
	}
	return nil
}

// SetTokens stores the token pair, replacing any previous session.
func (s *SQLiteStore) SetTokens(access, refresh string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin session update: %w", err)
	}

	for key, value := range map[string]string{
		accessTokenKey:  access,
		refreshTokenKey: refresh,
	} {
		if _, err := tx.Exec(
			"INSERT INTO session (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to store %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Tokens returns the stored pair. Both strings are empty when signed out.
func (s *SQLiteStore) Tokens() (string, string, error) {
	access, err := s.get(accessTokenKey)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.get(refreshTokenKey)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *SQLiteStore) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM session WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

// Clear removes any stored tokens.
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM session"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
