package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rrenner/lfmkit/pkg/lastfm"
)

// Store persists named Last.fm session records in SQLite so several
// accounts can be authenticated once and resumed later.
type Store struct {
	db *sql.DB
}

// Account is one stored session record plus bookkeeping.
type Account struct {
	Name      string
	Username  string
	Record    lastfm.Record
	CreatedAt time.Time
}

// ErrNotFound is returned when no account with the given name exists.
var ErrNotFound = errors.New("store: account not found")

// Open opens (creating if needed) an account store at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection keeps in-memory databases consistent and is
	// plenty for this workload.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS accounts (
			name TEXT PRIMARY KEY,
			username TEXT NOT NULL DEFAULT '',
			api_key TEXT NOT NULL,
			api_secret TEXT NOT NULL,
			session_key TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save inserts or replaces the account under name.
func (s *Store) Save(ctx context.Context, name, username string, rec lastfm.Record) error {
	query := `
		INSERT INTO accounts (name, username, api_key, api_secret, session_key)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			username = excluded.username,
			api_key = excluded.api_key,
			api_secret = excluded.api_secret,
			session_key = excluded.session_key
	`
	if _, err := s.db.ExecContext(ctx, query, name, username, rec.APIKey, rec.APISecret, rec.SessionKey); err != nil {
		return fmt.Errorf("failed to save account %q: %w", name, err)
	}
	return nil
}

// Load returns the account stored under name, or ErrNotFound.
func (s *Store) Load(ctx context.Context, name string) (*Account, error) {
	query := `
		SELECT name, username, api_key, api_secret, session_key, created_at
		FROM accounts WHERE name = ?
	`
	var acc Account
	var createdAt int64
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&acc.Name, &acc.Username,
		&acc.Record.APIKey, &acc.Record.APISecret, &acc.Record.SessionKey,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account %q: %w", name, err)
	}
	acc.CreatedAt = time.Unix(createdAt, 0)
	return &acc, nil
}

// List returns all stored accounts ordered by name.
func (s *Store) List(ctx context.Context) ([]Account, error) {
	query := `
		SELECT name, username, api_key, api_secret, session_key, created_at
		FROM accounts ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var acc Account
		var createdAt int64
		if err := rows.Scan(
			&acc.Name, &acc.Username,
			&acc.Record.APIKey, &acc.Record.APISecret, &acc.Record.SessionKey,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		acc.CreatedAt = time.Unix(createdAt, 0)
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// Delete removes the account stored under name. Deleting an absent
// account returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete account %q: %w", name, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete account %q: %w", name, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
