package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	extmanerrors "github.com/alexisbeaulieu97/extman/pkg/errors"
)

const createPreferencesTable = `
CREATE TABLE IF NOT EXISTS preferences (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// SQLiteStore persists preferences in a SQLite database.
type SQLiteStore struct {
	sqlDB *sql.DB
}

// OpenSQLite opens (creating if needed) the preference database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0755); err != nil {
		return nil, extmanerrors.NewStorageError(BackendSQLite, "create directory", "", err)
	}

	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, extmanerrors.NewStorageError(BackendSQLite, "open", "", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, extmanerrors.NewStorageError(BackendSQLite, "ping", "", err)
	}
	if _, err := sqlDB.Exec(createPreferencesTable); err != nil {
		_ = sqlDB.Close()
		return nil, extmanerrors.NewStorageError(BackendSQLite, "create table", "", err)
	}
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

// Get returns the stored value for key.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if s == nil || s.sqlDB == nil {
		return "", false, fmt.Errorf("storage is not configured")
	}

	var value string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, extmanerrors.NewStorageError(BackendSQLite, "get", key, err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().UnixMilli())
	if err != nil {
		return extmanerrors.NewStorageError(BackendSQLite, "set", key, err)
	}
	return nil
}

// Close closes the SQLite handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

var _ Store = (*SQLiteStore)(nil)
