// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/tipsplit/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

const (
	kindInt  = "int"
	kindData = "data"
)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer, and the app only ever touches the store from one goroutine.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Exists reports whether any value is stored under key.
func (s *SQLiteStore) Exists(ctx context.Context, key uint32) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM persist WHERE key = ?",
		key,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check key %d: %w", key, err)
	}
	return n > 0, nil
}

// ReadInt retrieves the integer stored under key.
func (s *SQLiteStore) ReadInt(ctx context.Context, key uint32) (int32, error) {
	var v int64
	err := s.db.QueryRowContext(ctx,
		"SELECT int_value FROM persist WHERE key = ? AND kind = ?",
		key, kindInt,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read int %d: %w", key, err)
	}
	return int32(v), nil
}

// WriteInt stores an integer under key, replacing any previous value.
func (s *SQLiteStore) WriteInt(ctx context.Context, key uint32, value int32) error {
	return s.upsert(ctx, key, kindInt, int64(value), nil)
}

// ReadData retrieves the blob stored under key.
func (s *SQLiteStore) ReadData(ctx context.Context, key uint32) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM persist WHERE key = ? AND kind = ?",
		key, kindData,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data %d: %w", key, err)
	}
	return data, nil
}

// WriteData stores a blob under key, replacing any previous value.
func (s *SQLiteStore) WriteData(ctx context.Context, key uint32, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	return s.upsert(ctx, key, kindData, nil, data)
}

// Delete removes whatever is stored under key.
func (s *SQLiteStore) Delete(ctx context.Context, key uint32) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM persist WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %d: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) upsert(ctx context.Context, key uint32, kind string, intValue, data any) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO persist (key, kind, int_value, data, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			kind = excluded.kind,
			int_value = excluded.int_value,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		key, kind, intValue, data, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s %d: %w", kind, key, err)
	}
	return nil
}
