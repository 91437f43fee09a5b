// Package storage provides SQLite and in-memory implementations of the
// storage ports. Records are stored as opaque JSON blobs under fixed keys.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pausequest/pausequest-cli/internal/ports"
	_ "modernc.org/sqlite"
)

// sqliteStorage implements the ports.Storage interface using SQLite.
type sqliteStorage struct {
	db *sql.DB
	kv *sqliteKV
}

// Ensure sqliteStorage implements ports.Storage.
var _ ports.Storage = (*sqliteStorage)(nil)

// New creates a new SQLite storage instance.
func New(dbPath string) (ports.Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode keeps the synchronous per-mutation writes cheap
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	s := &sqliteStorage{db: db, kv: &sqliteKV{db: db}}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// NewMemory creates a new in-memory SQLite storage instance for testing.
func NewMemory() (ports.Storage, error) {
	return New(":memory:")
}

// Stats returns the gamification ledger repository.
func (s *sqliteStorage) Stats() ports.StatsRepository {
	return &statsRepository{kv: s.kv}
}

// Scheduler returns the scheduler record repository.
func (s *sqliteStorage) Scheduler() ports.SchedulerRepository {
	return &schedulerRepository{kv: s.kv}
}

// Settings returns the user settings repository.
func (s *sqliteStorage) Settings() ports.SettingsRepository {
	return &settingsRepository{kv: s.kv}
}

// KV returns the raw key-value capability.
func (s *sqliteStorage) KV() ports.KeyValueStore {
	return s.kv
}

// Close closes the database connection.
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *sqliteStorage) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// sqliteKV implements ports.KeyValueStore on the records table.
type sqliteKV struct {
	db *sql.DB
}

var _ ports.KeyValueStore = (*sqliteKV)(nil)

// Get returns the blob stored under key.
func (kv *sqliteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := kv.db.QueryRowContext(ctx,
		"SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read record %q: %w", key, err)
	}
	return value, true, nil
}

// Put stores the blob under key, replacing any previous value.
func (kv *sqliteKV) Put(ctx context.Context, key string, value []byte) error {
	_, err := kv.db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}
	return nil
}

// Delete removes the record under key.
func (kv *sqliteKV) Delete(ctx context.Context, key string) error {
	if _, err := kv.db.ExecContext(ctx, "DELETE FROM records WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete record %q: %w", key, err)
	}
	return nil
}
