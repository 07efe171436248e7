package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"roadmap/internal/ports"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

const (
	// DriverModernc is the pure Go driver
	DriverModernc = "sqlite"
	// DriverMattn is the cgo driver
	DriverMattn = "sqlite3"
)

// FileName is the database file created inside the storage directory
const FileName = "roadmap.db"

// Store implements ports.KeyValueStore using a single SQLite table
type Store struct {
	db     *sql.DB
	dbPath string
	driver string
}

// Ensure Store implements KeyValueStore
var _ ports.KeyValueStore = (*Store)(nil)

// Open opens (creating if needed) the database in dir using the named driver.
// An empty driver selects DriverModernc.
func Open(ctx context.Context, dir, driver string) (*Store, error) {
	switch driver {
	case "":
		driver = DriverModernc
	case DriverModernc, DriverMattn:
	default:
		return nil, fmt.Errorf("unknown sqlite driver %q (expected %s or %s)", driver, DriverModernc, DriverMattn)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	dbPath := filepath.Join(dir, FileName)

	db, err := sql.Open(driver, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Pragmas + schema in single batch
	_, err = db.ExecContext(ctx, `
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath, driver: driver}
	if err := s.updateMeta(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}
	return s, nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

// Driver returns the database/sql driver name in use
func (s *Store) Driver() string {
	return s.driver
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// updateMeta records the schema version
func (s *Store) updateMeta(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion)
	return err
}

// SchemaVersion returns the stored schema version
func (s *Store) SchemaVersion(ctx context.Context) (string, error) {
	var version string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	return version, err
}

// Get retrieves a value by key
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

// Put inserts or replaces a value
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO kv (key, value, updated_at)
			VALUES (?, ?, ?)
		`, key, value, time.Now().Unix())
		return err
	})
}

// Delete removes a key
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

// UpdatedAt returns when key was last written, or the zero time if it is absent
func (s *Store) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var unix int64
	err := s.db.QueryRowContext(ctx, `SELECT updated_at FROM kv WHERE key = ?`, key).Scan(&unix)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(unix, 0), nil
}

// withTx runs fn in a transaction, committing on success
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
