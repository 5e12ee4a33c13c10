package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"ot-tracker/internal/errors"
	"ot-tracker/internal/logging"
	"ot-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Options tunes a Repository
type Options struct {
	QueryTimeout   time.Duration
	WriteTimeout   time.Duration
	DirPermissions os.FileMode
	Logger         *logging.Logger
}

// DefaultOptions returns the timeouts used when no configuration is supplied
func DefaultOptions() Options {
	return Options{
		QueryTimeout:   10 * time.Second,
		WriteTimeout:   5 * time.Second,
		DirPermissions: 0755,
	}
}

// Repository is a key-value store backed by the kv_entries table
type Repository struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
	logger       *logging.Logger
}

// New creates a new SQLite repository with default options
func New(dbPath string) (*Repository, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions opens the database at dbPath, creating its directory when
// needed, and runs all pending migrations.
func NewWithOptions(dbPath string, opts Options) (*Repository, error) {
	defaults := DefaultOptions()
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = defaults.QueryTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaults.WriteTimeout
	}
	if opts.DirPermissions == 0 {
		opts.DirPermissions = defaults.DirPermissions
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	logger := opts.Logger.WithComponent(logging.ComponentDatabase)

	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), opts.DirPermissions); err != nil {
			return nil, errors.NewDatabaseError("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	if dbPath == MemoryPath {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.WriteTimeout)
	defer cancel()
	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}
	logger.Debug("database ready", "path", dbPath)

	return &Repository{
		db:           db,
		queryTimeout: opts.QueryTimeout,
		writeTimeout: opts.WriteTimeout,
		logger:       logger,
	}, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Get returns the value stored under key. found is false when the key has
// never been written.
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT key, value, updated_at FROM kv_entries WHERE key = ?`

	entry, err := QuerySingle(ctx, r.db, r.queryTimeout, query, ScanEntry, "entry", key, key)
	if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		r.logger.Operation(ctx, "kv.get", nil, logging.FieldKey, key, "found", false)
		return "", false, nil
	}
	r.logger.Operation(ctx, "kv.get", err, logging.FieldKey, key)
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set stores value under key, replacing any previous value
func (r *Repository) Set(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO kv_entries (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	err := Execute(ctx, r.db, r.writeTimeout, "set "+key, query, key, value)
	r.logger.Operation(ctx, "kv.set", err, logging.FieldKey, key, "bytes", len(value))
	return err
}

// Delete removes key. Deleting a missing key is not an error.
func (r *Repository) Delete(ctx context.Context, key string) error {
	err := Execute(ctx, r.db, r.writeTimeout, "delete "+key, `DELETE FROM kv_entries WHERE key = ?`, key)
	r.logger.Operation(ctx, "kv.delete", err, logging.FieldKey, key)
	return err
}
