// Package sqlite implements the SQLite storage backend for birthday records.
package sqlite

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/birthdays/pkg/types"
)

const (
	driverName = "sqlite"

	// DatabaseFile is the name of the database file inside DataDir.
	DatabaseFile = "birthdays.db"
)

// Compile-time interface check: Backend must implement types.Backend.
var _ types.Backend = (*Backend)(nil)

// Backend implements types.Store on a single SQLite database file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sqlx.DB
	log      *slog.Logger
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{log: slog.Default()}
}

// WithLogger sets the logger used for backend events and returns b.
func (b *Backend) WithLogger(log *slog.Logger) *Backend {
	if log != nil {
		b.log = log.With("component", "sqlite")
	}
	return b
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, opens the database file and applies
// schema migrations. Every failure except a second Attach is wrapped in
// types.ErrPersistence.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return types.Persistf(err, "create data directory %s", dataDir)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)
	if err := runMigrations(dbPath); err != nil {
		return types.Persistf(err, "initialize schema in %s", dbPath)
	}

	db, err := sqlx.Open(driverName, dbPath)
	if err != nil {
		return types.Persistf(err, "open %s", dbPath)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return types.Persistf(err, "ping %s", dbPath)
	}
	// One connection: every operation is a single statement and SQLite
	// serializes writers anyway.
	db.SetMaxOpenConns(1)

	b.db = db
	b.config = config
	b.attached = true

	b.log.Debug("attached", "path", dbPath)
	return nil
}

// Detach releases all resources held by the backend.
// After Detach, all operations return ErrStoreDetached.
// Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return types.Persistf(err, "close database")
		}
		b.db = nil
	}
	b.attached = false

	b.log.Debug("detached")
	return nil
}

// Close is Detach under the name io.Closer expects.
func (b *Backend) Close() error {
	return b.Detach()
}

// DataDir returns the directory holding the database file.
func (b *Backend) DataDir() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config.DataDir
}

// conn returns the open database handle or ErrStoreDetached.
// The caller must hold b.mu.
func (b *Backend) conn() (*sqlx.DB, error) {
	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.db, nil
}
