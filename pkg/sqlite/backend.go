// Package sqlite provides the public API for the SQLite birthday backend.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"log/slog"

	"github.com/mesh-intelligence/birthdays/internal/sqlite"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

// DatabaseFile is the name of the database file inside Config.DataDir.
const DatabaseFile = sqlite.DatabaseFile

// NewBackend creates a new SQLite backend instance that logs to log
// (slog.Default when nil).
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend(nil)
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: "/var/lib/birthdays",
//	})
//	defer backend.Detach()
func NewBackend(log *slog.Logger) types.Backend {
	return sqlite.NewBackend().WithLogger(log)
}
