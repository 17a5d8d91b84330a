// Shared helpers for birthday subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/birthdays/internal/paths"
	"github.com/mesh-intelligence/birthdays/pkg/birthdays"
	"github.com/mesh-intelligence/birthdays/pkg/dates"
	"github.com/mesh-intelligence/birthdays/pkg/sqlite"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

// dataDir resolves the data directory from flag, environment and config.
func (a *app) dataDir() (string, error) {
	configValue := ""
	if a.cfg != nil {
		configValue = a.cfg.GetString(cfgKeyDataDir)
	}
	dir, err := paths.ResolveDataDir(a.flags.dataDir, configValue)
	if err != nil {
		return "", types.Persistf(err, "resolve data dir")
	}
	return dir, nil
}

// openRegistry attaches the SQLite backend in the resolved data directory and
// returns a Registry over it. The caller must call the returned close func.
func (a *app) openRegistry() (*birthdays.Registry, func(), error) {
	dir, err := a.dataDir()
	if err != nil {
		return nil, nil, err
	}

	backend := sqlite.NewBackend(a.log)
	if err := backend.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := backend.Detach(); err != nil {
			a.log.Error("detach failed", "error", err)
		}
	}
	return birthdays.New(backend, a.log), closeFn, nil
}

// parseDate parses a YYYY-MM-DD argument as a validation error on failure.
func parseDate(s string) (dates.Date, error) {
	d, err := dates.Parse(s)
	if err != nil {
		return dates.Date{}, fmt.Errorf("%w: %w", types.ErrValidation, err)
	}
	return d, nil
}

// parseID parses a positive record id argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidID, s)
	}
	return id, nil
}
