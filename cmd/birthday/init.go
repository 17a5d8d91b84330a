// Init command for the birthday CLI.
package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/birthdays/internal/paths"
	"github.com/mesh-intelligence/birthdays/internal/render"
	"github.com/mesh-intelligence/birthdays/pkg/sqlite"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and the database",
		Long: `Create the configuration directory with a default config.yaml and the data
directory with an empty database. Running init again changes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(a.flags.configDir)
			if err != nil {
				return types.Persistf(err, "resolve config dir")
			}
			dataDir, err := a.dataDir()
			if err != nil {
				return err
			}

			backend := sqlite.NewBackend(a.log)
			if err := backend.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
				return err
			}
			if err := backend.Detach(); err != nil {
				return err
			}

			return render.Initialized(a.stdout, a.outputFormat(), configDir,
				filepath.Join(dataDir, sqlite.DatabaseFile))
		},
	}
}
