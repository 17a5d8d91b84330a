// Add command for the birthday CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/birthdays/internal/render"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <YYYY-MM-DD>",
		Short: "Add a birthday",
		Long: `Add a birthday for name, born on the given date (YYYY-MM-DD).

Names do not need to be unique. Each birthday gets a new id.`,
		Example: `  birthday add "Ada Lovelace" 1815-12-10`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[1])
			if err != nil {
				return err
			}

			reg, closeFn, err := a.openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			b, err := reg.Add(args[0], date)
			if err != nil {
				return err
			}
			return render.Added(a.stdout, a.outputFormat(), b)
		},
	}
}
