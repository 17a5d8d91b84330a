// Import command for the birthday CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/birthdays/internal/render"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Import birthdays from a JSON Lines file",
		Long: `Import birthdays from a JSON Lines file written by export, or from stdin
when the file is "-".

Every record gets a new id. Malformed lines and records with a blank name or
an invalid date are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeFn, err := a.openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			var added, skipped int
			if args[0] == "-" {
				added, skipped, err = reg.Restore(cmd.InOrStdin())
			} else {
				added, skipped, err = reg.RestoreFile(args[0])
			}
			if err != nil {
				return err
			}
			return render.Imported(a.stdout, a.outputFormat(), added, skipped)
		},
	}
}
