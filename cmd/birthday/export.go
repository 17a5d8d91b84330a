// Export command for the birthday CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/birthdays/internal/jsonl"
	"github.com/mesh-intelligence/birthdays/internal/render"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

func newExportCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all birthdays as JSON Lines",
		Long: `Export every birthday as JSON Lines, one record per line.

Without --file the records go to stdout. With --file the target is replaced
atomically.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeFn, err := a.openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			if file == "" {
				_, err := reg.Export(a.stdout)
				return err
			}

			list, err := reg.All()
			if err != nil {
				return err
			}
			records, err := jsonl.Marshal(list)
			if err != nil {
				return err
			}
			if err := jsonl.WriteFile(file, records); err != nil {
				return fmt.Errorf("%w: %w", types.ErrValidation, err)
			}
			return render.Exported(a.stdout, a.outputFormat(), len(records), file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "write to this file instead of stdout")
	return cmd
}
