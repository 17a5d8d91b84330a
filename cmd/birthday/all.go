// All command for the birthday CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/birthdays/internal/render"
)

func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "all",
		Aliases: []string{"list", "ls"},
		Short:   "List all birthdays",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeFn, err := a.openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			list, err := reg.All()
			if err != nil {
				return err
			}
			return render.Birthdays(a.stdout, a.outputFormat(), list, a.today())
		},
	}
}
