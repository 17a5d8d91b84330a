// Forget command for the birthday CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/birthdays/internal/render"
)

func newForgetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "forget <id>",
		Aliases: []string{"rm"},
		Short:   "Forget a birthday by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			reg, closeFn, err := a.openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			b, err := reg.Forget(id)
			if err != nil {
				return err
			}
			if b == nil {
				return render.NotFound(a.stdout, a.outputFormat())
			}
			return render.Forgotten(a.stdout, a.outputFormat(), *b)
		},
	}
}
