// Next command for the birthday CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/birthdays/internal/render"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

func newNextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next upcoming birthday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeFn, err := a.openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			today := a.today()
			b, err := reg.Next(today)
			if err != nil {
				return err
			}

			var list []types.Birthday
			if b != nil {
				list = append(list, *b)
			}
			return render.Birthdays(a.stdout, a.outputFormat(), list, today)
		},
	}
}
