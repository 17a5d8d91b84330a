// Today command for the birthday CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/birthdays/internal/render"
)

func newTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "List birthdays that fall on today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, closeFn, err := a.openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			today := a.today()
			list, err := reg.Today(today)
			if err != nil {
				return err
			}
			return render.Birthdays(a.stdout, a.outputFormat(), list, today)
		},
	}
}
