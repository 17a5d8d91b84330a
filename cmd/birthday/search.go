// Search command for the birthday CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/birthdays/internal/render"
	"github.com/mesh-intelligence/birthdays/pkg/birthdays"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		name             string
		year, month, day int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search birthdays by name, year, month or day",
		Long: `Search birthdays. Every given filter must match.

The name filter matches any part of the name and is case-sensitive.`,
		Example: `  birthday search --name Ada
  birthday search -m 12 -d 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var q birthdays.Query
			flags := cmd.Flags()
			if flags.Changed("name") {
				q.Name = name
			}
			if flags.Changed("year") {
				q.Year = &year
			}
			if flags.Changed("month") {
				q.Month = &month
			}
			if flags.Changed("day") {
				q.Day = &day
			}
			if q.IsEmpty() {
				return cmd.Help()
			}
			// Reject bad filters before the database is opened.
			if err := q.Validate(); err != nil {
				return err
			}

			reg, closeFn, err := a.openRegistry()
			if err != nil {
				return err
			}
			defer closeFn()

			list, err := reg.Search(q)
			if err != nil {
				return err
			}
			return render.Birthdays(a.stdout, a.outputFormat(), list, a.today())
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "part of the name")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year of birth")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "month of birth (1-12)")
	cmd.Flags().IntVarP(&day, "day", "d", 0, "day of birth (1-31)")
	return cmd
}
