// Package render formats birthdays for the terminal: an aligned table, JSON
// or YAML. Rows are ordered by days until the next birthday.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/birthdays/pkg/dates"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Messages printed by the CLI.
const (
	NoBirthdayFound = "No birthday found 🔎"
)

// ValidFormat reports whether format names a supported output format.
func ValidFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Row is one birthday with the values derived from the reference date.
type Row struct {
	ID        int64      `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Date      dates.Date `json:"date" yaml:"date"`
	Age       *int       `json:"age" yaml:"age"`
	Next      dates.Date `json:"next_birthday" yaml:"next_birthday"`
	DaysUntil int        `json:"days_until" yaml:"days_until"`
}

// Rows derives a Row per birthday, sorted stably by days until the next
// birthday.
func Rows(list []types.Birthday, today dates.Date) []Row {
	rows := make([]Row, 0, len(list))
	for _, b := range list {
		row := Row{
			ID:        b.ID,
			Name:      b.Name,
			Date:      b.Date,
			Next:      b.Next(today),
			DaysUntil: b.DaysUntil(today),
		}
		if age, ok := b.Age(today); ok {
			row.Age = &age
		}
		rows = append(rows, row)
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		return a.DaysUntil - b.DaysUntil
	})
	return rows
}

// Birthdays writes list to w in the given format.
func Birthdays(w io.Writer, format string, list []types.Birthday, today dates.Date) error {
	rows := Rows(list, today)
	switch format {
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatYAML:
		return writeYAML(w, rows)
	default:
		return writeTable(w, rows)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeTable(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, NoBirthdayFound)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tBirthday\tAge\tNext birthday")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.Date.Time().Format("02 January"), formatAge(r), formatDaysUntil(r.DaysUntil))
	}
	return tw.Flush()
}

func formatAge(r Row) string {
	if r.Age == nil {
		return "-"
	}
	return fmt.Sprintf("%d (%d)", *r.Age, r.Date.Year)
}

func formatDaysUntil(days int) string {
	switch days {
	case 0:
		return "today 🎂"
	case 1:
		return "1 day"
	default:
		return strconv.Itoa(days) + " days"
	}
}
