package render

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/birthdays/pkg/types"
)

// Result is the structured form of a confirmation message.
type Result struct {
	Status   string          `json:"status" yaml:"status"`
	Birthday *types.Birthday `json:"birthday,omitempty" yaml:"birthday,omitempty"`
	Count    *int            `json:"count,omitempty" yaml:"count,omitempty"`
	Skipped  *int            `json:"skipped,omitempty" yaml:"skipped,omitempty"`

	ConfigDir string `json:"config_dir,omitempty" yaml:"config_dir,omitempty"`
	Database  string `json:"database,omitempty" yaml:"database,omitempty"`
	File      string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Added confirms that b was stored.
func Added(w io.Writer, format string, b types.Birthday) error {
	return message(w, format, Result{Status: "added", Birthday: &b},
		fmt.Sprintf("Added birthday of '%s' (id %d)", b.Name, b.ID))
}

// Forgotten confirms that b was removed.
func Forgotten(w io.Writer, format string, b types.Birthday) error {
	return message(w, format, Result{Status: "forgotten", Birthday: &b},
		fmt.Sprintf("Birthday of '%s' has been forgotten 🗑️", b.Name))
}

// NotFound reports that no record matched.
func NotFound(w io.Writer, format string) error {
	return message(w, format, Result{Status: "not_found"}, NoBirthdayFound)
}

// Imported reports how many records an import added and skipped.
func Imported(w io.Writer, format string, count, skipped int) error {
	text := fmt.Sprintf("Imported %d birthdays", count)
	if skipped > 0 {
		text += fmt.Sprintf(" (%d skipped)", skipped)
	}
	return message(w, format, Result{Status: "imported", Count: &count, Skipped: &skipped}, text)
}

// Exported reports how many records an export wrote to path.
func Exported(w io.Writer, format string, count int, path string) error {
	return message(w, format, Result{Status: "exported", Count: &count, File: path},
		fmt.Sprintf("Exported %d birthdays to %s", count, path))
}

// Initialized reports the directories prepared by init.
func Initialized(w io.Writer, format, configDir, database string) error {
	return message(w, format, Result{Status: "initialized", ConfigDir: configDir, Database: database},
		fmt.Sprintf("Config: %s\nDatabase: %s", configDir, database))
}

func message(w io.Writer, format string, result Result, text string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatYAML:
		return writeYAML(w, result)
	default:
		_, err := fmt.Fprintln(w, text)
		return err
	}
}
