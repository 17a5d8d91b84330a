package birthdays

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/birthdays/internal/jsonl"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

// Export writes every stored birthday to w as JSON Lines, one record per
// line in store order.
func (r *Registry) Export(w io.Writer) (int, error) {
	all, err := r.store.GetAll()
	if err != nil {
		return 0, err
	}
	records, err := jsonl.Marshal(all)
	if err != nil {
		return 0, err
	}
	if err := jsonl.Encode(w, records); err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	r.log.Info("export finished", "records", len(records))
	return len(records), nil
}

// Restore reads JSON Lines from rd and imports every well-formed record.
// Lines that are not JSON, do not decode as a birthday, or carry a blank
// name or invalid date count as skipped.
func (r *Registry) Restore(rd io.Reader) (added, skipped int, err error) {
	raw, skipped, err := jsonl.Decode(rd)
	if err != nil {
		return 0, skipped, fmt.Errorf("%w: %w", types.ErrValidation, err)
	}
	return r.restore(raw, skipped)
}

// RestoreFile is Restore reading from the JSON Lines file at path.
func (r *Registry) RestoreFile(path string) (added, skipped int, err error) {
	raw, skipped, err := jsonl.ReadFile(path)
	if err != nil {
		return 0, skipped, fmt.Errorf("%w: %w", types.ErrValidation, err)
	}
	return r.restore(raw, skipped)
}

// restore imports raw records. On a store failure added counts the records
// stored before it, and skipped only the records rejected before any insert.
func (r *Registry) restore(raw []json.RawMessage, skipped int) (int, int, error) {
	records := make([]types.Birthday, 0, len(raw))
	for _, line := range raw {
		var b types.Birthday
		if err := json.Unmarshal(line, &b); err != nil || !importable(b) {
			skipped++
			continue
		}
		records = append(records, b)
	}
	if skipped > 0 {
		r.log.Warn("restore skipped records", "skipped", skipped)
	}

	added, err := r.Import(records)
	return added, skipped, err
}
