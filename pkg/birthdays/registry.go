// Package birthdays is the application layer over a types.Store: validated
// adds, the derived queries (search, next, today) and bulk import.
package birthdays

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/mesh-intelligence/birthdays/pkg/dates"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

// Version is the release version reported by the CLI.
const Version = "0.1.0"

// Registry answers birthday queries against a Store.
type Registry struct {
	store types.Store
	log   *slog.Logger
}

// New returns a Registry backed by store. A nil logger uses slog.Default.
func New(store types.Store, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{store: store, log: log.With("component", "registry")}
}

// Add stores a new birthday. Returns ErrInvalidName for a blank name and
// ErrInvalidDate for a date that does not exist.
func (r *Registry) Add(name string, date dates.Date) (types.Birthday, error) {
	if strings.TrimSpace(name) == "" {
		return types.Birthday{}, types.ErrInvalidName
	}
	if !date.Valid() {
		return types.Birthday{}, types.ErrInvalidDate
	}

	b, err := r.store.Add(name, date)
	if err != nil {
		return types.Birthday{}, err
	}
	r.log.Info("birthday added", "id", b.ID, "date", b.Date)
	return b, nil
}

// All returns every stored birthday in store order.
func (r *Registry) All() ([]types.Birthday, error) {
	return r.store.GetAll()
}

// Search validates q, then returns the birthdays matching every supplied
// filter, in store order.
func (r *Registry) Search(q Query) ([]types.Birthday, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	all, err := r.store.GetAll()
	if err != nil {
		return nil, err
	}
	res := slices.DeleteFunc(all, func(b types.Birthday) bool {
		return !q.Matches(b)
	})
	r.log.Debug("search", "matches", len(res))
	return res, nil
}

// Next returns the birthday whose next occurrence on or after today comes
// first, or nil if the store is empty. Ties go to the earlier record in
// store order.
func (r *Registry) Next(today dates.Date) (*types.Birthday, error) {
	all, err := r.store.GetAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}

	SortByNext(all, today)
	return &all[0], nil
}

// Today returns the birthdays that fall on today, ignoring the year.
func (r *Registry) Today(today dates.Date) ([]types.Birthday, error) {
	all, err := r.store.GetAll()
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(b types.Birthday) bool {
		return !b.IsToday(today)
	}), nil
}

// Forget removes the birthday with the given id and returns it, or nil if
// there is no such record.
func (r *Registry) Forget(id int64) (*types.Birthday, error) {
	if id <= 0 {
		return nil, nil
	}

	b, err := r.store.Remove(id)
	if err != nil {
		return nil, err
	}
	if b != nil {
		r.log.Info("birthday forgotten", "id", b.ID)
	}
	return b, nil
}

// Import adds each record as a new birthday, ignoring record ids. Records
// with a blank name or invalid date are skipped. Returns how many were added;
// on a store failure the records added so far stay added.
func (r *Registry) Import(records []types.Birthday) (int, error) {
	added := 0
	for _, rec := range records {
		if !importable(rec) {
			r.log.Warn("skipping invalid record", "id", rec.ID, "name", rec.Name)
			continue
		}
		if _, err := r.store.Add(rec.Name, rec.Date); err != nil {
			return added, err
		}
		added++
	}
	r.log.Info("import finished", "added", added, "total", len(records))
	return added, nil
}

// importable reports whether rec can be added as a new birthday.
func importable(rec types.Birthday) bool {
	return strings.TrimSpace(rec.Name) != "" && rec.Date.Valid()
}

// SortByNext orders list by days until the next birthday. The sort is
// stable, so records with the same next occurrence keep their order.
func SortByNext(list []types.Birthday, today dates.Date) {
	slices.SortStableFunc(list, func(a, b types.Birthday) int {
		return a.Next(today).Compare(b.Next(today))
	})
}
