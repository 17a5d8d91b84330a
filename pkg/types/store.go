package types

import "github.com/mesh-intelligence/birthdays/pkg/dates"

// Store is durable CRUD over birthday records.
//
// Implementations assign ids on Add; ids increase monotonically and are never
// reused, even after the record holding the highest id is removed. Storage
// failures are returned wrapped in ErrPersistence. A missing record is not an
// error: Remove returns nil.
type Store interface {
	// Add inserts a new record and returns it with its assigned ID.
	// The date must already be a valid calendar date; Add does not
	// validate the name.
	Add(name string, date dates.Date) (Birthday, error)

	// GetAll returns every stored record in insertion order.
	GetAll() ([]Birthday, error)

	// Remove atomically deletes the record with the given id and returns
	// its prior contents, or nil if no such record exists.
	Remove(id int64) (*Birthday, error)
}
