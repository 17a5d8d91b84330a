// Package memory provides an in-memory types.Store for tests and for
// embedding applications that do not need persistence.
package memory

import (
	"sync"

	"github.com/mesh-intelligence/birthdays/pkg/dates"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

// Compile-time interface check.
var _ types.Store = (*Store)(nil)

// Store keeps records in insertion order behind a mutex.
type Store struct {
	mu      sync.Mutex
	last    int64
	records []types.Birthday
}

// New returns an empty in-memory Store.
func New() *Store {
	return &Store{}
}

// Add implements types.Store.Add.
func (s *Store) Add(name string, date dates.Date) (types.Birthday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++
	record := types.Birthday{ID: s.last, Name: name, Date: date}
	s.records = append(s.records, record)
	return record, nil
}

// GetAll implements types.Store.GetAll.
func (s *Store) GetAll() ([]types.Birthday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]types.Birthday, len(s.records))
	copy(res, s.records)
	return res, nil
}

// Remove implements types.Store.Remove.
func (s *Store) Remove(id int64) (*types.Birthday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.records {
		if record.ID == id {
			s.records = append(s.records[:i:i], s.records[i+1:]...)
			return &record, nil
		}
	}
	return nil, nil
}

func (s *Store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = 0
	s.records = nil
}
