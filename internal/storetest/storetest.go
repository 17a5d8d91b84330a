// Package storetest holds the behavior every types.Store implementation must
// show. Backend packages call RunTests from their own tests.
package storetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/birthdays/pkg/dates"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

// RunTests runs each conformance test against s, calling teardown after each
// one so the next starts from an empty store.
func RunTests(t *testing.T, s types.Store, teardown func()) {
	for _, tf := range []func(t *testing.T, s types.Store){
		testEmptyStore,
		testAddRoundTrip,
		testInsertionOrder,
		testRemove,
		testIDsNeverReused,
		testReturnedRecordsAreCopies,
		testDatesRoundTrip,
	} {
		tf(t, s)
		teardown()
	}
}

func testEmptyStore(t *testing.T, s types.Store) {
	t.Run("testEmptyStore", func(t *testing.T) {
		all, err := s.GetAll()
		require.NoError(t, err)
		assert.Empty(t, all)

		removed, err := s.Remove(1)
		require.NoError(t, err)
		assert.Nil(t, removed)
	})
}

func testAddRoundTrip(t *testing.T, s types.Store) {
	t.Run("testAddRoundTrip", func(t *testing.T) {
		date := dates.MustParse("1990-05-03")

		added, err := s.Add("Ben Dover", date)
		require.NoError(t, err)
		assert.Positive(t, added.ID)
		assert.Equal(t, "Ben Dover", added.Name)
		assert.Equal(t, date, added.Date)

		all, err := s.GetAll()
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, added, all[0])

		second, err := s.Add("Ben Dover", date)
		require.NoError(t, err)
		assert.NotEqual(t, added.ID, second.ID, "names are not unique keys")

		all, err = s.GetAll()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func testInsertionOrder(t *testing.T, s types.Store) {
	t.Run("testInsertionOrder", func(t *testing.T) {
		names := []string{"Charlie", "Alice", "Bob"}
		for _, name := range names {
			_, err := s.Add(name, dates.MustParse("2000-01-01"))
			require.NoError(t, err)
		}

		all, err := s.GetAll()
		require.NoError(t, err)
		require.Len(t, all, len(names))
		for i, name := range names {
			assert.Equal(t, name, all[i].Name)
			if i > 0 {
				assert.Greater(t, all[i].ID, all[i-1].ID)
			}
		}
	})
}

func testRemove(t *testing.T, s types.Store) {
	t.Run("testRemove", func(t *testing.T) {
		keep, err := s.Add("Keep", dates.MustParse("1980-07-14"))
		require.NoError(t, err)
		drop, err := s.Add("Drop", dates.MustParse("1975-11-30"))
		require.NoError(t, err)

		removed, err := s.Remove(drop.ID)
		require.NoError(t, err)
		require.NotNil(t, removed)
		assert.Equal(t, drop, *removed)

		again, err := s.Remove(drop.ID)
		require.NoError(t, err)
		assert.Nil(t, again)

		all, err := s.GetAll()
		require.NoError(t, err)
		assert.Equal(t, []types.Birthday{keep}, all)

		missing, err := s.Remove(keep.ID + 1000)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func testIDsNeverReused(t *testing.T, s types.Store) {
	t.Run("testIDsNeverReused", func(t *testing.T) {
		seen := map[int64]bool{}
		var last types.Birthday
		for i := 0; i < 3; i++ {
			b, err := s.Add("Person", dates.MustParse("2001-09-09"))
			require.NoError(t, err)
			assert.False(t, seen[b.ID])
			seen[b.ID] = true
			last = b
		}

		// Removing the highest id must not free it for the next insert.
		removed, err := s.Remove(last.ID)
		require.NoError(t, err)
		require.NotNil(t, removed)

		next, err := s.Add("Person", dates.MustParse("2001-09-09"))
		require.NoError(t, err)
		assert.False(t, seen[next.ID], "id %d was reused", next.ID)
		assert.Greater(t, next.ID, last.ID)
	})
}

func testReturnedRecordsAreCopies(t *testing.T, s types.Store) {
	t.Run("testReturnedRecordsAreCopies", func(t *testing.T) {
		_, err := s.Add("Original", dates.MustParse("1999-12-31"))
		require.NoError(t, err)

		all, err := s.GetAll()
		require.NoError(t, err)
		require.Len(t, all, 1)
		all[0].Name = "Mutated"

		again, err := s.GetAll()
		require.NoError(t, err)
		assert.Equal(t, "Original", again[0].Name)
	})
}

func testDatesRoundTrip(t *testing.T, s types.Store) {
	t.Run("testDatesRoundTrip", func(t *testing.T) {
		inputs := []string{"1900-01-01", "1969-12-31", "1970-01-01", "2000-02-29", "2038-01-20", "2099-12-31"}
		for _, in := range inputs {
			_, err := s.Add(in, dates.MustParse(in))
			require.NoError(t, err)
		}

		all, err := s.GetAll()
		require.NoError(t, err)
		require.Len(t, all, len(inputs))
		for i, in := range inputs {
			assert.Equal(t, dates.MustParse(in), all[i].Date, "date %s", in)
		}
	})
}
