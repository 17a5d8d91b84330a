package birthdays

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/birthdays/internal/memory"
	"github.com/mesh-intelligence/birthdays/pkg/dates"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

// failingStore fails every call and counts how often it was touched.
type failingStore struct {
	calls int
}

var errDisk = types.Persistf(errors.New("disk I/O error"), "test")

func (s *failingStore) Add(string, dates.Date) (types.Birthday, error) {
	s.calls++
	return types.Birthday{}, errDisk
}

func (s *failingStore) GetAll() ([]types.Birthday, error) {
	s.calls++
	return nil, errDisk
}

func (s *failingStore) Remove(int64) (*types.Birthday, error) {
	s.calls++
	return nil, errDisk
}

func ptr(v int) *int { return &v }

func setupRegistry(t *testing.T, seed ...types.Birthday) *Registry {
	t.Helper()
	r := New(memory.New(), nil)
	for _, b := range seed {
		_, err := r.Add(b.Name, b.Date)
		require.NoError(t, err)
	}
	return r
}

func person(name, date string) types.Birthday {
	return types.Birthday{Name: name, Date: dates.MustParse(date)}
}

func names(list []types.Birthday) []string {
	res := make([]string, len(list))
	for i, b := range list {
		res[i] = b.Name
	}
	return res
}

func TestAdd(t *testing.T) {
	r := setupRegistry(t)

	b, err := r.Add("Ben Dover", dates.MustParse("1990-05-03"))
	require.NoError(t, err)
	assert.Positive(t, b.ID)

	_, err = r.Add("   ", dates.MustParse("1990-05-03"))
	assert.ErrorIs(t, err, types.ErrInvalidName)
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = r.Add("Nobody", dates.Date{Year: 2023, Month: 2, Day: 29})
	assert.ErrorIs(t, err, types.ErrValidation)

	all, err := r.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAddPropagatesPersistenceError(t *testing.T) {
	r := New(&failingStore{}, nil)
	_, err := r.Add("Ben", dates.MustParse("1990-05-03"))
	assert.ErrorIs(t, err, types.ErrPersistence)
}

func TestSearch(t *testing.T) {
	r := setupRegistry(t,
		person("Ben Dover", "1990-05-03"),
		person("Anna Bell", "1985-05-17"),
		person("benjamin", "1990-11-03"),
		person("Leap Lee", "2000-02-29"),
	)

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "no filters returns all", query: Query{}, want: []string{"Ben Dover", "Anna Bell", "benjamin", "Leap Lee"}},
		{name: "name substring is case-sensitive", query: Query{Name: "Ben"}, want: []string{"Ben Dover"}},
		{name: "lowercase substring", query: Query{Name: "ben"}, want: []string{"benjamin"}},
		{name: "year", query: Query{Year: ptr(1990)}, want: []string{"Ben Dover", "benjamin"}},
		{name: "month", query: Query{Month: ptr(5)}, want: []string{"Ben Dover", "Anna Bell"}},
		{name: "day", query: Query{Day: ptr(3)}, want: []string{"Ben Dover", "benjamin"}},
		{name: "filters combine with AND", query: Query{Year: ptr(1990), Month: ptr(5)}, want: []string{"Ben Dover"}},
		{name: "leap day without year", query: Query{Month: ptr(2), Day: ptr(29)}, want: []string{"Leap Lee"}},
		{name: "nothing matches", query: Query{Name: "Zed"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Search(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSearchValidatesBeforeTouchingStorage(t *testing.T) {
	tests := []struct {
		name    string
		query   Query
		wantErr error
	}{
		{name: "month zero", query: Query{Month: ptr(0)}, wantErr: types.ErrInvalidMonth},
		{name: "month thirteen", query: Query{Month: ptr(13)}, wantErr: types.ErrInvalidMonth},
		{name: "day zero", query: Query{Day: ptr(0)}, wantErr: types.ErrInvalidDay},
		{name: "day thirty-two", query: Query{Day: ptr(32)}, wantErr: types.ErrInvalidDay},
		{name: "February 30", query: Query{Month: ptr(2), Day: ptr(30)}, wantErr: types.ErrValidation},
		{name: "April 31", query: Query{Month: ptr(4), Day: ptr(31)}, wantErr: types.ErrValidation},
		{name: "February 29 in a non-leap year", query: Query{Year: ptr(2023), Month: ptr(2), Day: ptr(29)}, wantErr: types.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &failingStore{}
			_, err := New(store, nil).Search(tt.query)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, types.ErrValidation)
			assert.Zero(t, store.calls, "storage must not be touched")
		})
	}
}

func TestSearchPropagatesPersistenceError(t *testing.T) {
	_, err := New(&failingStore{}, nil).Search(Query{Month: ptr(5)})
	assert.ErrorIs(t, err, types.ErrPersistence)
}

func TestNext(t *testing.T) {
	today := dates.MustParse("2024-06-01")

	t.Run("empty store", func(t *testing.T) {
		got, err := setupRegistry(t).Next(today)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("picks the smaller next occurrence", func(t *testing.T) {
		r := setupRegistry(t,
			person("Ben Dover", "1990-05-03"), // next 2025-05-03
			person("Anna Bell", "1985-07-17"), // next 2024-07-17
		)
		got, err := r.Next(today)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Anna Bell", got.Name)
	})

	t.Run("birthday today comes first", func(t *testing.T) {
		r := setupRegistry(t,
			person("Tomorrow", "1990-06-02"),
			person("Today", "1990-06-01"),
		)
		got, err := r.Next(today)
		require.NoError(t, err)
		assert.Equal(t, "Today", got.Name)
	})

	t.Run("ties keep store order", func(t *testing.T) {
		r := setupRegistry(t,
			person("First", "1990-08-08"),
			person("Second", "2001-08-08"),
		)
		got, err := r.Next(today)
		require.NoError(t, err)
		assert.Equal(t, "First", got.Name)
	})

	t.Run("persistence error", func(t *testing.T) {
		_, err := New(&failingStore{}, nil).Next(today)
		assert.ErrorIs(t, err, types.ErrPersistence)
	})
}

func TestToday(t *testing.T) {
	r := setupRegistry(t,
		person("Ben Dover", "1990-05-03"),
		person("Other", "1990-05-04"),
		person("Same Day", "2011-05-03"),
	)

	got, err := r.Today(dates.MustParse("2024-05-03"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Ben Dover", "Same Day"}, names(got))

	got, err = r.Today(dates.MustParse("2024-01-01"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestForget(t *testing.T) {
	r := setupRegistry(t)
	b, err := r.Add("Ben Dover", dates.MustParse("1990-05-03"))
	require.NoError(t, err)

	removed, err := r.Forget(b.ID)
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, b, *removed)

	again, err := r.Forget(b.ID)
	require.NoError(t, err)
	assert.Nil(t, again)

	none, err := r.Forget(-4)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestImport(t *testing.T) {
	r := setupRegistry(t, person("Existing", "1970-01-01"))

	added, err := r.Import([]types.Birthday{
		{ID: 1, Name: "Ada", Date: dates.MustParse("1815-12-10")},
		{ID: 2, Name: "", Date: dates.MustParse("1900-01-01")},
		{ID: 3, Name: "Bad Date", Date: dates.Date{Year: 1999, Month: 2, Day: 30}},
		{ID: 4, Name: "Grace", Date: dates.MustParse("1906-12-09")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	all, err := r.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"Existing", "Ada", "Grace"}, names(all))
	assert.NotEqual(t, int64(1), all[1].ID, "imported records get fresh ids")
}

func TestImportStopsOnStoreFailure(t *testing.T) {
	added, err := New(&failingStore{}, nil).Import([]types.Birthday{person("Ada", "1815-12-10")})
	assert.ErrorIs(t, err, types.ErrPersistence)
	assert.Zero(t, added)
}

func TestSortByNext(t *testing.T) {
	list := []types.Birthday{
		person("C", "1990-12-25"),
		person("A", "1990-03-01"),
		person("B", "1990-03-01"),
		person("D", "1990-02-28"),
	}
	SortByNext(list, dates.MustParse("2024-03-01"))
	assert.Equal(t, []string{"A", "B", "C", "D"}, names(list))
}
