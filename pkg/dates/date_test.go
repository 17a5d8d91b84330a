package dates

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr bool
	}{
		{name: "ordinary date", year: 1990, month: time.May, day: 3},
		{name: "leap day in leap year", year: 2024, month: time.February, day: 29},
		{name: "leap day in century leap year", year: 2000, month: time.February, day: 29},
		{name: "leap day in non-leap year", year: 2023, month: time.February, day: 29, wantErr: true},
		{name: "leap day in century non-leap year", year: 1900, month: time.February, day: 29, wantErr: true},
		{name: "thirty-first of a thirty day month", year: 2024, month: time.April, day: 31, wantErr: true},
		{name: "month zero", year: 2024, month: 0, day: 1, wantErr: true},
		{name: "month thirteen", year: 2024, month: 13, day: 1, wantErr: true},
		{name: "day zero", year: 2024, month: time.January, day: 0, wantErr: true},
		{name: "first representable year", year: 0, month: time.January, day: 1},
		{name: "last representable year", year: 9999, month: time.December, day: 31},
		{name: "negative year", year: -1, month: time.March, day: 1, wantErr: true},
		{name: "five digit year", year: 12000, month: time.March, day: 1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.year, tt.month, tt.day)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Date{Year: tt.year, Month: tt.month, Day: tt.day}, d)
		})
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("1990-05-03")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 1990, Month: time.May, Day: 3}, d)
	assert.Equal(t, "1990-05-03", d.String())

	for _, bad := range []string{"", "1990-5-3", "03/05/1990", "2023-02-29", "1990-13-01", "tomorrow"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestTextRoundTripAtYearBounds(t *testing.T) {
	for _, d := range []Date{{Year: MinYear, Month: time.January, Day: 1}, {Year: MaxYear, Month: time.December, Day: 31}} {
		require.True(t, d.Valid())
		text, err := d.MarshalText()
		require.NoError(t, err)

		var got Date
		require.NoError(t, got.UnmarshalText(text), "text %s", text)
		assert.Equal(t, d, got)
	}

	assert.False(t, Date{Year: 12000, Month: time.March, Day: 1}.Valid())
}

func TestCompare(t *testing.T) {
	a := MustParse("2024-05-03")
	assert.Equal(t, 0, a.Compare(MustParse("2024-05-03")))
	assert.True(t, a.Before(MustParse("2024-05-04")))
	assert.True(t, a.Before(MustParse("2024-06-01")))
	assert.True(t, a.Before(MustParse("2025-01-01")))
	assert.True(t, a.After(MustParse("2024-05-02")))
	assert.True(t, a.After(MustParse("2023-12-31")))
}

func TestTimeRoundTrip(t *testing.T) {
	d := MustParse("1969-07-20")
	tm := d.Time()
	assert.Equal(t, time.UTC, tm.Location())
	assert.Equal(t, d, FromTime(time.Unix(tm.Unix(), 0).UTC()))
}

func TestTextEncoding(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	out, err := json.Marshal(wrapper{Date: MustParse("2000-02-29")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2000-02-29"}`, string(out))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"date":"1990-05-03"}`), &w))
	assert.Equal(t, MustParse("1990-05-03"), w.Date)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"1990-02-30"}`), &w))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(time.February, 2024))
	assert.Equal(t, 28, DaysIn(time.February, 2023))
	assert.Equal(t, 30, DaysIn(time.November, 2023))
	assert.Equal(t, 31, DaysIn(time.December, 2023))
}
