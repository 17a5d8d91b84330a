// Package dates provides a calendar date type and the pure date arithmetic
// used for birthdays: age, next occurrence and same-day checks.
//
// Nothing in this package reads the system clock. Every computation takes the
// reference date ("today") as an argument.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the textual form of a Date (YYYY-MM-DD).
const Layout = "2006-01-02"

// Years representable in Layout.
const (
	MinYear = 0
	MaxYear = 9999
)

// ErrInvalidDate is returned when a year, month and day do not name a real
// Gregorian calendar date, or when text cannot be parsed as one.
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar date without time of day or time zone.
// The zero Date is not valid; construct dates with New, Parse or FromTime.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the Date for year, month and day.
// Returns ErrInvalidDate if the combination does not exist (for example
// February 30, or February 29 in a non-leap year) or if year falls outside
// MinYear..MaxYear, the years Layout can represent.
func New(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysIn(month, year) {
		return Date{}, fmt.Errorf("%w: day %d out of range for %s %d", ErrInvalidDate, day, month, year)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// Parse parses text in YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level literals.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the calendar date of now in the local time zone.
// Callers pass the result into the arithmetic functions; it is the only
// place a wall clock enters the package.
func Today(now time.Time) Date {
	return FromTime(now.Local())
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether d names a real calendar date.
func (d Date) Valid() bool {
	_, err := New(d.Year, d.Month, d.Day)
	return err == nil
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to, or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month of year.
func DaysIn(month time.Month, year int) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
