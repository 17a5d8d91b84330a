package birthdays

import (
	"strings"
	"time"

	"github.com/mesh-intelligence/birthdays/pkg/dates"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

// Query selects birthdays. Each filter applies only when set; set filters
// combine with AND.
type Query struct {
	// Name matches records whose name contains it (case-sensitive).
	Name string

	Year  *int
	Month *int
	Day   *int
}

// IsEmpty reports whether q has no filters.
func (q Query) IsEmpty() bool {
	return q.Name == "" && q.Year == nil && q.Month == nil && q.Day == nil
}

// Validate checks the month and day filters. Month must be in [1,12], day in
// [1,31], and when both are set the day must exist in that month (February
// 29 only when the year filter, if set, is a leap year).
func (q Query) Validate() error {
	if q.Month != nil && (*q.Month < 1 || *q.Month > 12) {
		return types.ErrInvalidMonth
	}
	if q.Day != nil && (*q.Day < 1 || *q.Day > 31) {
		return types.ErrInvalidDay
	}
	if q.Month != nil && q.Day != nil {
		year := 2000 // leap, so February 29 is allowed when no year is given
		if q.Year != nil {
			year = *q.Year
		}
		if _, err := dates.New(year, time.Month(*q.Month), *q.Day); err != nil {
			return types.ErrInvalidDate
		}
	}
	return nil
}

// Matches reports whether b passes every filter set on q.
func (q Query) Matches(b types.Birthday) bool {
	if q.Name != "" && !strings.Contains(b.Name, q.Name) {
		return false
	}
	if q.Year != nil && b.Date.Year != *q.Year {
		return false
	}
	if q.Month != nil && int(b.Date.Month) != *q.Month {
		return false
	}
	if q.Day != nil && b.Date.Day != *q.Day {
		return false
	}
	return true
}
