package types

import "github.com/mesh-intelligence/birthdays/pkg/dates"

// Birthday is a stored person's name and date of birth.
//
// ID is assigned by the Store when the record is added and never changes.
// Birthday has no reference fields, so assigning or returning it by value
// always yields an independent copy.
type Birthday struct {
	ID   int64      `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`
	Date dates.Date `json:"date" yaml:"date"`
}

// Age returns the number of full years lived as of today. The second result
// is false when the birth date is after today.
func (b Birthday) Age(today dates.Date) (int, bool) {
	return dates.Age(b.Date, today)
}

// Next returns the next anniversary of the birth date on or after today.
func (b Birthday) Next(today dates.Date) dates.Date {
	return dates.NextOccurrence(b.Date, today)
}

// IsToday reports whether today is the birthday, ignoring the year.
func (b Birthday) IsToday(today dates.Date) bool {
	return dates.IsToday(b.Date, today)
}

// DaysUntil returns the days left until the next birthday; zero on the day.
func (b Birthday) DaysUntil(today dates.Date) int {
	return dates.DaysUntil(b.Date, today)
}
