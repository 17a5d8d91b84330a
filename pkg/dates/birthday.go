package dates

import "time"

// Anniversary returns birth's month and day in the given year.
//
// A February 29 birth date falls on February 28 in non-leap years.
func Anniversary(birth Date, year int) Date {
	day := birth.Day
	if birth.Month == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return Date{Year: year, Month: birth.Month, Day: day}
}

// Age returns the number of full years elapsed from birth to today.
// The second result is false when today precedes birth.
func Age(birth, today Date) (int, bool) {
	if today.Before(birth) {
		return 0, false
	}
	years := today.Year - birth.Year
	if today.Before(Anniversary(birth, today.Year)) {
		years--
	}
	return years, true
}

// NextOccurrence returns the first anniversary of birth on or after today.
func NextOccurrence(birth, today Date) Date {
	candidate := Anniversary(birth, today.Year)
	if candidate.Before(today) {
		return Anniversary(birth, today.Year+1)
	}
	return candidate
}

// IsToday reports whether today is an anniversary of birth, ignoring the year.
func IsToday(birth, today Date) bool {
	return Anniversary(birth, today.Year) == today
}

// DaysUntil returns the number of days from today to the next anniversary of
// birth. It is zero on the birthday itself.
func DaysUntil(birth, today Date) int {
	next := NextOccurrence(birth, today)
	return int(next.Time().Sub(today.Time()).Hours() / 24)
}
