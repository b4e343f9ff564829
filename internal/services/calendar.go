package services

import "time"

// The ledger runs on a single fixed calendar: dates are compared at
// day granularity in UTC, with no time-of-day component.

// DateOnly strips the time-of-day from value, keeping its wall-clock
// calendar day and pinning it to UTC midnight.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ExpectedDate returns the calendar date of day n (1-based) for a goal
// starting at start: start + (n-1) days.
func ExpectedDate(start time.Time, n int) time.Time {
	return DateOnly(start).AddDate(0, 0, n-1)
}

// SameDate reports whether two timestamps fall on the same calendar
// day.
func SameDate(a time.Time, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
