package domain

import (
	"time"
)

// DateKeyFormat is the canonical calendar-date key: zero-padded YYYY-MM-DD.
// Keys in this form sort lexicographically in date order.
const DateKeyFormat = "2006-01-02"

// FormatDateKey formats a time as a calendar-date key.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// ParseDateKey parses a calendar-date key back into a time value.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(DateKeyFormat, key)
}

// WeekStart returns the Sunday on or before the given date.
func WeekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// WeekDateKeys returns the seven date keys of the Sunday-start week
// containing the given date.
func WeekDateKeys(t time.Time) []string {
	start := WeekStart(t)
	keys := make([]string, 7)
	for i := 0; i < 7; i++ {
		keys[i] = FormatDateKey(start.AddDate(0, 0, i))
	}
	return keys
}

// MonthBounds returns the first and last date keys of a month.
func MonthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return FormatDateKey(first), FormatDateKey(last)
}

// DaysInMonth returns the number of days in a month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
