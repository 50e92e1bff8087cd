package sqlite

import (
	"time"
)

// dateFormat is the storage format for day-granularity columns
const dateFormat = "2006-01-02"

// FormatDateForDB formats a time.Time value as a calendar date string for
// day-granularity columns (week_start, entry_date)
func FormatDateForDB(t time.Time) string {
	return t.UTC().Format(dateFormat)
}

// ParseDateFromDB parses a calendar date string from the database into a UTC date
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(dateFormat, s)
}

// FormatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
