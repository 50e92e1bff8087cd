package domain

import (
	"time"
)

// DateKeyFormat is the canonical calendar-date representation used for week
// grouping keys and database storage.
const DateKeyFormat = "2006-01-02"

// NormalizeDate strips the time-of-day and timezone from a timestamp, leaving
// the UTC calendar date. Two timestamps denoting the same calendar day always
// normalize to the same value regardless of their encoding.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// WeekAnchor returns the most recent occurrence of the given weekday on or
// before t, normalized to a calendar date. With time.Monday this yields the
// Monday of the week containing t.
func WeekAnchor(t time.Time, anchor time.Weekday) time.Time {
	normalized := NormalizeDate(t)
	offset := (int(normalized.Weekday()) - int(anchor) + 7) % 7
	return normalized.AddDate(0, 0, -offset)
}

// DateKey formats a timestamp as its canonical calendar-date key.
func DateKey(t time.Time) string {
	return NormalizeDate(t).Format(DateKeyFormat)
}

// ParseDateKey parses a canonical calendar-date key back into a normalized date.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.Parse(DateKeyFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDate(t), nil
}
