package domain

import (
	"time"
)

const (
	// MinEntryHours is the lower bound for hours on a single entry.
	MinEntryHours = 0.0
	// MaxEntryHours is the upper bound for hours on a single entry.
	MaxEntryHours = 24.0
)

// TimeEntry represents a single dated, job-tagged hour record within a timesheet.
// This is a pure domain model without database-specific concerns.
type TimeEntry struct {
	Date    time.Time
	JobName string
	Hours   float64
}

// NewTimeEntry creates a new TimeEntry for the given day, job and hours.
// The date is normalized to day granularity.
func NewTimeEntry(date time.Time, jobName string, hours float64) TimeEntry {
	return TimeEntry{
		Date:    NormalizeDate(date),
		JobName: jobName,
		Hours:   hours,
	}
}

// IsValid checks if the time entry has valid data.
func (te TimeEntry) IsValid() bool {
	if te.Date.IsZero() {
		return false
	}
	if te.JobName == "" {
		return false
	}
	if te.Hours < MinEntryHours || te.Hours > MaxEntryHours {
		return false
	}
	return true
}
