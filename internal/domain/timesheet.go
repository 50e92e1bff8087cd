package domain

import (
	"time"
)

// Status represents the lifecycle state of a timesheet.
type Status string

const (
	// StatusInProgress is the initial, mutable state.
	StatusInProgress Status = "in_progress"
	// StatusCompleted is the terminal, locked state. There is no reopen.
	StatusCompleted Status = "completed"
)

// IsValid checks if the status is one of the known lifecycle states.
func (s Status) IsValid() bool {
	return s == StatusInProgress || s == StatusCompleted
}

// Timesheet is an owner-scoped weekly container of time entries.
// ID, Owner and WeekStart are immutable after creation; Entries grow only by
// append while the status is in_progress; TotalHours always equals the sum of
// entry hours.
type Timesheet struct {
	ID         string
	Owner      Employee
	WeekStart  time.Time
	Entries    []TimeEntry
	TotalHours float64
	Status     Status
	CreatedAt  time.Time
}

// IsMutable returns true while entries may still be appended.
func (ts *Timesheet) IsMutable() bool {
	return ts.Status == StatusInProgress
}

// IsCompleted returns true once the timesheet has been locked.
func (ts *Timesheet) IsCompleted() bool {
	return ts.Status == StatusCompleted
}

// SumEntryHours recomputes the total from the entry slice. The persisted
// TotalHours must always agree with this value.
func (ts *Timesheet) SumEntryHours() float64 {
	var total float64
	for _, entry := range ts.Entries {
		total += entry.Hours
	}
	return total
}
