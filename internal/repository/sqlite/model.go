package sqlite

import "time"

// Employee represents an employee account row
type Employee struct {
	ID    string
	Email string
	Role  string
	Token string
}

// Job represents a row in the externally-managed job catalog
type Job struct {
	Name string
}

// Timesheet represents a weekly timesheet row.
// TotalHours is derived from the entry rows and only ever written inside the
// same transaction that mutates them.
type Timesheet struct {
	ID         string
	OwnerID    string
	WeekStart  time.Time
	Status     string
	TotalHours float64
	CreatedAt  time.Time
}

// TimeEntry represents a single time entry row belonging to a timesheet.
// The autoincrement ID preserves insertion order.
type TimeEntry struct {
	ID          int64
	TimesheetID string
	EntryDate   time.Time
	JobName     string
	Hours       float64
}
