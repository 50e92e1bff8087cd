package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"timesheet-manager/internal/repository/sqlite"
)

func TestEmployeeMapperRoundTrip(t *testing.T) {
	mapper := NewEmployeeMapper()

	domainEmployee := Employee{ID: "emp-1", Email: "a@example.com", Role: RoleManager}
	dbEmployee := mapper.ToDatabase(domainEmployee, "token-1")

	assert.Equal(t, "emp-1", dbEmployee.ID)
	assert.Equal(t, "a@example.com", dbEmployee.Email)
	assert.Equal(t, "manager", dbEmployee.Role)
	assert.Equal(t, "token-1", dbEmployee.Token)

	back := mapper.FromDatabase(dbEmployee)
	assert.Equal(t, domainEmployee, back)
}

func TestEmployeeMapperPrincipal(t *testing.T) {
	mapper := NewEmployeeMapper()

	principal := mapper.PrincipalFromDatabase(sqlite.Employee{
		ID:    "emp-1",
		Email: "a@example.com",
		Role:  "employee",
		Token: "token-1",
	})

	assert.Equal(t, "emp-1", principal.EmployeeID)
	assert.Equal(t, "a@example.com", principal.Email)
	assert.Equal(t, RoleEmployee, principal.Role)
}

func TestTimeEntryMapper(t *testing.T) {
	mapper := NewTimeEntryMapper()

	entry := TimeEntry{
		Date:    time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
		JobName: "ProjectA",
		Hours:   8,
	}

	dbEntry := mapper.ToDatabase("ts-1", entry)
	assert.Equal(t, "ts-1", dbEntry.TimesheetID)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), dbEntry.EntryDate)
	assert.Equal(t, "ProjectA", dbEntry.JobName)
	assert.Equal(t, 8.0, dbEntry.Hours)

	back := mapper.FromDatabase(dbEntry)
	assert.Equal(t, NormalizeDate(entry.Date), back.Date)
	assert.Equal(t, entry.JobName, back.JobName)
	assert.Equal(t, entry.Hours, back.Hours)
}

func TestTimesheetMapperFromDatabase(t *testing.T) {
	mapper := NewTimesheetMapper()

	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	dbTs := sqlite.Timesheet{
		ID:         "ts-1",
		OwnerID:    "emp-1",
		WeekStart:  monday,
		Status:     "in_progress",
		TotalHours: 12.5,
		CreatedAt:  created,
	}
	dbOwner := sqlite.Employee{ID: "emp-1", Email: "a@example.com", Role: "employee"}
	dbEntries := []*sqlite.TimeEntry{
		{ID: 1, TimesheetID: "ts-1", EntryDate: monday, JobName: "ProjectA", Hours: 8},
		{ID: 2, TimesheetID: "ts-1", EntryDate: monday.AddDate(0, 0, 1), JobName: "ProjectB", Hours: 4.5},
	}

	ts := mapper.FromDatabase(dbTs, dbOwner, dbEntries)

	assert.Equal(t, "ts-1", ts.ID)
	assert.Equal(t, "a@example.com", ts.Owner.Email)
	assert.Equal(t, monday, ts.WeekStart)
	assert.Equal(t, StatusInProgress, ts.Status)
	assert.Equal(t, 12.5, ts.TotalHours)
	assert.Len(t, ts.Entries, 2)
	assert.Equal(t, "ProjectA", ts.Entries[0].JobName)
	assert.Equal(t, "ProjectB", ts.Entries[1].JobName)

	// The derived total must agree with the entry rows
	assert.Equal(t, ts.TotalHours, ts.SumEntryHours())
}

func TestTimesheetMapperToDatabase(t *testing.T) {
	mapper := NewTimesheetMapper()

	ts := Timesheet{
		ID:         "ts-1",
		Owner:      Employee{ID: "emp-1", Email: "a@example.com", Role: RoleEmployee},
		WeekStart:  time.Date(2024, 6, 3, 16, 0, 0, 0, time.UTC),
		Status:     StatusInProgress,
		TotalHours: 0,
		CreatedAt:  time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
	}

	dbTs := mapper.ToDatabase(ts)
	assert.Equal(t, "ts-1", dbTs.ID)
	assert.Equal(t, "emp-1", dbTs.OwnerID)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), dbTs.WeekStart)
	assert.Equal(t, "in_progress", dbTs.Status)
}
