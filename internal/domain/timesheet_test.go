package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusInProgress.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, Status("submitted").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestTimesheetMutability(t *testing.T) {
	ts := &Timesheet{Status: StatusInProgress}
	assert.True(t, ts.IsMutable())
	assert.False(t, ts.IsCompleted())

	ts.Status = StatusCompleted
	assert.False(t, ts.IsMutable())
	assert.True(t, ts.IsCompleted())
}

func TestSumEntryHours(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	ts := &Timesheet{
		Entries: []TimeEntry{
			{Date: monday, JobName: "ProjectA", Hours: 8},
			{Date: monday.AddDate(0, 0, 1), JobName: "ProjectB", Hours: 4.5},
		},
	}

	assert.Equal(t, 12.5, ts.SumEntryHours())
}

func TestSumEntryHoursEmpty(t *testing.T) {
	ts := &Timesheet{}
	assert.Equal(t, 0.0, ts.SumEntryHours())
}

func TestPrincipalOwns(t *testing.T) {
	ts := &Timesheet{Owner: Employee{ID: "emp-1", Email: "a@example.com", Role: RoleEmployee}}

	owner := Principal{EmployeeID: "emp-1", Email: "a@example.com", Role: RoleEmployee}
	other := Principal{EmployeeID: "emp-2", Email: "b@example.com", Role: RoleEmployee}

	assert.True(t, owner.Owns(ts))
	assert.False(t, other.Owns(ts))
	assert.False(t, owner.Owns(nil))
}

func TestPrincipalIsManager(t *testing.T) {
	assert.True(t, Principal{Role: RoleManager}.IsManager())
	assert.False(t, Principal{Role: RoleEmployee}.IsManager())
}
