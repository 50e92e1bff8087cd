package domain

import (
	"timesheet-manager/internal/repository/sqlite"
)

// EmployeeMapper handles conversion between domain and database Employee models.
type EmployeeMapper struct{}

// NewEmployeeMapper creates a new EmployeeMapper instance.
func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

// ToDatabase converts a domain Employee to a database Employee.
// The credential token is owned by the database row, not the domain model.
func (m *EmployeeMapper) ToDatabase(domainEmployee Employee, token string) sqlite.Employee {
	return sqlite.Employee{
		ID:    domainEmployee.ID,
		Email: domainEmployee.Email,
		Role:  string(domainEmployee.Role),
		Token: token,
	}
}

// FromDatabase converts a database Employee to a domain Employee.
func (m *EmployeeMapper) FromDatabase(dbEmployee sqlite.Employee) Employee {
	return Employee{
		ID:    dbEmployee.ID,
		Email: dbEmployee.Email,
		Role:  Role(dbEmployee.Role),
	}
}

// PrincipalFromDatabase converts a database Employee to a caller Principal.
func (m *EmployeeMapper) PrincipalFromDatabase(dbEmployee sqlite.Employee) Principal {
	return Principal{
		EmployeeID: dbEmployee.ID,
		Email:      dbEmployee.Email,
		Role:       Role(dbEmployee.Role),
	}
}

// TimeEntryMapper handles conversion between domain and database TimeEntry models.
type TimeEntryMapper struct{}

// NewTimeEntryMapper creates a new TimeEntryMapper instance.
func NewTimeEntryMapper() *TimeEntryMapper {
	return &TimeEntryMapper{}
}

// ToDatabase converts a domain TimeEntry to a database TimeEntry for the given timesheet.
func (m *TimeEntryMapper) ToDatabase(timesheetID string, domainEntry TimeEntry) sqlite.TimeEntry {
	return sqlite.TimeEntry{
		TimesheetID: timesheetID,
		EntryDate:   NormalizeDate(domainEntry.Date),
		JobName:     domainEntry.JobName,
		Hours:       domainEntry.Hours,
	}
}

// FromDatabase converts a database TimeEntry to a domain TimeEntry.
func (m *TimeEntryMapper) FromDatabase(dbEntry sqlite.TimeEntry) TimeEntry {
	return TimeEntry{
		Date:    NormalizeDate(dbEntry.EntryDate),
		JobName: dbEntry.JobName,
		Hours:   dbEntry.Hours,
	}
}

// FromDatabaseSlice converts a slice of database TimeEntries to domain TimeEntries.
func (m *TimeEntryMapper) FromDatabaseSlice(dbEntries []*sqlite.TimeEntry) []TimeEntry {
	domainEntries := make([]TimeEntry, len(dbEntries))
	for i, entry := range dbEntries {
		domainEntries[i] = m.FromDatabase(*entry)
	}
	return domainEntries
}

// TimesheetMapper handles conversion between domain and database Timesheet models.
type TimesheetMapper struct {
	employee *EmployeeMapper
	entry    *TimeEntryMapper
}

// NewTimesheetMapper creates a new TimesheetMapper instance.
func NewTimesheetMapper() *TimesheetMapper {
	return &TimesheetMapper{
		employee: NewEmployeeMapper(),
		entry:    NewTimeEntryMapper(),
	}
}

// ToDatabase converts a domain Timesheet to a database Timesheet row.
// Entries are persisted separately via AppendTimeEntry.
func (m *TimesheetMapper) ToDatabase(domainTs Timesheet) sqlite.Timesheet {
	return sqlite.Timesheet{
		ID:         domainTs.ID,
		OwnerID:    domainTs.Owner.ID,
		WeekStart:  NormalizeDate(domainTs.WeekStart),
		Status:     string(domainTs.Status),
		TotalHours: domainTs.TotalHours,
		CreatedAt:  domainTs.CreatedAt,
	}
}

// FromDatabase assembles a domain Timesheet from its row, its owner's row and
// its entry rows.
func (m *TimesheetMapper) FromDatabase(dbTs sqlite.Timesheet, dbOwner sqlite.Employee, dbEntries []*sqlite.TimeEntry) Timesheet {
	return Timesheet{
		ID:         dbTs.ID,
		Owner:      m.employee.FromDatabase(dbOwner),
		WeekStart:  NormalizeDate(dbTs.WeekStart),
		Entries:    m.entry.FromDatabaseSlice(dbEntries),
		TotalHours: dbTs.TotalHours,
		Status:     Status(dbTs.Status),
		CreatedAt:  dbTs.CreatedAt,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Employee  *EmployeeMapper
	TimeEntry *TimeEntryMapper
	Timesheet *TimesheetMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Employee:  NewEmployeeMapper(),
		TimeEntry: NewTimeEntryMapper(),
		Timesheet: NewTimesheetMapper(),
	}
}
