package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTimesheet scans a single timesheet from a database row
func ScanTimesheet(scanner Scanner) (*Timesheet, error) {
	ts := &Timesheet{}
	var weekStart, createdAt string

	err := scanner.Scan(
		&ts.ID,
		&ts.OwnerID,
		&weekStart,
		&ts.Status,
		&ts.TotalHours,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if ts.WeekStart, err = ParseDateFromDB(weekStart); err != nil {
		return nil, err
	}
	if ts.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}

	return ts, nil
}

// ScanTimesheets scans multiple timesheets from database rows
func ScanTimesheets(rows Rows) ([]*Timesheet, error) {
	var timesheets []*Timesheet
	for rows.Next() {
		ts, err := ScanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		timesheets = append(timesheets, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return timesheets, nil
}

// ScanTimeEntry scans a single time entry from a database row
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var entryDate string

	err := scanner.Scan(
		&entry.ID,
		&entry.TimesheetID,
		&entryDate,
		&entry.JobName,
		&entry.Hours,
	)
	if err != nil {
		return nil, err
	}

	if entry.EntryDate, err = ParseDateFromDB(entryDate); err != nil {
		return nil, err
	}

	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	var entries []*TimeEntry
	for rows.Next() {
		entry, err := ScanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ScanEmployee scans a single employee from a database row
func ScanEmployee(scanner Scanner) (*Employee, error) {
	employee := &Employee{}
	err := scanner.Scan(&employee.ID, &employee.Email, &employee.Role, &employee.Token)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

// ScanEmployees scans multiple employees from database rows
func ScanEmployees(rows Rows) ([]*Employee, error) {
	var employees []*Employee
	for rows.Next() {
		employee, err := ScanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// ScanJob scans a single job from a database row
func ScanJob(scanner Scanner) (*Job, error) {
	job := &Job{}
	err := scanner.Scan(&job.Name)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// ScanJobs scans multiple jobs from database rows
func ScanJobs(rows Rows) ([]*Job, error) {
	var jobs []*Job
	for rows.Next() {
		job, err := ScanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
