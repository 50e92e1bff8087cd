package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"timesheet-manager/internal/errors"
	"timesheet-manager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Employee operations
	CreateEmployee(ctx context.Context, employee *Employee) error
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	GetEmployeeByToken(ctx context.Context, token string) (*Employee, error)

	// Job catalog operations
	CreateJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, name string) (*Job, error)
	ListJobs(ctx context.Context) ([]*Job, error)

	// Timesheet operations
	CreateTimesheet(ctx context.Context, ts *Timesheet) error
	GetTimesheet(ctx context.Context, id string) (*Timesheet, error)
	GetTimesheetForWeek(ctx context.Context, ownerID string, weekStart string) (*Timesheet, error)
	ListTimesheetsForOwner(ctx context.Context, ownerID string) ([]*Timesheet, error)
	ListTimesheets(ctx context.Context) ([]*Timesheet, error)
	SetTimesheetStatus(ctx context.Context, id string, status string) error

	// Time entry operations
	ListTimeEntries(ctx context.Context, timesheetID string) ([]*TimeEntry, error)
	AppendTimeEntry(ctx context.Context, entry *TimeEntry) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.Run(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateEmployee creates a new employee account
func (r *SQLiteRepository) CreateEmployee(ctx context.Context, employee *Employee) error {
	query := `
	INSERT INTO employees (id, email, role, token)
	VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, employee.ID, employee.Email, employee.Role, employee.Token)
	if err != nil {
		return HandleDatabaseError("create employee", err)
	}
	return nil
}

// GetEmployee retrieves an employee by ID
func (r *SQLiteRepository) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	query := `SELECT id, email, role, token FROM employees WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanEmployee, "employee", id, id)
}

// GetEmployeeByToken retrieves an employee by credential token
func (r *SQLiteRepository) GetEmployeeByToken(ctx context.Context, token string) (*Employee, error) {
	query := `SELECT id, email, role, token FROM employees WHERE token = ?`
	return QuerySingle(ctx, r.db, query, ScanEmployee, "credential", "token", token)
}

// CreateJob creates a new job catalog entry
func (r *SQLiteRepository) CreateJob(ctx context.Context, job *Job) error {
	query := `INSERT INTO jobs (name) VALUES (?)`
	_, err := r.db.ExecContext(ctx, query, job.Name)
	if err != nil {
		return HandleDatabaseError("create job", err)
	}
	return nil
}

// GetJob retrieves a job catalog entry by name
func (r *SQLiteRepository) GetJob(ctx context.Context, name string) (*Job, error) {
	query := `SELECT name FROM jobs WHERE name = ?`
	return QuerySingle(ctx, r.db, query, ScanJob, "job", name, name)
}

// ListJobs retrieves all job catalog entries
func (r *SQLiteRepository) ListJobs(ctx context.Context) ([]*Job, error) {
	query := `SELECT name FROM jobs ORDER BY name ASC`
	return QueryMultiple(ctx, r.db, query, ScanJobs, "jobs")
}

// CreateTimesheet creates a new timesheet row. A unique index on
// (owner_id, week_start) rejects a second sheet for the same week.
func (r *SQLiteRepository) CreateTimesheet(ctx context.Context, ts *Timesheet) error {
	query := `
	INSERT INTO timesheets (id, owner_id, week_start, status, total_hours, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	weekStart := FormatDateForDB(ts.WeekStart)
	_, err := r.db.ExecContext(ctx, query, ts.ID, ts.OwnerID, weekStart, ts.Status, ts.TotalHours, FormatTimeForDB(ts.CreatedAt))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return errors.NewDuplicateWeekError(ts.OwnerID, weekStart)
		}
		return HandleDatabaseError("create timesheet", err)
	}
	return nil
}

// GetTimesheet retrieves a timesheet by ID
func (r *SQLiteRepository) GetTimesheet(ctx context.Context, id string) (*Timesheet, error) {
	query := `
	SELECT id, owner_id, week_start, status, total_hours, created_at
	FROM timesheets
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTimesheet, "timesheet", id, id)
}

// GetTimesheetForWeek retrieves a timesheet by owner and week start date
func (r *SQLiteRepository) GetTimesheetForWeek(ctx context.Context, ownerID string, weekStart string) (*Timesheet, error) {
	query := `
	SELECT id, owner_id, week_start, status, total_hours, created_at
	FROM timesheets
	WHERE owner_id = ? AND week_start = ?`

	return QuerySingle(ctx, r.db, query, ScanTimesheet, "timesheet", ownerID+"/"+weekStart, ownerID, weekStart)
}

// ListTimesheetsForOwner retrieves all timesheets owned by an employee,
// most recently created first
func (r *SQLiteRepository) ListTimesheetsForOwner(ctx context.Context, ownerID string) ([]*Timesheet, error) {
	query := `
	SELECT id, owner_id, week_start, status, total_hours, created_at
	FROM timesheets
	WHERE owner_id = ?
	ORDER BY created_at DESC, rowid DESC`

	return QueryMultiple(ctx, r.db, query, ScanTimesheets, "timesheets", ownerID)
}

// ListTimesheets retrieves all timesheets, most recently created first
func (r *SQLiteRepository) ListTimesheets(ctx context.Context) ([]*Timesheet, error) {
	query := `
	SELECT id, owner_id, week_start, status, total_hours, created_at
	FROM timesheets
	ORDER BY created_at DESC, rowid DESC`

	return QueryMultiple(ctx, r.db, query, ScanTimesheets, "timesheets")
}

// SetTimesheetStatus updates the status of a timesheet
func (r *SQLiteRepository) SetTimesheetStatus(ctx context.Context, id string, status string) error {
	query := `UPDATE timesheets SET status = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "timesheet", id, status, id)
}

// ListTimeEntries retrieves the entries of a timesheet in insertion order
func (r *SQLiteRepository) ListTimeEntries(ctx context.Context, timesheetID string) ([]*TimeEntry, error) {
	query := `
	SELECT id, timesheet_id, entry_date, job_name, hours
	FROM time_entries
	WHERE timesheet_id = ?
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries", timesheetID)
}

// AppendTimeEntry inserts a time entry and recomputes the owning timesheet's
// total in a single transaction, so readers never observe an entry without its
// contribution to total_hours.
func (r *SQLiteRepository) AppendTimeEntry(ctx context.Context, entry *TimeEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}

	insert := `
	INSERT INTO time_entries (timesheet_id, entry_date, job_name, hours)
	VALUES (?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, insert, entry.TimesheetID, FormatDateForDB(entry.EntryDate), entry.JobName, entry.Hours)
	if err != nil {
		tx.Rollback()
		return HandleDatabaseError("insert time entry", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return HandleDatabaseError("get last insert ID", err)
	}

	recompute := `
	UPDATE timesheets
	SET total_hours = (SELECT COALESCE(SUM(hours), 0) FROM time_entries WHERE timesheet_id = ?)
	WHERE id = ?`

	if _, err := tx.ExecContext(ctx, recompute, entry.TimesheetID, entry.TimesheetID); err != nil {
		tx.Rollback()
		return HandleDatabaseError("recompute total hours", err)
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit time entry", err)
	}

	entry.ID = id
	return nil
}
