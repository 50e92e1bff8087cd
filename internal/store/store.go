package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"timesheet-manager/internal/config"
	"timesheet-manager/internal/domain"
	"timesheet-manager/internal/errors"
	"timesheet-manager/internal/jobs"
	"timesheet-manager/internal/logging"
	"timesheet-manager/internal/repository/sqlite"
	"timesheet-manager/internal/validation"
)

// TimesheetStore is the server-side authority over timesheets. It owns the
// authoritative copy of every timesheet, enforces state-gated mutation and
// ownership, and serializes mutations per timesheet.
type TimesheetStore interface {
	// Create creates a new in-progress timesheet for the caller's week.
	// The week start is snapped to the configured week anchor.
	Create(ctx context.Context, principal domain.Principal, weekStart time.Time) (*domain.Timesheet, error)

	// AddEntry appends a time entry to a mutable timesheet owned by the
	// caller and recomputes the total. Returns the updated timesheet.
	AddEntry(ctx context.Context, principal domain.Principal, timesheetID string, entry domain.TimeEntry) (*domain.Timesheet, error)

	// Complete irreversibly transitions a timesheet to completed.
	Complete(ctx context.Context, principal domain.Principal, timesheetID string) (*domain.Timesheet, error)

	// Get returns a single timesheet by ID.
	Get(ctx context.Context, timesheetID string) (*domain.Timesheet, error)

	// ListForOwner returns the caller's timesheets, most recently created first.
	ListForOwner(ctx context.Context, ownerID string) ([]*domain.Timesheet, error)

	// ListAll returns every timesheet including owner identity. Manager only.
	ListAll(ctx context.Context, principal domain.Principal) ([]*domain.Timesheet, error)
}

// timesheetStoreImpl implements the TimesheetStore interface
type timesheetStoreImpl struct {
	repo               sqlite.Repository
	catalog            jobs.Catalog
	mapper             *domain.Mapper
	entryValidator     *validation.EntryValidator
	timesheetValidator *validation.TimesheetValidator
	locks              *entityLocks
	weekAnchor         time.Weekday
	queryTimeout       time.Duration
	writeTimeout       time.Duration
}

// New creates a new TimesheetStore instance
func New(repo sqlite.Repository, catalog jobs.Catalog, cfg *config.Config) TimesheetStore {
	validator := validation.NewValidatorWithConfig(cfg)
	return &timesheetStoreImpl{
		repo:               repo,
		catalog:            catalog,
		mapper:             domain.NewMapper(),
		entryValidator:     validation.NewEntryValidatorWith(validator),
		timesheetValidator: validation.NewTimesheetValidatorWith(validator),
		locks:              newEntityLocks(),
		weekAnchor:         cfg.GetWeekAnchor(),
		queryTimeout:       cfg.GetQueryTimeout(),
		writeTimeout:       cfg.GetWriteTimeout(),
	}
}

// Create creates a new in-progress timesheet for the caller's week
func (s *timesheetStoreImpl) Create(ctx context.Context, principal domain.Principal, weekStart time.Time) (*domain.Timesheet, error) {
	if err := s.timesheetValidator.ValidateWeekStart(weekStart); err != nil {
		return nil, err
	}

	anchored := domain.WeekAnchor(weekStart, s.weekAnchor)
	weekKey := domain.DateKey(anchored)
	logging.Debugf("create timesheet: owner=%s week=%s\n", principal.EmployeeID, weekKey)

	writeCtx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	// Surface a duplicate week before inserting. The unique index on
	// (owner_id, week_start) still backs this under concurrent creates.
	if _, err := s.repo.GetTimesheetForWeek(writeCtx, principal.EmployeeID, weekKey); err == nil {
		return nil, errors.NewDuplicateWeekError(principal.EmployeeID, weekKey)
	} else if !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return nil, err
	}

	ts := domain.Timesheet{
		ID: uuid.NewString(),
		Owner: domain.Employee{
			ID:    principal.EmployeeID,
			Email: principal.Email,
			Role:  principal.Role,
		},
		WeekStart: anchored,
		Entries:   []domain.TimeEntry{},
		Status:    domain.StatusInProgress,
		CreatedAt: time.Now().UTC(),
	}

	dbTs := s.mapper.Timesheet.ToDatabase(ts)
	if err := s.repo.CreateTimesheet(writeCtx, &dbTs); err != nil {
		return nil, err
	}

	return &ts, nil
}

// AddEntry appends a time entry to a mutable timesheet owned by the caller
func (s *timesheetStoreImpl) AddEntry(ctx context.Context, principal domain.Principal, timesheetID string, entry domain.TimeEntry) (*domain.Timesheet, error) {
	if err := s.timesheetValidator.ValidateTimesheetID(timesheetID); err != nil {
		return nil, err
	}

	entry.Date = domain.NormalizeDate(entry.Date)
	if err := s.entryValidator.ValidateEntryForAppend(entry); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(timesheetID)
	defer unlock()

	writeCtx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	dbTs, err := s.repo.GetTimesheet(writeCtx, timesheetID)
	if err != nil {
		return nil, err
	}

	if dbTs.OwnerID != principal.EmployeeID {
		return nil, errors.NewNotOwnerError(principal.EmployeeID, timesheetID)
	}
	if domain.Status(dbTs.Status) != domain.StatusInProgress {
		return nil, errors.NewNotMutableError(timesheetID)
	}

	// Job names must reference the external catalog
	exists, err := s.catalog.Exists(writeCtx, entry.JobName)
	if err != nil {
		return nil, err
	}
	if !exists {
		validationError := validation.NewValidationError()
		validationError.AddUnknownReferenceError("job_name", entry.JobName, "job catalog")
		return nil, validationError
	}

	dbEntry := s.mapper.TimeEntry.ToDatabase(timesheetID, entry)
	if err := s.repo.AppendTimeEntry(writeCtx, &dbEntry); err != nil {
		return nil, err
	}

	logging.Debugf("append entry: timesheet=%s job=%s hours=%.2f\n", timesheetID, entry.JobName, entry.Hours)
	return s.assemble(writeCtx, timesheetID)
}

// Complete irreversibly transitions a timesheet to completed
func (s *timesheetStoreImpl) Complete(ctx context.Context, principal domain.Principal, timesheetID string) (*domain.Timesheet, error) {
	if err := s.timesheetValidator.ValidateTimesheetID(timesheetID); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(timesheetID)
	defer unlock()

	writeCtx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	dbTs, err := s.repo.GetTimesheet(writeCtx, timesheetID)
	if err != nil {
		return nil, err
	}

	if dbTs.OwnerID != principal.EmployeeID {
		return nil, errors.NewNotOwnerError(principal.EmployeeID, timesheetID)
	}
	if domain.Status(dbTs.Status) == domain.StatusCompleted {
		return nil, errors.NewAlreadyCompletedError(timesheetID)
	}

	if err := s.repo.SetTimesheetStatus(writeCtx, timesheetID, string(domain.StatusCompleted)); err != nil {
		return nil, err
	}

	logging.Debugf("complete timesheet: %s\n", timesheetID)
	return s.assemble(writeCtx, timesheetID)
}

// Get returns a single timesheet by ID
func (s *timesheetStoreImpl) Get(ctx context.Context, timesheetID string) (*domain.Timesheet, error) {
	if err := s.timesheetValidator.ValidateTimesheetID(timesheetID); err != nil {
		return nil, err
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	return s.assemble(queryCtx, timesheetID)
}

// ListForOwner returns the caller's timesheets, most recently created first
func (s *timesheetStoreImpl) ListForOwner(ctx context.Context, ownerID string) ([]*domain.Timesheet, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	dbSheets, err := s.repo.ListTimesheetsForOwner(queryCtx, ownerID)
	if err != nil {
		return nil, err
	}

	return s.assembleAll(queryCtx, dbSheets)
}

// ListAll returns every timesheet including owner identity. Access control is
// the gate's decision; the store refuses non-manager principals outright.
func (s *timesheetStoreImpl) ListAll(ctx context.Context, principal domain.Principal) ([]*domain.Timesheet, error) {
	if !principal.IsManager() {
		return nil, errors.NewPermissionError("list all timesheets", "timesheets")
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	dbSheets, err := s.repo.ListTimesheets(queryCtx)
	if err != nil {
		return nil, err
	}

	return s.assembleAll(queryCtx, dbSheets)
}

// assemble loads a timesheet row together with its owner and entries and maps
// them into the domain model.
func (s *timesheetStoreImpl) assemble(ctx context.Context, timesheetID string) (*domain.Timesheet, error) {
	dbTs, err := s.repo.GetTimesheet(ctx, timesheetID)
	if err != nil {
		return nil, err
	}
	return s.assembleRow(ctx, dbTs)
}

func (s *timesheetStoreImpl) assembleRow(ctx context.Context, dbTs *sqlite.Timesheet) (*domain.Timesheet, error) {
	dbOwner, err := s.repo.GetEmployee(ctx, dbTs.OwnerID)
	if err != nil {
		return nil, err
	}

	dbEntries, err := s.repo.ListTimeEntries(ctx, dbTs.ID)
	if err != nil {
		return nil, err
	}

	ts := s.mapper.Timesheet.FromDatabase(*dbTs, *dbOwner, dbEntries)
	return &ts, nil
}

func (s *timesheetStoreImpl) assembleAll(ctx context.Context, dbSheets []*sqlite.Timesheet) ([]*domain.Timesheet, error) {
	timesheets := make([]*domain.Timesheet, len(dbSheets))
	for i, dbTs := range dbSheets {
		ts, err := s.assembleRow(ctx, dbTs)
		if err != nil {
			return nil, err
		}
		timesheets[i] = ts
	}
	return timesheets, nil
}
