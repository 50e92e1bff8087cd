package api

import (
	"context"

	"timesheet-manager/internal/auth"
	"timesheet-manager/internal/domain"
	"timesheet-manager/internal/errors"
	"timesheet-manager/internal/jobs"
	"timesheet-manager/internal/report"
	"timesheet-manager/internal/store"
	"timesheet-manager/internal/validation"
)

// API is the request/response facade over the timesheet store. Every call
// resolves the caller's credential through the access gate before touching
// the store; transport mechanics live outside this package.
type API interface {
	// Employee operations
	CreateTimesheet(ctx context.Context, token string, req CreateTimesheetRequest) (*TimesheetResponse, error)
	AddEntry(ctx context.Context, token string, timesheetID string, req AddEntryRequest) (*TimesheetResponse, error)
	Complete(ctx context.Context, token string, timesheetID string) (*TimesheetResponse, error)
	GetTimesheet(ctx context.Context, token string, timesheetID string) (*TimesheetResponse, error)
	ListMine(ctx context.Context, token string) ([]*TimesheetResponse, error)

	// Manager operations
	ListAll(ctx context.Context, token string) ([]*TimesheetResponse, error)
	WeeklySummary(ctx context.Context, token string) ([]*WeekSummaryResponse, error)

	// Job catalog lookup
	ListJobs(ctx context.Context, token string) ([]string, error)
}

type apiImpl struct {
	gate               auth.Gate
	store              store.TimesheetStore
	catalog            jobs.Catalog
	entryValidator     *validation.EntryValidator
	timesheetValidator *validation.TimesheetValidator
}

// New creates a new API instance.
func New(gate auth.Gate, timesheetStore store.TimesheetStore, catalog jobs.Catalog) API {
	return &apiImpl{
		gate:               gate,
		store:              timesheetStore,
		catalog:            catalog,
		entryValidator:     validation.NewEntryValidator(),
		timesheetValidator: validation.NewTimesheetValidator(),
	}
}

// CreateTimesheet creates a new timesheet for the authenticated caller's week
func (a *apiImpl) CreateTimesheet(ctx context.Context, token string, req CreateTimesheetRequest) (*TimesheetResponse, error) {
	principal, err := a.gate.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	weekStart, err := a.timesheetValidator.ParseWeekStart(req.WeekStart)
	if err != nil {
		return nil, err
	}

	ts, err := a.store.Create(ctx, *principal, weekStart)
	if err != nil {
		return nil, err
	}
	return toTimesheetResponse(ts), nil
}

// AddEntry appends an entry to the caller's timesheet
func (a *apiImpl) AddEntry(ctx context.Context, token string, timesheetID string, req AddEntryRequest) (*TimesheetResponse, error) {
	principal, err := a.gate.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	date, err := a.entryValidator.ParseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := domain.NewTimeEntry(date, req.JobName, req.Hours)
	ts, err := a.store.AddEntry(ctx, *principal, timesheetID, entry)
	if err != nil {
		return nil, err
	}
	return toTimesheetResponse(ts), nil
}

// Complete marks the caller's timesheet as completed
func (a *apiImpl) Complete(ctx context.Context, token string, timesheetID string) (*TimesheetResponse, error) {
	principal, err := a.gate.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	ts, err := a.store.Complete(ctx, *principal, timesheetID)
	if err != nil {
		return nil, err
	}
	return toTimesheetResponse(ts), nil
}

// GetTimesheet returns a single timesheet. Owners see their own sheets;
// managers see any.
func (a *apiImpl) GetTimesheet(ctx context.Context, token string, timesheetID string) (*TimesheetResponse, error) {
	principal, err := a.gate.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	ts, err := a.store.Get(ctx, timesheetID)
	if err != nil {
		return nil, err
	}

	if !principal.IsManager() && !principal.Owns(ts) {
		return nil, errors.NewNotOwnerError(principal.EmployeeID, timesheetID)
	}
	return toTimesheetResponse(ts), nil
}

// ListMine returns the caller's timesheets, newest first
func (a *apiImpl) ListMine(ctx context.Context, token string) ([]*TimesheetResponse, error) {
	principal, err := a.gate.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	timesheets, err := a.store.ListForOwner(ctx, principal.EmployeeID)
	if err != nil {
		return nil, err
	}
	return toTimesheetResponses(timesheets), nil
}

// ListAll returns every timesheet including owner identity. Manager only.
func (a *apiImpl) ListAll(ctx context.Context, token string) ([]*TimesheetResponse, error) {
	principal, err := a.gate.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := a.gate.RequireManager(*principal); err != nil {
		return nil, err
	}

	timesheets, err := a.store.ListAll(ctx, *principal)
	if err != nil {
		return nil, err
	}
	return toTimesheetResponses(timesheets), nil
}

// WeeklySummary returns the manager's weekly rollup over all timesheets
func (a *apiImpl) WeeklySummary(ctx context.Context, token string) ([]*WeekSummaryResponse, error) {
	principal, err := a.gate.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := a.gate.RequireManager(*principal); err != nil {
		return nil, err
	}

	timesheets, err := a.store.ListAll(ctx, *principal)
	if err != nil {
		return nil, err
	}

	groups := report.GroupByWeek(timesheets)
	return toWeekSummaryResponses(groups), nil
}

// ListJobs returns the valid job names from the external catalog
func (a *apiImpl) ListJobs(ctx context.Context, token string) ([]string, error) {
	if _, err := a.gate.Resolve(ctx, token); err != nil {
		return nil, err
	}
	return a.catalog.List(ctx)
}
