package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-manager/internal/errors"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	dbPath := filepath.Join(t.TempDir(), "tsm.db")

	repo, err := New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

func createTestEmployee(t *testing.T, repo *SQLiteRepository, email, role string) *Employee {
	employee := &Employee{
		ID:    uuid.NewString(),
		Email: email,
		Role:  role,
		Token: uuid.NewString(),
	}
	require.NoError(t, repo.CreateEmployee(context.Background(), employee))
	return employee
}

func createTestTimesheet(t *testing.T, repo *SQLiteRepository, ownerID string, weekStart time.Time) *Timesheet {
	ts := &Timesheet{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		WeekStart: weekStart,
		Status:    "in_progress",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.CreateTimesheet(context.Background(), ts))
	return ts
}

func TestCreateAndGetEmployee(t *testing.T) {
	repo := setupTestDB(t)

	employee := createTestEmployee(t, repo, "alice@example.com", "employee")

	retrieved, err := repo.GetEmployee(context.Background(), employee.ID)
	require.NoError(t, err)
	assert.Equal(t, employee.Email, retrieved.Email)
	assert.Equal(t, employee.Role, retrieved.Role)

	byToken, err := repo.GetEmployeeByToken(context.Background(), employee.Token)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, byToken.ID)
}

func TestGetEmployeeNotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetEmployee(context.Background(), "missing")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	_, err = repo.GetEmployeeByToken(context.Background(), "missing-token")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestJobCatalog(t *testing.T) {
	repo := setupTestDB(t)

	require.NoError(t, repo.CreateJob(context.Background(), &Job{Name: "ProjectA"}))

	job, err := repo.GetJob(context.Background(), "ProjectA")
	require.NoError(t, err)
	assert.Equal(t, "ProjectA", job.Name)

	_, err = repo.GetJob(context.Background(), "Unknown")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	jobs, err := repo.ListJobs(context.Background())
	require.NoError(t, err)
	// Seeded catalog plus the one created above
	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.Name
	}
	assert.Contains(t, names, "ProjectA")
	assert.Contains(t, names, "General")
}

func TestCreateAndGetTimesheet(t *testing.T) {
	repo := setupTestDB(t)

	employee := createTestEmployee(t, repo, "alice@example.com", "employee")
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	ts := createTestTimesheet(t, repo, employee.ID, monday)

	retrieved, err := repo.GetTimesheet(context.Background(), ts.ID)
	require.NoError(t, err)
	assert.Equal(t, ts.ID, retrieved.ID)
	assert.Equal(t, employee.ID, retrieved.OwnerID)
	assert.Equal(t, monday, retrieved.WeekStart)
	assert.Equal(t, "in_progress", retrieved.Status)
	assert.Equal(t, 0.0, retrieved.TotalHours)
}

func TestGetTimesheetNotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetTimesheet(context.Background(), "missing")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestDuplicateWeekRejected(t *testing.T) {
	repo := setupTestDB(t)

	employee := createTestEmployee(t, repo, "alice@example.com", "employee")
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	createTestTimesheet(t, repo, employee.ID, monday)

	duplicate := &Timesheet{
		ID:        uuid.NewString(),
		OwnerID:   employee.ID,
		WeekStart: monday,
		Status:    "in_progress",
		CreatedAt: time.Now().UTC(),
	}
	err := repo.CreateTimesheet(context.Background(), duplicate)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDuplicate))

	// A different employee may cover the same week
	other := createTestEmployee(t, repo, "bob@example.com", "employee")
	createTestTimesheet(t, repo, other.ID, monday)
}

func TestGetTimesheetForWeek(t *testing.T) {
	repo := setupTestDB(t)

	employee := createTestEmployee(t, repo, "alice@example.com", "employee")
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	ts := createTestTimesheet(t, repo, employee.ID, monday)

	retrieved, err := repo.GetTimesheetForWeek(context.Background(), employee.ID, "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, ts.ID, retrieved.ID)

	_, err = repo.GetTimesheetForWeek(context.Background(), employee.ID, "2024-06-10")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestListTimesheetsNewestFirst(t *testing.T) {
	repo := setupTestDB(t)

	employee := createTestEmployee(t, repo, "alice@example.com", "employee")

	weeks := []time.Time{
		time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	}

	var ids []string
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	for i, week := range weeks {
		ts := &Timesheet{
			ID:        uuid.NewString(),
			OwnerID:   employee.ID,
			WeekStart: week,
			Status:    "in_progress",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.CreateTimesheet(context.Background(), ts))
		ids = append(ids, ts.ID)
	}

	listed, err := repo.ListTimesheetsForOwner(context.Background(), employee.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, ids[2], listed[0].ID)
	assert.Equal(t, ids[1], listed[1].ID)
	assert.Equal(t, ids[0], listed[2].ID)

	all, err := repo.ListTimesheets(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAppendTimeEntryRecomputesTotal(t *testing.T) {
	repo := setupTestDB(t)

	employee := createTestEmployee(t, repo, "alice@example.com", "employee")
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	ts := createTestTimesheet(t, repo, employee.ID, monday)

	first := &TimeEntry{TimesheetID: ts.ID, EntryDate: monday, JobName: "ProjectA", Hours: 8}
	require.NoError(t, repo.AppendTimeEntry(context.Background(), first))
	assert.Greater(t, first.ID, int64(0))

	second := &TimeEntry{TimesheetID: ts.ID, EntryDate: monday.AddDate(0, 0, 1), JobName: "ProjectB", Hours: 4.5}
	require.NoError(t, repo.AppendTimeEntry(context.Background(), second))

	retrieved, err := repo.GetTimesheet(context.Background(), ts.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.5, retrieved.TotalHours)

	entries, err := repo.ListTimeEntries(context.Background(), ts.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Insertion order preserved
	assert.Equal(t, "ProjectA", entries[0].JobName)
	assert.Equal(t, "ProjectB", entries[1].JobName)
	assert.Equal(t, monday, entries[0].EntryDate)
}

func TestSetTimesheetStatus(t *testing.T) {
	repo := setupTestDB(t)

	employee := createTestEmployee(t, repo, "alice@example.com", "employee")
	ts := createTestTimesheet(t, repo, employee.ID, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))

	require.NoError(t, repo.SetTimesheetStatus(context.Background(), ts.ID, "completed"))

	retrieved, err := repo.GetTimesheet(context.Background(), ts.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", retrieved.Status)

	err = repo.SetTimesheetStatus(context.Background(), "missing", "completed")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}
