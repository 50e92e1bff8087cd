package jobs

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-manager/internal/repository/sqlite"
)

func setupCatalog(t *testing.T) Catalog {
	dbPath := filepath.Join(t.TempDir(), "tsm.db")

	repo, err := sqlite.New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	for _, name := range []string{"ProjectA", "ProjectB"} {
		require.NoError(t, repo.CreateJob(context.Background(), &sqlite.Job{Name: name}))
	}

	return NewCatalog(repo)
}

func TestListSorted(t *testing.T) {
	catalog := setupCatalog(t)

	names, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Contains(t, names, "ProjectA")
	assert.Contains(t, names, "ProjectB")
	assert.True(t, sort.StringsAreSorted(names))
}

func TestExists(t *testing.T) {
	catalog := setupCatalog(t)

	tests := []struct {
		name     string
		job      string
		expected bool
	}{
		{name: "known job", job: "ProjectA", expected: true},
		{name: "seeded job", job: "General", expected: true},
		{name: "unknown job", job: "NoSuchProject", expected: false},
		{name: "case sensitive", job: "projecta", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := catalog.Exists(context.Background(), tt.job)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}
