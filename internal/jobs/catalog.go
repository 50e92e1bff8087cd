package jobs

import (
	"context"

	"timesheet-manager/internal/errors"
	"timesheet-manager/internal/repository/sqlite"
)

// Catalog is the read-only job catalog collaborator. The set of valid job
// names is managed outside the timesheet core; entries only reference it.
type Catalog interface {
	// List returns all valid job names, sorted alphabetically
	List(ctx context.Context) ([]string, error)

	// Exists reports whether a job name is present in the catalog
	Exists(ctx context.Context, name string) (bool, error)
}

// catalogImpl implements Catalog against the sqlite repository
type catalogImpl struct {
	repo sqlite.Repository
}

// NewCatalog creates a new job catalog backed by the repository
func NewCatalog(repo sqlite.Repository) Catalog {
	return &catalogImpl{repo: repo}
}

// List returns all valid job names
func (c *catalogImpl) List(ctx context.Context) ([]string, error) {
	dbJobs, err := c.repo.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(dbJobs))
	for i, job := range dbJobs {
		names[i] = job.Name
	}
	return names, nil
}

// Exists reports whether a job name is present in the catalog
func (c *catalogImpl) Exists(ctx context.Context, name string) (bool, error) {
	_, err := c.repo.GetJob(ctx, name)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
