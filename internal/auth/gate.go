package auth

import (
	"context"

	"timesheet-manager/internal/domain"
	"timesheet-manager/internal/errors"
	"timesheet-manager/internal/repository/sqlite"
)

// Gate resolves caller credentials into principals and performs role checks
// at the access boundary. Core store operations never see raw credentials;
// they receive an explicit Principal.
type Gate interface {
	// Resolve maps a bearer token to the authenticated principal
	Resolve(ctx context.Context, token string) (*domain.Principal, error)

	// RequireManager fails unless the principal carries the manager role
	RequireManager(principal domain.Principal) error
}

// gateImpl implements Gate against the employee table
type gateImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewGate creates a new access gate backed by the repository
func NewGate(repo sqlite.Repository) Gate {
	return &gateImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// Resolve maps a bearer token to the authenticated principal
func (g *gateImpl) Resolve(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, errors.NewPermissionError("authenticate", "timesheets")
	}

	dbEmployee, err := g.repo.GetEmployeeByToken(ctx, token)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewPermissionError("authenticate", "timesheets")
		}
		return nil, err
	}

	principal := g.mapper.Employee.PrincipalFromDatabase(*dbEmployee)
	return &principal, nil
}

// RequireManager fails unless the principal carries the manager role
func (g *gateImpl) RequireManager(principal domain.Principal) error {
	if !principal.IsManager() {
		return errors.NewPermissionError("list all timesheets", "timesheets")
	}
	return nil
}
