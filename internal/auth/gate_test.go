package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-manager/internal/domain"
	"timesheet-manager/internal/errors"
	"timesheet-manager/internal/repository/sqlite"
)

func setupGate(t *testing.T) (Gate, *sqlite.SQLiteRepository) {
	dbPath := filepath.Join(t.TempDir(), "tsm.db")

	repo, err := sqlite.New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return NewGate(repo), repo
}

func TestResolveKnownToken(t *testing.T) {
	gate, repo := setupGate(t)

	employee := &sqlite.Employee{
		ID:    uuid.NewString(),
		Email: "alice@example.com",
		Role:  "employee",
		Token: "token-alice",
	}
	require.NoError(t, repo.CreateEmployee(context.Background(), employee))

	principal, err := gate.Resolve(context.Background(), "token-alice")
	require.NoError(t, err)
	assert.Equal(t, employee.ID, principal.EmployeeID)
	assert.Equal(t, "alice@example.com", principal.Email)
	assert.Equal(t, domain.RoleEmployee, principal.Role)
}

func TestResolveRejectsBadTokens(t *testing.T) {
	gate, _ := setupGate(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "unknown token", token: "no-such-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gate.Resolve(context.Background(), tt.token)
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypePermission))
		})
	}
}

func TestRequireManager(t *testing.T) {
	gate, _ := setupGate(t)

	manager := domain.Principal{EmployeeID: "m1", Email: "m@example.com", Role: domain.RoleManager}
	assert.NoError(t, gate.RequireManager(manager))

	employee := domain.Principal{EmployeeID: "e1", Email: "e@example.com", Role: domain.RoleEmployee}
	err := gate.RequireManager(employee)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypePermission))
}
