package domain

// Role distinguishes employee callers from manager callers.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// IsValid checks if the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleManager
}

// Employee identifies the owner of a timesheet.
// This is a pure domain model without database-specific concerns.
type Employee struct {
	ID    string
	Email string
	Role  Role
}

// NewEmployee creates a new Employee with the given email and role.
func NewEmployee(id, email string, role Role) Employee {
	return Employee{
		ID:    id,
		Email: email,
		Role:  role,
	}
}

// IsValid checks if the employee has valid data.
func (e Employee) IsValid() bool {
	return e.ID != "" && e.Email != "" && e.Role.IsValid()
}

// Principal is the resolved identity of a caller, passed explicitly into
// every store operation instead of being held as ambient session state.
type Principal struct {
	EmployeeID string
	Email      string
	Role       Role
}

// IsManager returns true if the principal carries the manager role.
func (p Principal) IsManager() bool {
	return p.Role == RoleManager
}

// Owns returns true if the principal is the owner of the given timesheet.
func (p Principal) Owns(ts *Timesheet) bool {
	return ts != nil && p.EmployeeID == ts.Owner.ID
}
