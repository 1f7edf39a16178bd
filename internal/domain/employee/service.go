package employee

import "context"

// EmployeeService manages employee records. Creating an employee issues an
// account invitation; email delivery is best-effort and never blocks the
// create itself.
type EmployeeService interface {
	Create(ctx context.Context, tenantID string, req CreateEmployeeRequest) (Employee, error)
	GetByID(ctx context.Context, tenantID, id string) (Employee, error)
	List(ctx context.Context, tenantID string, filter ListFilter) ([]Employee, error)
	Update(ctx context.Context, tenantID, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, tenantID, id string) error
	// Invite issues a fresh invitation for an existing employee, for
	// re-sending after an expired or lost token.
	Invite(ctx context.Context, tenantID, id string) error
}
