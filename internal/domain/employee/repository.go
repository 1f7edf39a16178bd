package employee

import "context"

// EmployeeRepository - interface for employees table
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, tenantID, email string) (Employee, error)
	ListByTenant(ctx context.Context, tenantID string, filter ListFilter) ([]Employee, error)
	ListActiveByTenant(ctx context.Context, tenantID string) ([]Employee, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id string) error
	ExistsByCodeOrEmail(ctx context.Context, tenantID, code, email string) (bool, error)
	CountActive(ctx context.Context, tenantID string) (int64, error)
	// Lock takes a row lock on the employee until the surrounding
	// transaction ends, serializing workflows that read the employee's
	// request history before writing to it.
	Lock(ctx context.Context, id string) error
}
