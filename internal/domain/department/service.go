package department

import "context"

// DepartmentService manages the department catalogue of a tenant.
type DepartmentService interface {
	Create(ctx context.Context, tenantID string, req CreateDepartmentRequest) (Department, error)
	GetByID(ctx context.Context, tenantID, id string) (Department, error)
	List(ctx context.Context, tenantID string) ([]Department, error)
	Update(ctx context.Context, tenantID, id string, req UpdateDepartmentRequest) (Department, error)
	// Delete refuses to remove a department that still has employees.
	Delete(ctx context.Context, tenantID, id string) error
}
