package department

import "context"

// DepartmentRepository - interface for departments table
type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	ListByTenant(ctx context.Context, tenantID string) ([]Department, error)
	Update(ctx context.Context, d Department) error
	Delete(ctx context.Context, id string) error
	CountEmployees(ctx context.Context, id string) (int64, error)
}
