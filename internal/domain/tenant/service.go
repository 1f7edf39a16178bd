package tenant

import "context"

// TenantService manages the tenant registry. Reserved to the platform
// operator.
type TenantService interface {
	Create(ctx context.Context, req CreateTenantRequest) (Tenant, error)
	GetByID(ctx context.Context, id string) (Tenant, error)
	List(ctx context.Context) ([]Tenant, error)
}
