package tenant

import (
	"context"
	"fmt"
	"strings"

	"github.com/bambooclone/hr-backend-go/internal/domain/tenant"
)

type TenantServiceImpl struct {
	tenantRepo tenant.TenantRepository
}

func NewTenantService(tenantRepo tenant.TenantRepository) tenant.TenantService {
	return &TenantServiceImpl{tenantRepo: tenantRepo}
}

func (s *TenantServiceImpl) Create(ctx context.Context, req tenant.CreateTenantRequest) (tenant.Tenant, error) {
	if err := req.Validate(); err != nil {
		return tenant.Tenant{}, err
	}

	existing, err := s.tenantRepo.List(ctx)
	if err != nil {
		return tenant.Tenant{}, fmt.Errorf("failed to list tenants: %w", err)
	}
	for _, t := range existing {
		if strings.EqualFold(t.Domain, req.Domain) {
			return tenant.Tenant{}, tenant.ErrTenantDomainExists
		}
	}

	created, err := s.tenantRepo.Create(ctx, tenant.Tenant{
		Name:     req.Name,
		Domain:   req.Domain,
		Industry: req.Industry,
		IsActive: true,
	})
	if err != nil {
		return tenant.Tenant{}, fmt.Errorf("failed to create tenant: %w", err)
	}

	return created, nil
}

func (s *TenantServiceImpl) GetByID(ctx context.Context, id string) (tenant.Tenant, error) {
	return s.tenantRepo.GetByID(ctx, id)
}

func (s *TenantServiceImpl) List(ctx context.Context) ([]tenant.Tenant, error) {
	return s.tenantRepo.List(ctx)
}
