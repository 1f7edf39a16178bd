package department

import (
	"context"
	"fmt"
	"strings"

	"github.com/bambooclone/hr-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

func (s *DepartmentServiceImpl) Create(ctx context.Context, tenantID string, req department.CreateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	existing, err := s.departmentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to list departments: %w", err)
	}
	for _, d := range existing {
		if strings.EqualFold(d.Code, req.Code) {
			return department.Department{}, department.ErrDepartmentCodeExists
		}
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		TenantID:    tenantID,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		HeadID:      req.HeadID,
	})
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}

func (s *DepartmentServiceImpl) GetByID(ctx context.Context, tenantID, id string) (department.Department, error) {
	return s.getTenantDepartment(ctx, tenantID, id)
}

func (s *DepartmentServiceImpl) List(ctx context.Context, tenantID string) ([]department.Department, error) {
	return s.departmentRepo.ListByTenant(ctx, tenantID)
}

func (s *DepartmentServiceImpl) Update(ctx context.Context, tenantID, id string, req department.UpdateDepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}

	dept, err := s.getTenantDepartment(ctx, tenantID, id)
	if err != nil {
		return department.Department{}, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Code != nil && !strings.EqualFold(*req.Code, dept.Code) {
		existing, err := s.departmentRepo.ListByTenant(ctx, tenantID)
		if err != nil {
			return department.Department{}, fmt.Errorf("failed to list departments: %w", err)
		}
		for _, d := range existing {
			if d.ID != dept.ID && strings.EqualFold(d.Code, *req.Code) {
				return department.Department{}, department.ErrDepartmentCodeExists
			}
		}
		dept.Code = *req.Code
	}
	if req.Description != nil {
		dept.Description = req.Description
	}
	if req.HeadID != nil {
		dept.HeadID = req.HeadID
	}

	if err := s.departmentRepo.Update(ctx, dept); err != nil {
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}

	return dept, nil
}

// Delete refuses to remove a department that still has employees assigned;
// they must be reassigned first.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := s.getTenantDepartment(ctx, tenantID, id); err != nil {
		return err
	}

	count, err := s.departmentRepo.CountEmployees(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		return department.ErrDepartmentInUse
	}

	return s.departmentRepo.Delete(ctx, id)
}

func (s *DepartmentServiceImpl) getTenantDepartment(ctx context.Context, tenantID, id string) (department.Department, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.Department{}, err
	}
	if dept.TenantID != tenantID {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dept, nil
}
