package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/config"
	"github.com/bambooclone/hr-backend-go/internal/domain/department"
	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
	"github.com/bambooclone/hr-backend-go/internal/domain/invitation"
	"github.com/bambooclone/hr-backend-go/internal/domain/tenant"
	"github.com/bambooclone/hr-backend-go/internal/pkg/email"
	"github.com/bambooclone/hr-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	invitationRepo invitation.InvitationRepository
	tenantRepo     tenant.TenantRepository
	emailSvc       email.EmailService
	frontendURL    string
	inviteExpiry   time.Duration
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	invitationRepo invitation.InvitationRepository,
	tenantRepo tenant.TenantRepository,
	emailSvc email.EmailService,
	cfg *config.Config,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		invitationRepo: invitationRepo,
		tenantRepo:     tenantRepo,
		emailSvc:       emailSvc,
		frontendURL:    cfg.App.FrontendURL,
		inviteExpiry:   time.Duration(cfg.Invitation.ExpiryHours) * time.Hour,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, tenantID string, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	exists, err := s.employeeRepo.ExistsByCodeOrEmail(ctx, tenantID, req.EmployeeCode, req.Email)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check uniqueness: %w", err)
	}
	if exists {
		if _, err := s.employeeRepo.GetByEmail(ctx, tenantID, req.Email); err == nil {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, employee.ErrEmployeeCodeExists
	}

	if req.DepartmentID != nil {
		dept, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID)
		if err != nil {
			return employee.Employee{}, err
		}
		if dept.TenantID != tenantID {
			return employee.Employee{}, department.ErrDepartmentNotFound
		}
	}

	record := employee.Employee{
		TenantID:       tenantID,
		EmployeeCode:   req.EmployeeCode,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		DepartmentID:   req.DepartmentID,
		Designation:    req.Designation,
		ReportingTo:    req.ReportingTo,
		EmploymentType: employee.EmploymentTypeFullTime,
		Status:         employee.StatusActive,
	}
	if req.EmploymentType != "" {
		record.EmploymentType = employee.EmploymentType(req.EmploymentType)
	}
	if req.Status != "" {
		record.Status = employee.Status(req.Status)
	}
	if req.DateOfJoining != nil {
		joined, _ := validator.IsValidDate(*req.DateOfJoining)
		record.DateOfJoining = &joined
	}

	created, err := s.employeeRepo.Create(ctx, record)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	s.issueInvitation(ctx, created)

	return created, nil
}

// issueInvitation stores the invitation and dispatches the email in the
// background. A failed send marks the invitation but never fails the create.
func (s *EmployeeServiceImpl) issueInvitation(ctx context.Context, emp employee.Employee) {
	inv, err := s.invitationRepo.Create(ctx, invitation.Invitation{
		TenantID:    emp.TenantID,
		EmployeeID:  emp.ID,
		Email:       emp.Email,
		Token:       uuid.NewString(),
		ExpiresAt:   time.Now().UTC().Add(s.inviteExpiry),
		EmailStatus: invitation.EmailStatusPending,
	})
	if err != nil {
		slog.Error("Failed to store invitation", "employee_id", emp.ID, "error", err)
		return
	}

	companyName := "BambooClone"
	if t, err := s.tenantRepo.GetByID(ctx, emp.TenantID); err == nil {
		companyName = t.Name
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		link := fmt.Sprintf("%s/invitations/accept?token=%s", s.frontendURL, inv.Token)
		status := invitation.EmailStatusSent
		err := s.emailSvc.SendInvitation(emp.Email, emp.FullName, companyName, link, inv.ExpiresAt.Format("January 2, 2006"))
		if err != nil {
			slog.Error("Failed to send invitation email", "employee_id", emp.ID, "error", err)
			status = invitation.EmailStatusFailed
		}

		if err := s.invitationRepo.UpdateEmailStatus(bgCtx, inv.ID, status); err != nil {
			slog.Error("Failed to update invitation email status", "invitation_id", inv.ID, "error", err)
		}
	}()
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, tenantID, id string) (employee.Employee, error) {
	return s.getTenantEmployee(ctx, tenantID, id)
}

func (s *EmployeeServiceImpl) List(ctx context.Context, tenantID string, filter employee.ListFilter) ([]employee.Employee, error) {
	return s.employeeRepo.ListByTenant(ctx, tenantID, filter)
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, tenantID, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	record, err := s.getTenantEmployee(ctx, tenantID, id)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.FullName != nil {
		record.FullName = *req.FullName
	}
	if req.Phone != nil {
		record.Phone = req.Phone
	}
	if req.DepartmentID != nil {
		dept, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID)
		if err != nil {
			return employee.Employee{}, err
		}
		if dept.TenantID != tenantID {
			return employee.Employee{}, department.ErrDepartmentNotFound
		}
		record.DepartmentID = req.DepartmentID
	}
	if req.Designation != nil {
		record.Designation = req.Designation
	}
	if req.DateOfJoining != nil {
		joined, _ := validator.IsValidDate(*req.DateOfJoining)
		record.DateOfJoining = &joined
	}
	if req.ReportingTo != nil {
		record.ReportingTo = req.ReportingTo
	}
	if req.EmploymentType != nil {
		record.EmploymentType = employee.EmploymentType(*req.EmploymentType)
	}
	if req.Status != nil {
		record.Status = employee.Status(*req.Status)
	}

	if err := s.employeeRepo.Update(ctx, record); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return record, nil
}

func (s *EmployeeServiceImpl) Invite(ctx context.Context, tenantID, id string) error {
	record, err := s.getTenantEmployee(ctx, tenantID, id)
	if err != nil {
		return err
	}

	s.issueInvitation(ctx, record)
	return nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := s.getTenantEmployee(ctx, tenantID, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) getTenantEmployee(ctx context.Context, tenantID, id string) (employee.Employee, error) {
	record, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if record.TenantID != tenantID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return record, nil
}
