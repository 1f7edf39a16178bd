package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/attendance"
	"github.com/bambooclone/hr-backend-go/internal/domain/dashboard"
	"github.com/bambooclone/hr-backend-go/internal/domain/department"
	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
	"github.com/bambooclone/hr-backend-go/internal/domain/leave"
)

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	requestRepo    leave.LeaveRequestRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	requestRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		requestRepo:    requestRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *DashboardServiceImpl) Stats(ctx context.Context, tenantID string) (dashboard.Stats, error) {
	employees, err := s.employeeRepo.CountActive(ctx, tenantID)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count employees: %w", err)
	}

	departments, err := s.departmentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to list departments: %w", err)
	}

	pending, err := s.requestRepo.CountPendingByTenant(ctx, tenantID)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count pending leaves: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	present, err := s.attendanceRepo.CountPresentOn(ctx, tenantID, today)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count attendance: %w", err)
	}

	stats := dashboard.Stats{
		TotalEmployees:   employees,
		TotalDepartments: int64(len(departments)),
		PendingLeaves:    pending,
		PresentToday:     present,
	}
	if employees > 0 {
		rate := float64(present) / float64(employees) * 100
		stats.AttendanceRate = math.Round(rate*10) / 10
	}

	return stats, nil
}
