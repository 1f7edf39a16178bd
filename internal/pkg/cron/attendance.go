package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/attendance"
	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
	"github.com/bambooclone/hr-backend-go/internal/domain/tenant"
)

// AttendanceJobs backfills absent records for employees who never clocked in.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	tenantRepo     tenant.TenantRepository
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	tenantRepo tenant.TenantRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		tenantRepo:     tenantRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees writes an absent record for yesterday for every active
// employee who has no attendance record on that date.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)

	tenants, err := j.tenantRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tenants: %w", err)
	}

	var totalMarked int64
	for _, t := range tenants {
		if !t.IsActive {
			continue
		}

		employees, err := j.employeeRepo.ListActiveByTenant(ctx, t.ID)
		if err != nil {
			slog.Error("Cron: Failed to list employees", "tenant_id", t.ID, "error", err)
			continue
		}
		if len(employees) == 0 {
			continue
		}

		ids := make([]string, 0, len(employees))
		for _, emp := range employees {
			ids = append(ids, emp.ID)
		}

		marked, err := j.attendanceRepo.MarkAbsent(ctx, t.ID, ids, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to mark absences", "tenant_id", t.ID, "error", err)
			continue
		}
		totalMarked += marked
	}

	slog.Info("Cron: Marked absent employees", "date", yesterday.Format("2006-01-02"), "count", totalMarked)
	return nil
}
