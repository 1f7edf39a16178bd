package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
	"github.com/bambooclone/hr-backend-go/internal/domain/tenant"
	"github.com/bambooclone/hr-backend-go/internal/domain/timesheet"
	"github.com/bambooclone/hr-backend-go/internal/pkg/email"
)

// TimesheetJobs nudges employees who still have draft entries for last week.
type TimesheetJobs struct {
	entryRepo    timesheet.TimeEntryRepository
	employeeRepo employee.EmployeeRepository
	tenantRepo   tenant.TenantRepository
	emailSvc     email.EmailService
}

func NewTimesheetJobs(
	entryRepo timesheet.TimeEntryRepository,
	employeeRepo employee.EmployeeRepository,
	tenantRepo tenant.TenantRepository,
	emailSvc email.EmailService,
) *TimesheetJobs {
	return &TimesheetJobs{
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
		tenantRepo:   tenantRepo,
		emailSvc:     emailSvc,
	}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("timesheet_weekly_reminder", 1*time.Hour, j.SendWeeklyReminders)
}

// SendWeeklyReminders emails employees who left draft entries in last week's
// timesheet. Runs Monday morning only.
func (j *TimesheetJobs) SendWeeklyReminders(ctx context.Context) error {
	now := time.Now().UTC()
	// Only run Monday 08:00-08:59 UTC
	if now.Weekday() != time.Monday || now.Hour() != 8 {
		return nil
	}

	slog.Info("Cron: Starting timesheet reminder job")

	// Last week's Monday, start of day.
	today := now.Truncate(24 * time.Hour)
	weekStart := today.AddDate(0, 0, -7)
	weekEnd := today

	tenants, err := j.tenantRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tenants: %w", err)
	}

	sent := 0
	for _, t := range tenants {
		if !t.IsActive {
			continue
		}

		employees, err := j.employeeRepo.ListActiveByTenant(ctx, t.ID)
		if err != nil {
			slog.Error("Cron: Failed to list employees", "tenant_id", t.ID, "error", err)
			continue
		}

		for _, emp := range employees {
			entries, err := j.entryRepo.ListByEmployeeRange(ctx, emp.ID, weekStart, weekEnd)
			if err != nil {
				slog.Error("Cron: Failed to list time entries", "employee_id", emp.ID, "error", err)
				continue
			}

			hasDraft := false
			for _, entry := range entries {
				if entry.Status == timesheet.EntryStatusDraft {
					hasDraft = true
					break
				}
			}
			if !hasDraft {
				continue
			}

			if err := j.emailSvc.SendTimesheetReminder(emp.Email, emp.FullName, weekStart.Format("2006-01-02")); err != nil {
				slog.Error("Cron: Failed to send timesheet reminder", "employee_id", emp.ID, "error", err)
				continue
			}
			sent++
		}
	}

	slog.Info("Cron: Timesheet reminders sent", "week_start", weekStart.Format("2006-01-02"), "count", sent)
	return nil
}
