package timesheet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
	"github.com/bambooclone/hr-backend-go/internal/domain/timesheet"
	"github.com/bambooclone/hr-backend-go/internal/pkg/database"
	"github.com/bambooclone/hr-backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	tx           database.TxRunner
	clientRepo   timesheet.ClientRepository
	projectRepo  timesheet.ProjectRepository
	entryRepo    timesheet.TimeEntryRepository
	employeeRepo employee.EmployeeRepository
}

func NewTimesheetService(
	tx database.TxRunner,
	clientRepo timesheet.ClientRepository,
	projectRepo timesheet.ProjectRepository,
	entryRepo timesheet.TimeEntryRepository,
	employeeRepo employee.EmployeeRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		tx:           tx,
		clientRepo:   clientRepo,
		projectRepo:  projectRepo,
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *TimesheetServiceImpl) CreateClient(ctx context.Context, tenantID string, req timesheet.CreateClientRequest) (timesheet.Client, error) {
	if err := req.Validate(); err != nil {
		return timesheet.Client{}, err
	}

	existing, err := s.clientRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return timesheet.Client{}, fmt.Errorf("failed to list clients: %w", err)
	}
	for _, c := range existing {
		if strings.EqualFold(c.Code, req.Code) {
			return timesheet.Client{}, timesheet.ErrClientCodeExists
		}
	}

	created, err := s.clientRepo.Create(ctx, timesheet.Client{
		TenantID:    tenantID,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	})
	if err != nil {
		return timesheet.Client{}, fmt.Errorf("failed to create client: %w", err)
	}

	return created, nil
}

func (s *TimesheetServiceImpl) ListClients(ctx context.Context, tenantID string) ([]timesheet.Client, error) {
	return s.clientRepo.ListByTenant(ctx, tenantID)
}

func (s *TimesheetServiceImpl) DeleteClient(ctx context.Context, tenantID, id string) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client.TenantID != tenantID {
		return timesheet.ErrClientNotFound
	}

	count, err := s.clientRepo.CountProjects(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count projects: %w", err)
	}
	if count > 0 {
		return timesheet.ErrClientHasProjects
	}

	return s.clientRepo.Delete(ctx, id)
}

func (s *TimesheetServiceImpl) CreateProject(ctx context.Context, tenantID string, req timesheet.CreateProjectRequest) (timesheet.Project, error) {
	if err := req.Validate(); err != nil {
		return timesheet.Project{}, err
	}

	client, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return timesheet.Project{}, err
	}
	if client.TenantID != tenantID {
		return timesheet.Project{}, timesheet.ErrClientNotFound
	}

	existing, err := s.projectRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return timesheet.Project{}, fmt.Errorf("failed to list projects: %w", err)
	}
	for _, p := range existing {
		if strings.EqualFold(p.Code, req.Code) {
			return timesheet.Project{}, timesheet.ErrProjectCodeExists
		}
	}

	created, err := s.projectRepo.Create(ctx, timesheet.Project{
		TenantID:    tenantID,
		ClientID:    req.ClientID,
		Name:        req.Name,
		Code:        req.Code,
		BudgetHours: req.BudgetHours,
		IsBillable:  req.IsBillable,
		IsActive:    true,
	})
	if err != nil {
		return timesheet.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return created, nil
}

func (s *TimesheetServiceImpl) ListProjects(ctx context.Context, tenantID string) ([]timesheet.Project, error) {
	return s.projectRepo.ListByTenant(ctx, tenantID)
}

func (s *TimesheetServiceImpl) DeleteProject(ctx context.Context, tenantID, id string) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project.TenantID != tenantID {
		return timesheet.ErrProjectNotFound
	}

	count, err := s.projectRepo.CountEntries(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count time entries: %w", err)
	}
	if count > 0 {
		return timesheet.ErrProjectHasEntries
	}

	return s.projectRepo.Delete(ctx, id)
}

func (s *TimesheetServiceImpl) AddEntry(ctx context.Context, tenantID string, req timesheet.CreateEntryRequest) (timesheet.TimeEntry, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimeEntry{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timesheet.TimeEntry{}, err
	}
	if emp.TenantID != tenantID {
		return timesheet.TimeEntry{}, employee.ErrEmployeeNotFound
	}

	project, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return timesheet.TimeEntry{}, err
	}
	if project.TenantID != tenantID {
		return timesheet.TimeEntry{}, timesheet.ErrProjectNotFound
	}
	if !project.IsActive {
		return timesheet.TimeEntry{}, timesheet.ErrProjectInactive
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.entryRepo.Create(ctx, timesheet.TimeEntry{
		TenantID:    tenantID,
		EmployeeID:  req.EmployeeID,
		ProjectID:   req.ProjectID,
		Date:        date,
		Hours:       req.Hours,
		Description: req.Description,
		IsBillable:  req.IsBillable,
		Status:      timesheet.EntryStatusDraft,
	})
	if err != nil {
		return timesheet.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return created, nil
}

func (s *TimesheetServiceImpl) ListEntries(ctx context.Context, tenantID string, filter timesheet.EntryFilter) ([]timesheet.TimeEntry, error) {
	return s.entryRepo.ListByTenant(ctx, tenantID, filter)
}

func (s *TimesheetServiceImpl) DeleteEntry(ctx context.Context, tenantID, employeeID, entryID string) error {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.TenantID != tenantID {
		return timesheet.ErrEntryNotFound
	}
	if entry.EmployeeID != employeeID {
		return timesheet.ErrEntryNotOwned
	}
	if entry.Status != timesheet.EntryStatusDraft {
		return timesheet.ErrEntryNotDraft
	}

	return s.entryRepo.DeleteDraft(ctx, entryID)
}

// SubmitWeek is all-or-nothing: every listed entry must be a draft owned by
// the employee and dated inside the 7-day window, otherwise nothing moves.
func (s *TimesheetServiceImpl) SubmitWeek(ctx context.Context, tenantID string, req timesheet.SubmitWeekRequest) ([]timesheet.TimeEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	weekStart, _ := validator.IsValidDate(req.WeekStart)
	weekEnd := weekStart.AddDate(0, 0, 7)

	entries, err := s.entryRepo.ListByIDs(ctx, req.EntryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	if len(entries) != len(req.EntryIDs) {
		return nil, timesheet.ErrEntryNotFound
	}

	for _, entry := range entries {
		if entry.TenantID != tenantID {
			return nil, timesheet.ErrEntryNotFound
		}
		if entry.EmployeeID != req.EmployeeID {
			return nil, timesheet.ErrEntryNotOwned
		}
		if entry.Status != timesheet.EntryStatusDraft {
			return nil, timesheet.ErrEntryNotDraft
		}
		if entry.Date.Before(weekStart) || !entry.Date.Before(weekEnd) {
			return nil, timesheet.ErrEntryOutsideWeek
		}
	}

	submittedAt := time.Now().UTC()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.entryRepo.SubmitBatch(txCtx, req.EntryIDs, submittedAt)
	})
	if err != nil {
		return nil, err
	}

	return s.entryRepo.ListByIDs(ctx, req.EntryIDs)
}

func (s *TimesheetServiceImpl) ApproveEntry(ctx context.Context, tenantID, entryID, resolvedBy string) (timesheet.TimeEntry, error) {
	return s.resolveEntry(ctx, tenantID, entryID, resolvedBy, timesheet.EntryStatusApproved)
}

func (s *TimesheetServiceImpl) RejectEntry(ctx context.Context, tenantID, entryID, resolvedBy string) (timesheet.TimeEntry, error) {
	return s.resolveEntry(ctx, tenantID, entryID, resolvedBy, timesheet.EntryStatusRejected)
}

func (s *TimesheetServiceImpl) resolveEntry(ctx context.Context, tenantID, entryID, resolvedBy string, to timesheet.EntryStatus) (timesheet.TimeEntry, error) {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return timesheet.TimeEntry{}, err
	}
	if entry.TenantID != tenantID {
		return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
	}

	switch entry.Status {
	case timesheet.EntryStatusSubmitted:
	case timesheet.EntryStatusDraft:
		return timesheet.TimeEntry{}, timesheet.ErrEntryNotSubmitted
	default:
		return timesheet.TimeEntry{}, timesheet.ErrEntryAlreadyProcessed
	}

	err = s.entryRepo.UpdateStatus(ctx, entryID,
		timesheet.EntryStatusSubmitted, to, resolvedBy, time.Now().UTC())
	if err != nil {
		return timesheet.TimeEntry{}, err
	}

	return s.entryRepo.GetByID(ctx, entryID)
}

func (s *TimesheetServiceImpl) WeeklySummary(ctx context.Context, tenantID, employeeID, weekStart string) (timesheet.WeeklySummary, error) {
	start, ok := validator.IsValidDate(weekStart)
	if !ok {
		return timesheet.WeeklySummary{}, validator.ValidationErrors{{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		}}
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return timesheet.WeeklySummary{}, err
	}
	if emp.TenantID != tenantID {
		return timesheet.WeeklySummary{}, employee.ErrEmployeeNotFound
	}

	entries, err := s.entryRepo.ListByEmployeeRange(ctx, employeeID, start, start.AddDate(0, 0, 7))
	if err != nil {
		return timesheet.WeeklySummary{}, fmt.Errorf("failed to list entries: %w", err)
	}

	return Summarize(entries), nil
}
