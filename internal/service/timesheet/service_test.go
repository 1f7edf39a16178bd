package timesheet

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
	"github.com/bambooclone/hr-backend-go/internal/domain/timesheet"
	"github.com/bambooclone/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeClientRepo struct {
	clients map[string]timesheet.Client
	seq     int
}

func (f *fakeClientRepo) Create(ctx context.Context, c timesheet.Client) (timesheet.Client, error) {
	f.seq++
	c.ID = fmt.Sprintf("client-%d", f.seq)
	f.clients[c.ID] = c
	return c, nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id string) (timesheet.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return timesheet.Client{}, timesheet.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClientRepo) ListByTenant(ctx context.Context, tenantID string) ([]timesheet.Client, error) {
	var out []timesheet.Client
	for _, c := range f.clients {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) Update(ctx context.Context, c timesheet.Client) error {
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientRepo) Delete(ctx context.Context, id string) error {
	delete(f.clients, id)
	return nil
}

func (f *fakeClientRepo) CountProjects(ctx context.Context, id string) (int64, error) {
	return 0, nil
}

type fakeProjectRepo struct {
	projects map[string]timesheet.Project
	seq      int
}

func (f *fakeProjectRepo) Create(ctx context.Context, p timesheet.Project) (timesheet.Project, error) {
	f.seq++
	p.ID = fmt.Sprintf("project-%d", f.seq)
	f.projects[p.ID] = p
	return p, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (timesheet.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return timesheet.Project{}, timesheet.ErrProjectNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) ListByTenant(ctx context.Context, tenantID string) ([]timesheet.Project, error) {
	var out []timesheet.Project
	for _, p := range f.projects {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, p timesheet.Project) error {
	f.projects[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectRepo) CountEntries(ctx context.Context, id string) (int64, error) {
	return 0, nil
}

type fakeEntryRepo struct {
	entries map[string]timesheet.TimeEntry
	seq     int
}

func (f *fakeEntryRepo) Create(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	f.seq++
	entry.ID = fmt.Sprintf("entry-%d", f.seq)
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakeEntryRepo) GetByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
	}
	return entry, nil
}

func (f *fakeEntryRepo) ListByTenant(ctx context.Context, tenantID string, filter timesheet.EntryFilter) ([]timesheet.TimeEntry, error) {
	var out []timesheet.TimeEntry
	for _, entry := range f.entries {
		if entry.TenantID == tenantID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]timesheet.TimeEntry, error) {
	var out []timesheet.TimeEntry
	for _, entry := range f.entries {
		if entry.EmployeeID != employeeID {
			continue
		}
		if entry.Date.Before(from) || !entry.Date.Before(to) {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (f *fakeEntryRepo) ListByIDs(ctx context.Context, ids []string) ([]timesheet.TimeEntry, error) {
	var out []timesheet.TimeEntry
	for _, id := range ids {
		if entry, ok := f.entries[id]; ok {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) DeleteDraft(ctx context.Context, id string) error {
	entry, ok := f.entries[id]
	if !ok {
		return timesheet.ErrEntryNotFound
	}
	if entry.Status != timesheet.EntryStatusDraft {
		return timesheet.ErrEntryNotDraft
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeEntryRepo) SubmitBatch(ctx context.Context, ids []string, submittedAt time.Time) error {
	for _, id := range ids {
		entry, ok := f.entries[id]
		if !ok || entry.Status != timesheet.EntryStatusDraft {
			return timesheet.ErrEntryNotDraft
		}
	}
	for _, id := range ids {
		entry := f.entries[id]
		entry.Status = timesheet.EntryStatusSubmitted
		entry.SubmittedAt = &submittedAt
		f.entries[id] = entry
	}
	return nil
}

func (f *fakeEntryRepo) UpdateStatus(ctx context.Context, id string, from, to timesheet.EntryStatus, resolvedBy string, resolvedAt time.Time) error {
	entry, ok := f.entries[id]
	if !ok {
		return timesheet.ErrEntryNotFound
	}
	if entry.Status != from {
		return timesheet.ErrEntryAlreadyProcessed
	}
	entry.Status = to
	entry.ResolvedBy = &resolvedBy
	entry.ResolvedAt = &resolvedAt
	f.entries[id] = entry
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, tenantID, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListByTenant(ctx context.Context, tenantID string, filter employee.ListFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListActiveByTenant(ctx context.Context, tenantID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) ExistsByCodeOrEmail(ctx context.Context, tenantID, code, email string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context, tenantID string) (int64, error) {
	return int64(len(f.employees)), nil
}

func (f *fakeEmployeeRepo) Lock(ctx context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

type timesheetFixture struct {
	svc     timesheet.TimesheetService
	entries *fakeEntryRepo
	project timesheet.Project
}

func newTimesheetFixture() timesheetFixture {
	clients := &fakeClientRepo{clients: make(map[string]timesheet.Client)}
	projects := &fakeProjectRepo{projects: make(map[string]timesheet.Project)}
	entries := &fakeEntryRepo{entries: make(map[string]timesheet.TimeEntry)}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", TenantID: "tenant-1", Status: employee.StatusActive},
		"emp-2": {ID: "emp-2", TenantID: "tenant-1", Status: employee.StatusActive},
	}}

	client, _ := clients.Create(context.Background(), timesheet.Client{TenantID: "tenant-1", Name: "Acme", Code: "ACME"})
	project, _ := projects.Create(context.Background(), timesheet.Project{
		TenantID: "tenant-1", ClientID: client.ID, Name: "Website", Code: "WEB", IsBillable: true, IsActive: true,
	})

	return timesheetFixture{
		svc:     NewTimesheetService(passthroughTx{}, clients, projects, entries, employees),
		entries: entries,
		project: project,
	}
}

func (fx timesheetFixture) addDraft(t *testing.T, date string, hours float64) timesheet.TimeEntry {
	t.Helper()
	created, err := fx.svc.AddEntry(context.Background(), "tenant-1", timesheet.CreateEntryRequest{
		EmployeeID: "emp-1",
		ProjectID:  fx.project.ID,
		Date:       date,
		Hours:      hours,
		IsBillable: true,
	})
	require.NoError(t, err)
	return created
}

func TestAddEntryRejectsNonQuarterHours(t *testing.T) {
	fx := newTimesheetFixture()

	_, err := fx.svc.AddEntry(context.Background(), "tenant-1", timesheet.CreateEntryRequest{
		EmployeeID: "emp-1",
		ProjectID:  fx.project.ID,
		Date:       "2024-06-03",
		Hours:      2.3,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	created, err := fx.svc.AddEntry(context.Background(), "tenant-1", timesheet.CreateEntryRequest{
		EmployeeID: "emp-1",
		ProjectID:  fx.project.ID,
		Date:       "2024-06-03",
		Hours:      2.25,
	})
	require.NoError(t, err)
	assert.Equal(t, timesheet.EntryStatusDraft, created.Status)
}

func TestAddEntryInactiveProject(t *testing.T) {
	fx := newTimesheetFixture()
	fx.project.IsActive = false
	svcImpl := fx.svc.(*TimesheetServiceImpl)
	require.NoError(t, svcImpl.projectRepo.Update(context.Background(), fx.project))

	_, err := fx.svc.AddEntry(context.Background(), "tenant-1", timesheet.CreateEntryRequest{
		EmployeeID: "emp-1",
		ProjectID:  fx.project.ID,
		Date:       "2024-06-03",
		Hours:      4,
	})

	assert.ErrorIs(t, err, timesheet.ErrProjectInactive)
}

func TestSubmitWeek(t *testing.T) {
	fx := newTimesheetFixture()
	first := fx.addDraft(t, "2024-06-03", 8)
	second := fx.addDraft(t, "2024-06-09", 6)

	submitted, err := fx.svc.SubmitWeek(context.Background(), "tenant-1", timesheet.SubmitWeekRequest{
		EmployeeID: "emp-1",
		WeekStart:  "2024-06-03",
		EntryIDs:   []string{first.ID, second.ID},
	})

	require.NoError(t, err)
	require.Len(t, submitted, 2)
	for _, entry := range submitted {
		assert.Equal(t, timesheet.EntryStatusSubmitted, entry.Status)
		assert.NotNil(t, entry.SubmittedAt)
	}
}

func TestSubmitWeekAllOrNothing(t *testing.T) {
	fx := newTimesheetFixture()
	draft := fx.addDraft(t, "2024-06-03", 8)
	processed := fx.addDraft(t, "2024-06-04", 4)

	// Move one entry past draft before the batch submit.
	require.NoError(t, fx.entries.SubmitBatch(context.Background(), []string{processed.ID}, time.Now().UTC()))

	_, err := fx.svc.SubmitWeek(context.Background(), "tenant-1", timesheet.SubmitWeekRequest{
		EmployeeID: "emp-1",
		WeekStart:  "2024-06-03",
		EntryIDs:   []string{draft.ID, processed.ID},
	})

	assert.ErrorIs(t, err, timesheet.ErrEntryNotDraft)

	// The valid draft must be untouched.
	stored, err := fx.entries.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.EntryStatusDraft, stored.Status)
}

func TestSubmitWeekEntryOutsideWindow(t *testing.T) {
	fx := newTimesheetFixture()
	inside := fx.addDraft(t, "2024-06-03", 8)
	outside := fx.addDraft(t, "2024-06-10", 4)

	_, err := fx.svc.SubmitWeek(context.Background(), "tenant-1", timesheet.SubmitWeekRequest{
		EmployeeID: "emp-1",
		WeekStart:  "2024-06-03",
		EntryIDs:   []string{inside.ID, outside.ID},
	})

	assert.ErrorIs(t, err, timesheet.ErrEntryOutsideWeek)
}

func TestSubmitWeekUnknownEntry(t *testing.T) {
	fx := newTimesheetFixture()
	draft := fx.addDraft(t, "2024-06-03", 8)

	_, err := fx.svc.SubmitWeek(context.Background(), "tenant-1", timesheet.SubmitWeekRequest{
		EmployeeID: "emp-1",
		WeekStart:  "2024-06-03",
		EntryIDs:   []string{draft.ID, "entry-missing"},
	})

	assert.ErrorIs(t, err, timesheet.ErrEntryNotFound)
}

func TestSubmitWeekForeignEntry(t *testing.T) {
	fx := newTimesheetFixture()
	foreign, err := fx.svc.AddEntry(context.Background(), "tenant-1", timesheet.CreateEntryRequest{
		EmployeeID: "emp-2",
		ProjectID:  fx.project.ID,
		Date:       "2024-06-03",
		Hours:      8,
	})
	require.NoError(t, err)

	_, err = fx.svc.SubmitWeek(context.Background(), "tenant-1", timesheet.SubmitWeekRequest{
		EmployeeID: "emp-1",
		WeekStart:  "2024-06-03",
		EntryIDs:   []string{foreign.ID},
	})

	assert.ErrorIs(t, err, timesheet.ErrEntryNotOwned)
}

func TestDeleteEntryOnlyDrafts(t *testing.T) {
	fx := newTimesheetFixture()
	entry := fx.addDraft(t, "2024-06-03", 8)

	_, err := fx.svc.SubmitWeek(context.Background(), "tenant-1", timesheet.SubmitWeekRequest{
		EmployeeID: "emp-1",
		WeekStart:  "2024-06-03",
		EntryIDs:   []string{entry.ID},
	})
	require.NoError(t, err)

	err = fx.svc.DeleteEntry(context.Background(), "tenant-1", "emp-1", entry.ID)
	assert.ErrorIs(t, err, timesheet.ErrEntryNotDraft)
}

func TestDeleteEntryOwnership(t *testing.T) {
	fx := newTimesheetFixture()
	entry := fx.addDraft(t, "2024-06-03", 8)

	err := fx.svc.DeleteEntry(context.Background(), "tenant-1", "emp-2", entry.ID)
	assert.ErrorIs(t, err, timesheet.ErrEntryNotOwned)
}

func TestResolveEntryLifecycle(t *testing.T) {
	fx := newTimesheetFixture()
	entry := fx.addDraft(t, "2024-06-03", 8)

	// Drafts are not eligible for resolution.
	_, err := fx.svc.ApproveEntry(context.Background(), "tenant-1", entry.ID, "user-hr")
	assert.ErrorIs(t, err, timesheet.ErrEntryNotSubmitted)

	_, err = fx.svc.SubmitWeek(context.Background(), "tenant-1", timesheet.SubmitWeekRequest{
		EmployeeID: "emp-1",
		WeekStart:  "2024-06-03",
		EntryIDs:   []string{entry.ID},
	})
	require.NoError(t, err)

	approved, err := fx.svc.ApproveEntry(context.Background(), "tenant-1", entry.ID, "user-hr")
	require.NoError(t, err)
	assert.Equal(t, timesheet.EntryStatusApproved, approved.Status)
	require.NotNil(t, approved.ResolvedBy)
	assert.Equal(t, "user-hr", *approved.ResolvedBy)

	_, err = fx.svc.RejectEntry(context.Background(), "tenant-1", entry.ID, "user-manager")
	assert.ErrorIs(t, err, timesheet.ErrEntryAlreadyProcessed)
}

func TestWeeklySummaryThroughService(t *testing.T) {
	fx := newTimesheetFixture()
	fx.addDraft(t, "2024-06-03", 8)
	fx.addDraft(t, "2024-06-04", 6.5)
	// Next week, must not count.
	fx.addDraft(t, "2024-06-10", 8)

	summary, err := fx.svc.WeeklySummary(context.Background(), "tenant-1", "emp-1", "2024-06-03")
	require.NoError(t, err)

	assert.Equal(t, 14.5, summary.TotalHours)
	assert.Equal(t, 100, summary.BillablePercentage)
}

func TestWeeklySummaryBadDate(t *testing.T) {
	fx := newTimesheetFixture()

	_, err := fx.svc.WeeklySummary(context.Background(), "tenant-1", "emp-1", "03-06-2024")

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
