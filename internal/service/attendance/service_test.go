package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/attendance"
	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	seq     int
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	record, ok := f.records[recordKey(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	return record, nil
}

func (f *fakeAttendanceRepo) ClockIn(ctx context.Context, tenantID, employeeID string, date, at time.Time) (attendance.Attendance, error) {
	key := recordKey(employeeID, date)
	if existing, ok := f.records[key]; ok {
		if existing.CheckIn != nil {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		existing.CheckIn = &at
		existing.Status = attendance.StatusPresent
		f.records[key] = existing
		return existing, nil
	}

	f.seq++
	record := attendance.Attendance{
		ID:         fmt.Sprintf("att-%d", f.seq),
		TenantID:   tenantID,
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    &at,
		Status:     attendance.StatusPresent,
	}
	f.records[key] = record
	return record, nil
}

func (f *fakeAttendanceRepo) ClockOut(ctx context.Context, employeeID string, date, at time.Time) (attendance.Attendance, error) {
	key := recordKey(employeeID, date)
	record, ok := f.records[key]
	if !ok || record.CheckIn == nil || record.CheckOut != nil {
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	}
	record.CheckOut = &at
	f.records[key] = record
	return record, nil
}

func (f *fakeAttendanceRepo) ListByTenant(ctx context.Context, tenantID string, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, record := range f.records {
		if record.TenantID != tenantID {
			continue
		}
		if filter.EmployeeID != nil && record.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) MarkAbsent(ctx context.Context, tenantID string, employeeIDs []string, date time.Time) (int64, error) {
	var n int64
	for _, id := range employeeIDs {
		key := recordKey(id, date)
		if _, ok := f.records[key]; ok {
			continue
		}
		f.seq++
		f.records[key] = attendance.Attendance{
			ID:         fmt.Sprintf("att-%d", f.seq),
			TenantID:   tenantID,
			EmployeeID: id,
			Date:       date,
			Status:     attendance.StatusAbsent,
		}
		n++
	}
	return n, nil
}

func (f *fakeAttendanceRepo) CountPresentOn(ctx context.Context, tenantID string, date time.Time) (int64, error) {
	var n int64
	for _, record := range f.records {
		if record.TenantID == tenantID && record.Date.Equal(date) && record.Status == attendance.StatusPresent {
			n++
		}
	}
	return n, nil
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

func newAttendanceFixture(at time.Time) (attendance.AttendanceService, *fakeAttendanceRepo) {
	repo := &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", TenantID: "tenant-1", Status: employee.StatusActive},
	}}

	svc := NewAttendanceService(repo, employees).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return at }
	return svc, repo
}

func TestClockInThenOut(t *testing.T) {
	morning := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	svc, _ := newAttendanceFixture(morning)

	record, err := svc.ClockIn(context.Background(), "tenant-1", "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, record.Status)
	require.NotNil(t, record.CheckIn)
	assert.Nil(t, record.CheckOut)

	svc.(*AttendanceServiceImpl).now = func() time.Time {
		return time.Date(2024, 6, 3, 17, 30, 0, 0, time.UTC)
	}

	record, err = svc.ClockOut(context.Background(), "tenant-1", "emp-1")
	require.NoError(t, err)
	require.NotNil(t, record.CheckOut)
	assert.True(t, record.CheckOut.After(*record.CheckIn))
}

func TestClockInTwiceFails(t *testing.T) {
	svc, _ := newAttendanceFixture(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "tenant-1", "emp-1")
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), "tenant-1", "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	svc, _ := newAttendanceFixture(time.Date(2024, 6, 3, 17, 0, 0, 0, time.UTC))

	_, err := svc.ClockOut(context.Background(), "tenant-1", "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestClockOutTwiceFails(t *testing.T) {
	svc, _ := newAttendanceFixture(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "tenant-1", "emp-1")
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), "tenant-1", "emp-1")
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), "tenant-1", "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestClockInNextDayAfterCheckout(t *testing.T) {
	svc, _ := newAttendanceFixture(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))
	impl := svc.(*AttendanceServiceImpl)

	_, err := svc.ClockIn(context.Background(), "tenant-1", "emp-1")
	require.NoError(t, err)
	_, err = svc.ClockOut(context.Background(), "tenant-1", "emp-1")
	require.NoError(t, err)

	impl.now = func() time.Time { return time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC) }

	record, err := svc.ClockIn(context.Background(), "tenant-1", "emp-1")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), record.Date)
}

func TestTodayNoRecord(t *testing.T) {
	svc, _ := newAttendanceFixture(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))

	_, err := svc.Today(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestClockInAfterMarkedAbsent(t *testing.T) {
	svc, repo := newAttendanceFixture(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))

	// An absent placeholder has no check_in, so a late clock-in completes it.
	_, err := repo.MarkAbsent(context.Background(), "tenant-1", []string{"emp-1"}, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	record, err := svc.ClockIn(context.Background(), "tenant-1", "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, record.Status)
	assert.NotNil(t, record.CheckIn)
}

func TestClockInUnknownEmployee(t *testing.T) {
	svc, _ := newAttendanceFixture(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "tenant-1", "emp-ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
