package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
	"github.com/bambooclone/hr-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLeaveTypeRepo struct {
	types map[string]leave.LeaveType
}

func (f *fakeLeaveTypeRepo) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	lt.ID = fmt.Sprintf("lt-%d", len(f.types)+1)
	f.types[lt.ID] = lt
	return lt, nil
}

func (f *fakeLeaveTypeRepo) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	lt, ok := f.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (f *fakeLeaveTypeRepo) ListByTenant(ctx context.Context, tenantID string) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for _, lt := range f.types {
		if lt.TenantID == tenantID {
			out = append(out, lt)
		}
	}
	return out, nil
}

func (f *fakeLeaveTypeRepo) Update(ctx context.Context, lt leave.LeaveType) error {
	f.types[lt.ID] = lt
	return nil
}

func (f *fakeLeaveTypeRepo) Delete(ctx context.Context, id string) error {
	delete(f.types, id)
	return nil
}

func (f *fakeLeaveTypeRepo) CountRequests(ctx context.Context, id string) (int64, error) {
	return 0, nil
}

type fakeLeaveRequestRepo struct {
	requests map[string]leave.LeaveRequest
	seq      int
}

func (f *fakeLeaveRequestRepo) Create(ctx context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.seq++
	r.ID = fmt.Sprintf("lr-%d", f.seq)
	f.requests[r.ID] = r
	return r, nil
}

func (f *fakeLeaveRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r, nil
}

func (f *fakeLeaveRequestRepo) ListByTenant(ctx context.Context, tenantID string, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.TenantID != tenantID {
			continue
		}
		if filter.EmployeeID != nil && r.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(r.Status) != *filter.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.EmployeeID != employeeID || r.Status != leave.RequestStatusApproved {
			continue
		}
		if r.EndDate.Before(from) || r.StartDate.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) UpdateStatus(ctx context.Context, id string, from, to leave.RequestStatus, resolvedBy string, resolvedAt time.Time) error {
	r, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if r.Status != from {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	r.Status = to
	r.ResolvedBy = &resolvedBy
	r.ResolvedAt = &resolvedAt
	f.requests[id] = r
	return nil
}

func (f *fakeLeaveRequestRepo) CountPendingByTenant(ctx context.Context, tenantID string) (int64, error) {
	var n int64
	for _, r := range f.requests {
		if r.TenantID == tenantID && r.Status == leave.RequestStatusPending {
			n++
		}
	}
	return n, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	locked    []string
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
	f.locked = append(f.locked, id)
	return nil
}

type leaveFixture struct {
	svc       leave.LeaveService
	types     *fakeLeaveTypeRepo
	requests  *fakeLeaveRequestRepo
	employees *fakeEmployeeRepo
}

func newLeaveFixture() leaveFixture {
	types := &fakeLeaveTypeRepo{types: make(map[string]leave.LeaveType)}
	requests := &fakeLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", TenantID: "tenant-1", Status: employee.StatusActive},
	}}
	return leaveFixture{
		svc:       NewLeaveService(passthroughTx{}, types, requests, employees),
		types:     types,
		requests:  requests,
		employees: employees,
	}
}

func (fx leaveFixture) addType(lt leave.LeaveType) leave.LeaveType {
	created, _ := fx.types.Create(context.Background(), lt)
	return created
}

func (fx leaveFixture) addApproved(typeID, start, end string) leave.LeaveRequest {
	created, _ := fx.requests.Create(context.Background(), leave.LeaveRequest{
		TenantID:    "tenant-1",
		EmployeeID:  "emp-1",
		LeaveTypeID: typeID,
		StartDate:   day(start),
		EndDate:     day(end),
		Status:      leave.RequestStatusApproved,
	})
	return created
}

func TestSubmitRequestCreatesPending(t *testing.T) {
	fx := newLeaveFixture()
	lt := fx.addType(leave.LeaveType{TenantID: "tenant-1", Name: "Annual Leave", Code: "AL", DaysAllowed: 12})

	created, err := fx.svc.SubmitRequest(context.Background(), "tenant-1", leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusPending, created.Status)
	assert.Equal(t, 5, created.DurationDays())
}

func TestSubmitRequestInsufficientQuota(t *testing.T) {
	fx := newLeaveFixture()
	lt := fx.addType(leave.LeaveType{TenantID: "tenant-1", Name: "Annual Leave", Code: "AL", DaysAllowed: 12})
	fx.addApproved(lt.ID, "2024-03-04", "2024-03-08")

	// 5 of 12 days already approved; an 8-day request must not fit.
	_, err := fx.svc.SubmitRequest(context.Background(), "tenant-1", leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   "2024-07-01",
		EndDate:     "2024-07-08",
	})

	assert.ErrorIs(t, err, leave.ErrInsufficientQuota)

	// A 7-day request fills the balance exactly.
	created, err := fx.svc.SubmitRequest(context.Background(), "tenant-1", leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   "2024-07-01",
		EndDate:     "2024-07-07",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusPending, created.Status)
}

func TestSubmitRequestPendingDoesNotConsumeQuota(t *testing.T) {
	fx := newLeaveFixture()
	lt := fx.addType(leave.LeaveType{TenantID: "tenant-1", Name: "Annual Leave", Code: "AL", DaysAllowed: 12})

	for _, window := range [][2]string{
		{"2024-04-01", "2024-04-10"},
		{"2024-05-01", "2024-05-10"},
	} {
		_, err := fx.svc.SubmitRequest(context.Background(), "tenant-1", leave.CreateLeaveRequestRequest{
			EmployeeID:  "emp-1",
			LeaveTypeID: lt.ID,
			StartDate:   window[0],
			EndDate:     window[1],
		})
		require.NoError(t, err)
	}

	summary, err := fx.svc.GetBalances(context.Background(), "tenant-1", "emp-1", 2024)
	require.NoError(t, err)
	require.Len(t, summary.Balances, 1)
	assert.Equal(t, 0, summary.Balances[0].UsedDays)
	assert.Equal(t, 12, summary.Balances[0].RemainingDays)
}

func TestSubmitRequestEmployeeFromOtherTenant(t *testing.T) {
	fx := newLeaveFixture()
	lt := fx.addType(leave.LeaveType{TenantID: "tenant-2", Name: "Annual Leave", Code: "AL", DaysAllowed: 12})

	_, err := fx.svc.SubmitRequest(context.Background(), "tenant-2", leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-04",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApproveRequest(t *testing.T) {
	fx := newLeaveFixture()
	lt := fx.addType(leave.LeaveType{TenantID: "tenant-1", Name: "Annual Leave", Code: "AL", DaysAllowed: 12})

	created, err := fx.svc.SubmitRequest(context.Background(), "tenant-1", leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	require.NoError(t, err)

	approved, err := fx.svc.ApproveRequest(context.Background(), "tenant-1", created.ID, "user-hr")
	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusApproved, approved.Status)
	require.NotNil(t, approved.ResolvedBy)
	assert.Equal(t, "user-hr", *approved.ResolvedBy)
	assert.NotNil(t, approved.ResolvedAt)
}

func TestApproveRequestTwiceFails(t *testing.T) {
	fx := newLeaveFixture()
	lt := fx.addType(leave.LeaveType{TenantID: "tenant-1", Name: "Annual Leave", Code: "AL", DaysAllowed: 12})

	created, err := fx.svc.SubmitRequest(context.Background(), "tenant-1", leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	require.NoError(t, err)

	_, err = fx.svc.ApproveRequest(context.Background(), "tenant-1", created.ID, "user-hr")
	require.NoError(t, err)

	_, err = fx.svc.ApproveRequest(context.Background(), "tenant-1", created.ID, "user-manager")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	_, err = fx.svc.RejectRequest(context.Background(), "tenant-1", created.ID, "user-manager")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestApproveRequestOverQuotaStaysPending(t *testing.T) {
	fx := newLeaveFixture()
	lt := fx.addType(leave.LeaveType{TenantID: "tenant-1", Name: "Annual Leave", Code: "AL", DaysAllowed: 12})

	// Both requests fit individually; approving the first consumes enough
	// quota that the second no longer fits at approval time.
	first, err := fx.svc.SubmitRequest(context.Background(), "tenant-1", leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   "2024-04-01",
		EndDate:     "2024-04-08",
	})
	require.NoError(t, err)

	second, err := fx.svc.SubmitRequest(context.Background(), "tenant-1", leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   "2024-05-01",
		EndDate:     "2024-05-08",
	})
	require.NoError(t, err)

	_, err = fx.svc.ApproveRequest(context.Background(), "tenant-1", first.ID, "user-hr")
	require.NoError(t, err)

	_, err = fx.svc.ApproveRequest(context.Background(), "tenant-1", second.ID, "user-hr")
	assert.ErrorIs(t, err, leave.ErrInsufficientQuota)

	// The loser stays pending so it can still be rejected.
	stored, err := fx.requests.GetByID(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusPending, stored.Status)
}

func TestApproveRequestLocksEmployee(t *testing.T) {
	fx := newLeaveFixture()
	lt := fx.addType(leave.LeaveType{TenantID: "tenant-1", Name: "Annual Leave", Code: "AL", DaysAllowed: 12})

	created, err := fx.svc.SubmitRequest(context.Background(), "tenant-1", leave.CreateLeaveRequestRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-07",
	})
	require.NoError(t, err)

	// The quota re-check runs under the employee row lock so approvals of
	// different requests for the same employee serialize.
	_, err = fx.svc.ApproveRequest(context.Background(), "tenant-1", created.ID, "user-hr")
	require.NoError(t, err)
	assert.Equal(t, []string{"emp-1"}, fx.employees.locked)
}

func TestRejectRequestIgnoresQuota(t *testing.T) {
	fx := newLeaveFixture()
	lt := fx.addType(leave.LeaveType{TenantID: "tenant-1", Name: "Annual Leave", Code: "AL", DaysAllowed: 2})

	// Validation passes at submit only if the request fits, so seed the
	// pending request directly.
	created, err := fx.requests.Create(context.Background(), leave.LeaveRequest{
		TenantID:    "tenant-1",
		EmployeeID:  "emp-1",
		LeaveTypeID: lt.ID,
		StartDate:   day("2024-06-03"),
		EndDate:     day("2024-06-28"),
		Status:      leave.RequestStatusPending,
	})
	require.NoError(t, err)

	rejected, err := fx.svc.RejectRequest(context.Background(), "tenant-1", created.ID, "user-hr")
	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusRejected, rejected.Status)
}

func TestGetBalancesCarryForwardLookback(t *testing.T) {
	fx := newLeaveFixture()
	lt := fx.addType(leave.LeaveType{TenantID: "tenant-1", Name: "Annual Leave", Code: "AL", DaysAllowed: 10, CarryForward: true})
	fx.addApproved(lt.ID, "2023-09-04", "2023-09-07")
	fx.addApproved(lt.ID, "2024-02-05", "2024-02-06")

	summary, err := fx.svc.GetBalances(context.Background(), "tenant-1", "emp-1", 2024)
	require.NoError(t, err)
	assert.Equal(t, 2024, summary.Year)
	require.Len(t, summary.Balances, 1)

	// 6 unused 2023 days carry into 2024.
	assert.Equal(t, 16, summary.Balances[0].TotalDays)
	assert.Equal(t, 2, summary.Balances[0].UsedDays)
	assert.Equal(t, 14, summary.Balances[0].RemainingDays)
}

func TestDeleteLeaveTypeInUse(t *testing.T) {
	fx := newLeaveFixture()
	lt := fx.addType(leave.LeaveType{TenantID: "tenant-1", Name: "Annual Leave", Code: "AL", DaysAllowed: 12})

	countingRepo := &countingTypeRepo{fakeLeaveTypeRepo: fx.types, count: 3}
	svc := NewLeaveService(passthroughTx{}, countingRepo, fx.requests, &fakeEmployeeRepo{employees: map[string]employee.Employee{}})

	err := svc.DeleteLeaveType(context.Background(), "tenant-1", lt.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveTypeInUse)
}

type countingTypeRepo struct {
	*fakeLeaveTypeRepo
	count int64
}

func (f *countingTypeRepo) CountRequests(ctx context.Context, id string) (int64, error) {
	return f.count, nil
}

func TestCreateLeaveTypeDuplicateCode(t *testing.T) {
	fx := newLeaveFixture()
	fx.addType(leave.LeaveType{TenantID: "tenant-1", Name: "Annual Leave", Code: "AL", DaysAllowed: 12})

	_, err := fx.svc.CreateLeaveType(context.Background(), "tenant-1", leave.CreateLeaveTypeRequest{
		Name:        "Also Annual",
		Code:        "al",
		DaysAllowed: 5,
	})

	assert.ErrorIs(t, err, leave.ErrLeaveTypeCodeExists)
}
