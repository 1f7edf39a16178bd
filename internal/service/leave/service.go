package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
	"github.com/bambooclone/hr-backend-go/internal/domain/leave"
	"github.com/bambooclone/hr-backend-go/internal/pkg/database"
	"github.com/bambooclone/hr-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	tx           database.TxRunner
	typeRepo     leave.LeaveTypeRepository
	requestRepo  leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(
	tx database.TxRunner,
	typeRepo leave.LeaveTypeRepository,
	requestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:           tx,
		typeRepo:     typeRepo,
		requestRepo:  requestRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, tenantID string, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	existing, err := s.typeRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to list leave types: %w", err)
	}
	for _, lt := range existing {
		if strings.EqualFold(lt.Code, req.Code) {
			return leave.LeaveType{}, leave.ErrLeaveTypeCodeExists
		}
	}

	created, err := s.typeRepo.Create(ctx, leave.LeaveType{
		TenantID:     tenantID,
		Name:         req.Name,
		Code:         req.Code,
		DaysAllowed:  req.DaysAllowed,
		CarryForward: req.CarryForward,
		Encashable:   req.Encashable,
	})
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return created, nil
}

func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context, tenantID string) ([]leave.LeaveType, error) {
	return s.typeRepo.ListByTenant(ctx, tenantID)
}

func (s *LeaveServiceImpl) UpdateLeaveType(ctx context.Context, tenantID, id string, req leave.UpdateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	leaveType, err := s.getTenantLeaveType(ctx, tenantID, id)
	if err != nil {
		return leave.LeaveType{}, err
	}

	if req.Name != nil {
		leaveType.Name = *req.Name
	}
	if req.DaysAllowed != nil {
		leaveType.DaysAllowed = *req.DaysAllowed
	}
	if req.CarryForward != nil {
		leaveType.CarryForward = *req.CarryForward
	}
	if req.Encashable != nil {
		leaveType.Encashable = *req.Encashable
	}

	if err := s.typeRepo.Update(ctx, leaveType); err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to update leave type: %w", err)
	}

	return leaveType, nil
}

func (s *LeaveServiceImpl) DeleteLeaveType(ctx context.Context, tenantID, id string) error {
	if _, err := s.getTenantLeaveType(ctx, tenantID, id); err != nil {
		return err
	}

	count, err := s.typeRepo.CountRequests(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count leave requests: %w", err)
	}
	if count > 0 {
		return leave.ErrLeaveTypeInUse
	}

	return s.typeRepo.Delete(ctx, id)
}

func (s *LeaveServiceImpl) SubmitRequest(ctx context.Context, tenantID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if emp.TenantID != tenantID {
		return leave.LeaveRequest{}, employee.ErrEmployeeNotFound
	}

	leaveType, err := s.getTenantLeaveType(ctx, tenantID, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	request := leave.LeaveRequest{
		TenantID:    tenantID,
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      leave.RequestStatusPending,
	}

	if err := s.checkQuota(ctx, leaveType, request); err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

func (s *LeaveServiceImpl) ListRequests(ctx context.Context, tenantID string, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	return s.requestRepo.ListByTenant(ctx, tenantID, filter)
}

// ApproveRequest resolves a pending request. The employee row is locked and
// the quota re-checked inside the same transaction as the conditional status
// write: an over-quota approval fails and the request stays pending, of two
// racing approvers exactly one wins, and concurrent approvals of different
// requests for the same employee serialize on the lock.
func (s *LeaveServiceImpl) ApproveRequest(ctx context.Context, tenantID, requestID, resolvedBy string) (leave.LeaveRequest, error) {
	request, err := s.getTenantRequest(ctx, tenantID, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if request.Status != leave.RequestStatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	leaveType, err := s.typeRepo.GetByID(ctx, request.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.employeeRepo.Lock(txCtx, request.EmployeeID); err != nil {
			return err
		}
		if err := s.checkQuota(txCtx, leaveType, request); err != nil {
			return err
		}
		return s.requestRepo.UpdateStatus(txCtx, requestID,
			leave.RequestStatusPending, leave.RequestStatusApproved, resolvedBy, time.Now().UTC())
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return s.requestRepo.GetByID(ctx, requestID)
}

func (s *LeaveServiceImpl) RejectRequest(ctx context.Context, tenantID, requestID, resolvedBy string) (leave.LeaveRequest, error) {
	request, err := s.getTenantRequest(ctx, tenantID, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if request.Status != leave.RequestStatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	err = s.requestRepo.UpdateStatus(ctx, requestID,
		leave.RequestStatusPending, leave.RequestStatusRejected, resolvedBy, time.Now().UTC())
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return s.requestRepo.GetByID(ctx, requestID)
}

func (s *LeaveServiceImpl) GetBalances(ctx context.Context, tenantID, employeeID string, year int) (leave.BalanceSummary, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.BalanceSummary{}, err
	}
	if emp.TenantID != tenantID {
		return leave.BalanceSummary{}, employee.ErrEmployeeNotFound
	}

	types, err := s.typeRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return leave.BalanceSummary{}, fmt.Errorf("failed to list leave types: %w", err)
	}

	// One-year lookback covers the carry-forward window.
	from := time.Date(year-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	approved, err := s.requestRepo.ListApprovedInRange(ctx, employeeID, from, to)
	if err != nil {
		return leave.BalanceSummary{}, fmt.Errorf("failed to list approved requests: %w", err)
	}

	byType := make(map[string][]leave.LeaveRequest)
	for _, request := range approved {
		byType[request.LeaveTypeID] = append(byType[request.LeaveTypeID], request)
	}

	balances := make([]leave.Balance, 0, len(types))
	for _, lt := range types {
		balances = append(balances, ComputeBalance(lt, byType[lt.ID], year))
	}

	return leave.BalanceSummary{Year: year, Balances: balances}, nil
}

// checkQuota verifies that every year touched by the request still has room
// for the days the request charges to it.
func (s *LeaveServiceImpl) checkQuota(ctx context.Context, leaveType leave.LeaveType, request leave.LeaveRequest) error {
	startYear := request.StartDate.Year()
	endYear := request.EndDate.Year()

	from := time.Date(startYear-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(endYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	approved, err := s.requestRepo.ListApprovedInRange(ctx, request.EmployeeID, from, to)
	if err != nil {
		return fmt.Errorf("failed to list approved requests: %w", err)
	}

	sameType := approved[:0:0]
	for _, r := range approved {
		if r.LeaveTypeID == leaveType.ID && r.ID != request.ID {
			sameType = append(sameType, r)
		}
	}

	for year := startYear; year <= endYear; year++ {
		requested := request.DaysInYear(year)
		if requested == 0 {
			continue
		}
		balance := ComputeBalance(leaveType, sameType, year)
		if requested > balance.RemainingDays {
			return fmt.Errorf("%w: requested %d days of %s, %d remaining",
				leave.ErrInsufficientQuota, requested, leaveType.Code, balance.RemainingDays)
		}
	}

	return nil
}

func (s *LeaveServiceImpl) getTenantLeaveType(ctx context.Context, tenantID, id string) (leave.LeaveType, error) {
	leaveType, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveType{}, err
	}
	if leaveType.TenantID != tenantID {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return leaveType, nil
}

func (s *LeaveServiceImpl) getTenantRequest(ctx context.Context, tenantID, id string) (leave.LeaveRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if request.TenantID != tenantID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}
