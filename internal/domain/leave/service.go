package leave

import "context"

// LeaveService drives the leave workflow: type catalogue management,
// request submission with quota enforcement, and pending-state resolution.
type LeaveService interface {
	CreateLeaveType(ctx context.Context, tenantID string, req CreateLeaveTypeRequest) (LeaveType, error)
	ListLeaveTypes(ctx context.Context, tenantID string) ([]LeaveType, error)
	UpdateLeaveType(ctx context.Context, tenantID, id string, req UpdateLeaveTypeRequest) (LeaveType, error)
	DeleteLeaveType(ctx context.Context, tenantID, id string) error

	SubmitRequest(ctx context.Context, tenantID string, req CreateLeaveRequestRequest) (LeaveRequest, error)
	ListRequests(ctx context.Context, tenantID string, filter RequestFilter) ([]LeaveRequest, error)
	// ApproveRequest re-checks the quota inside the transition; over-quota
	// approval fails and the request stays pending.
	ApproveRequest(ctx context.Context, tenantID, requestID, resolvedBy string) (LeaveRequest, error)
	RejectRequest(ctx context.Context, tenantID, requestID, resolvedBy string) (LeaveRequest, error)

	// GetBalances computes the employee's balance sheet for the year; the
	// resolved year is echoed in the summary.
	GetBalances(ctx context.Context, tenantID, employeeID string, year int) (BalanceSummary, error)
}
