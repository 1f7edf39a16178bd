package leave

import (
	"context"
	"time"
)

// LeaveTypeRepository - interface for leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	ListByTenant(ctx context.Context, tenantID string) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) error
	Delete(ctx context.Context, id string) error
	CountRequests(ctx context.Context, id string) (int64, error)
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByTenant(ctx context.Context, tenantID string, filter RequestFilter) ([]LeaveRequest, error)
	// ListApprovedInRange returns approved requests of one employee whose
	// date range overlaps [from, to].
	ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
	// UpdateStatus transitions a request from expected pre-state to the new
	// status. The write is conditional on the pre-state so concurrent
	// approvers cannot both win; the loser gets
	// ErrLeaveRequestAlreadyProcessed.
	UpdateStatus(ctx context.Context, id string, from, to RequestStatus, resolvedBy string, resolvedAt time.Time) error
	CountPendingByTenant(ctx context.Context, tenantID string) (int64, error)
}
