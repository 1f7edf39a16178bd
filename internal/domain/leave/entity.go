package leave

import "time"

// LeaveType entity
type LeaveType struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	DaysAllowed  int       `json:"days_allowed"`
	CarryForward bool      `json:"carry_forward"`
	Encashable   bool      `json:"encashable"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// LeaveRequest entity. Status is terminal once approved or rejected; a new
// request must be created instead of resubmitting.
type LeaveRequest struct {
	ID          string        `json:"id"`
	TenantID    string        `json:"tenant_id"`
	EmployeeID  string        `json:"employee_id"`
	LeaveTypeID string        `json:"leave_type_id"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	Reason      *string       `json:"reason,omitempty"`
	Status      RequestStatus `json:"status"`
	ResolvedBy  *string       `json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Joins
	LeaveTypeName *string `json:"leave_type_name,omitempty"`
	LeaveTypeCode *string `json:"leave_type_code,omitempty"`
	EmployeeName  *string `json:"employee_name,omitempty"`
}

// DurationDays returns the inclusive number of calendar days covered by the
// request.
func (r LeaveRequest) DurationDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// DaysInYear counts the days of the request falling inside the given
// calendar year. Requests spanning a year boundary charge each day to the
// year it falls in.
func (r LeaveRequest) DaysInYear(year int) int {
	days := 0
	for d := r.StartDate; !d.After(r.EndDate); d = d.AddDate(0, 0, 1) {
		if d.Year() == year {
			days++
		}
	}
	return days
}

// BalanceSummary is one employee's balance sheet for a calendar year.
type BalanceSummary struct {
	Year     int       `json:"year"`
	Balances []Balance `json:"balances"`
}

// Balance is derived on demand, never persisted.
type Balance struct {
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeCode string `json:"leave_type_code"`
	LeaveTypeName string `json:"leave_type_name"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
	CarryForward  bool   `json:"carry_forward"`
}
