package attendance

import "context"

// AttendanceService drives the daily check-in/check-out cycle.
type AttendanceService interface {
	ClockIn(ctx context.Context, tenantID, employeeID string) (Attendance, error)
	ClockOut(ctx context.Context, tenantID, employeeID string) (Attendance, error)
	// Today returns today's record for the employee, or ErrRecordNotFound
	// when nothing has been recorded yet.
	Today(ctx context.Context, employeeID string) (Attendance, error)
	List(ctx context.Context, tenantID string, filter ListFilter) ([]Attendance, error)
}
