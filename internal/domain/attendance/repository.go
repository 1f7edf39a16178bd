package attendance

import (
	"context"
	"time"
)

// AttendanceRepository - interface for attendance_records table
type AttendanceRepository interface {
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	// ClockIn creates or completes today's record, conditional on check_in
	// still being unset. ErrAlreadyCheckedIn when the guard fails.
	ClockIn(ctx context.Context, tenantID, employeeID string, date time.Time, at time.Time) (Attendance, error)
	// ClockOut sets check_out, conditional on check_in being set and
	// check_out unset.
	ClockOut(ctx context.Context, employeeID string, date time.Time, at time.Time) (Attendance, error)
	ListByTenant(ctx context.Context, tenantID string, filter ListFilter) ([]Attendance, error)
	// MarkAbsent inserts absent records for the given employees on a date,
	// skipping any that already have a record.
	MarkAbsent(ctx context.Context, tenantID string, employeeIDs []string, date time.Time) (int64, error)
	CountPresentOn(ctx context.Context, tenantID string, date time.Time) (int64, error)
}
