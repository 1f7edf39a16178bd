package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/attendance"
	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	// now is swappable for tests
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// today truncates the clock to the calendar date the record is keyed on.
func (s *AttendanceServiceImpl) today() (time.Time, time.Time) {
	now := s.now()
	return now.Truncate(24 * time.Hour), now
}

func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, tenantID, employeeID string) (attendance.Attendance, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if emp.TenantID != tenantID {
		return attendance.Attendance{}, employee.ErrEmployeeNotFound
	}

	date, now := s.today()
	return s.attendanceRepo.ClockIn(ctx, tenantID, employeeID, date, now)
}

func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, tenantID, employeeID string) (attendance.Attendance, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if emp.TenantID != tenantID {
		return attendance.Attendance{}, employee.ErrEmployeeNotFound
	}

	date, now := s.today()

	record, err := s.attendanceRepo.ClockOut(ctx, employeeID, date, now)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, attendance.ErrNotCheckedIn) {
		return attendance.Attendance{}, err
	}

	// The conditional write failed; look at the record to say why.
	existing, getErr := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if getErr != nil {
		if errors.Is(getErr, attendance.ErrRecordNotFound) {
			return attendance.Attendance{}, attendance.ErrNotCheckedIn
		}
		return attendance.Attendance{}, getErr
	}
	if existing.CheckOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}
	return attendance.Attendance{}, attendance.ErrNotCheckedIn
}

func (s *AttendanceServiceImpl) Today(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	date, _ := s.today()
	return s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
}

func (s *AttendanceServiceImpl) List(ctx context.Context, tenantID string, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	return s.attendanceRepo.ListByTenant(ctx, tenantID, filter)
}
