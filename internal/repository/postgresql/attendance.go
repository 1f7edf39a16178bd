package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/attendance"
	"github.com/bambooclone/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.tenant_id, a.employee_id, a.date, a.check_in, a.check_out,
		   a.status, a.created_at, a.updated_at,
		   e.full_name AS employee_name
	FROM attendance_records a
	INNER JOIN employees e ON a.employee_id = e.id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.TenantID,
		&a.EmployeeID,
		&a.Date,
		&a.CheckIn,
		&a.CheckOut,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrRecordNotFound
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.employee_id = $1 AND a.date = $2`

	return scanAttendance(q.QueryRow(ctx, query, employeeID, date))
}

// ClockIn inserts today's record, or completes an existing one whose
// check_in is still unset (an absent row backfilled by the sweep). The guard
// on check_in makes a second clock-in on the same day match zero rows.
func (r *attendanceRepositoryImpl) ClockIn(ctx context.Context, tenantID, employeeID string, date time.Time, at time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, tenant_id, employee_id, date, check_in, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, 'present', NOW(), NOW())
		ON CONFLICT (employee_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in, status = 'present', updated_at = NOW()
		WHERE attendance_records.check_in IS NULL
		RETURNING id, tenant_id, employee_id, date, check_in, check_out, status, created_at, updated_at
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, tenantID, employeeID, date, at).Scan(
		&a.ID, &a.TenantID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, err
	}

	return a, nil
}

// ClockOut sets check_out conditionally: the row must have a check_in and no
// check_out yet. The caller distinguishes the two failure modes.
func (r *attendanceRepositoryImpl) ClockOut(ctx context.Context, employeeID string, date time.Time, at time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_out = $1, updated_at = NOW()
		WHERE employee_id = $2 AND date = $3
		  AND check_in IS NOT NULL AND check_out IS NULL
		RETURNING id, tenant_id, employee_id, date, check_in, check_out, status, created_at, updated_at
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, at, employeeID, date).Scan(
		&a.ID, &a.TenantID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotCheckedIn
		}
		return attendance.Attendance{}, err
	}

	return a, nil
}

func (r *attendanceRepositoryImpl) ListByTenant(ctx context.Context, tenantID string, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.tenant_id = $1`
	args := []interface{}{tenantID}
	argPos := 2

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND a.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND a.date >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND a.date <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	query += " ORDER BY a.date DESC, e.full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) MarkAbsent(ctx context.Context, tenantID string, employeeIDs []string, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, tenant_id, employee_id, date, status, created_at, updated_at)
		SELECT uuidv7(), $1, emp_id, $2, 'absent', NOW(), NOW()
		FROM UNNEST($3::text[]) AS emp_id
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	commandTag, err := q.Exec(ctx, query, tenantID, date, employeeIDs)
	if err != nil {
		return 0, err
	}
	return commandTag.RowsAffected(), nil
}

func (r *attendanceRepositoryImpl) CountPresentOn(ctx context.Context, tenantID string, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance_records WHERE tenant_id = $1 AND date = $2 AND check_in IS NOT NULL`,
		tenantID, date,
	).Scan(&count)
	return count, err
}
