package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/leave"
	"github.com/bambooclone/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestSelect = `
	SELECT lr.id, lr.tenant_id, lr.employee_id, lr.leave_type_id,
		   lr.start_date, lr.end_date, lr.reason, lr.status,
		   lr.resolved_by, lr.resolved_at, lr.created_at, lr.updated_at,
		   lt.name AS leave_type_name, lt.code AS leave_type_code,
		   e.full_name AS employee_name
	FROM leave_requests lr
	INNER JOIN leave_types lt ON lr.leave_type_id = lt.id
	INNER JOIN employees e ON lr.employee_id = e.id
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID,
		&lr.TenantID,
		&lr.EmployeeID,
		&lr.LeaveTypeID,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Reason,
		&lr.Status,
		&lr.ResolvedBy,
		&lr.ResolvedAt,
		&lr.CreatedAt,
		&lr.UpdatedAt,
		&lr.LeaveTypeName,
		&lr.LeaveTypeCode,
		&lr.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, tenant_id, employee_id, leave_type_id,
			start_date, end_date, reason, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6, $7,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.TenantID, request.EmployeeID, request.LeaveTypeID,
		request.StartDate, request.EndDate, request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect + ` WHERE lr.id = $1`

	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

func (r *leaveRequestRepositoryImpl) ListByTenant(ctx context.Context, tenantID string, filter leave.RequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect + ` WHERE lr.tenant_id = $1`
	args := []interface{}{tenantID}
	argPos := 2

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND lr.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND lr.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	query += " ORDER BY lr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *leaveRequestRepositoryImpl) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveRequestSelect + `
		WHERE lr.employee_id = $1
		  AND lr.status = 'approved'
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		ORDER BY lr.start_date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func collectLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// UpdateStatus performs a conditional transition: the row is written only if
// it is still in the expected pre-state. When two approvers race, exactly one
// write matches and the other caller observes ErrLeaveRequestAlreadyProcessed.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to leave.RequestStatus, resolvedBy string, resolvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, resolved_by = $2, resolved_at = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	commandTag, err := q.Exec(ctx, query, to, resolvedBy, resolvedAt, id, from)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leave_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return leave.ErrLeaveRequestNotFound
		}
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) CountPendingByTenant(ctx context.Context, tenantID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE tenant_id = $1 AND status = 'pending'`, tenantID).Scan(&count)
	return count, err
}
