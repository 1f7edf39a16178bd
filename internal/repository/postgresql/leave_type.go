package postgresql

import (
	"context"
	"errors"

	"github.com/bambooclone/hr-backend-go/internal/domain/leave"
	"github.com/bambooclone/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (id, tenant_id, name, code, days_allowed, carry_forward, encashable, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, UPPER($3), $4, $5, $6, NOW(), NOW())
		RETURNING id, code, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lt.TenantID, lt.Name, lt.Code, lt.DaysAllowed, lt.CarryForward, lt.Encashable,
	).Scan(&lt.ID, &lt.Code, &lt.CreatedAt, &lt.UpdatedAt)
	if err != nil {
		return leave.LeaveType{}, err
	}

	return lt, nil
}

func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, name, code, days_allowed, carry_forward, encashable, created_at, updated_at
		FROM leave_types
		WHERE id = $1
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(
		&lt.ID, &lt.TenantID, &lt.Name, &lt.Code, &lt.DaysAllowed,
		&lt.CarryForward, &lt.Encashable, &lt.CreatedAt, &lt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, err
	}

	return lt, nil
}

func (r *leaveTypeRepositoryImpl) ListByTenant(ctx context.Context, tenantID string) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, name, code, days_allowed, carry_forward, encashable, created_at, updated_at
		FROM leave_types
		WHERE tenant_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		err := rows.Scan(
			&lt.ID, &lt.TenantID, &lt.Name, &lt.Code, &lt.DaysAllowed,
			&lt.CarryForward, &lt.Encashable, &lt.CreatedAt, &lt.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		types = append(types, lt)
	}

	return types, rows.Err()
}

func (r *leaveTypeRepositoryImpl) Update(ctx context.Context, lt leave.LeaveType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_types
		SET name = $1, days_allowed = $2, carry_forward = $3, encashable = $4, updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, lt.Name, lt.DaysAllowed, lt.CarryForward, lt.Encashable, lt.ID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}

func (r *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return leave.ErrLeaveTypeNotFound
	}
	return nil
}

func (r *leaveTypeRepositoryImpl) CountRequests(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE leave_type_id = $1`, id).Scan(&count)
	return count, err
}
