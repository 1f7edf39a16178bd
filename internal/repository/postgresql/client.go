package postgresql

import (
	"context"
	"errors"

	"github.com/bambooclone/hr-backend-go/internal/domain/timesheet"
	"github.com/bambooclone/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) timesheet.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

func (r *clientRepositoryImpl) Create(ctx context.Context, c timesheet.Client) (timesheet.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (id, tenant_id, name, code, description, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, UPPER($3), $4, NOW(), NOW())
		RETURNING id, code, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, c.TenantID, c.Name, c.Code, c.Description).
		Scan(&c.ID, &c.Code, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return timesheet.Client{}, err
	}

	return c, nil
}

func (r *clientRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, name, code, description, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	var c timesheet.Client
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Code, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Client{}, timesheet.ErrClientNotFound
		}
		return timesheet.Client{}, err
	}

	return c, nil
}

func (r *clientRepositoryImpl) ListByTenant(ctx context.Context, tenantID string) ([]timesheet.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, name, code, description, created_at, updated_at
		FROM clients
		WHERE tenant_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []timesheet.Client
	for rows.Next() {
		var c timesheet.Client
		err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.Code, &c.Description, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *clientRepositoryImpl) Update(ctx context.Context, c timesheet.Client) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, c.Name, c.Description, c.ID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return timesheet.ErrClientNotFound
	}
	return nil
}

func (r *clientRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return timesheet.ErrClientNotFound
	}
	return nil
}

func (r *clientRepositoryImpl) CountProjects(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE client_id = $1`, id).Scan(&count)
	return count, err
}
