package postgresql

import (
	"context"
	"errors"

	"github.com/bambooclone/hr-backend-go/internal/domain/timesheet"
	"github.com/bambooclone/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) timesheet.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectSelect = `
	SELECT p.id, p.tenant_id, p.client_id, p.name, p.code, p.budget_hours,
		   p.is_billable, p.is_active, p.created_at, p.updated_at,
		   c.name AS client_name
	FROM projects p
	INNER JOIN clients c ON p.client_id = c.id
`

func scanProject(row pgx.Row) (timesheet.Project, error) {
	var p timesheet.Project
	err := row.Scan(
		&p.ID,
		&p.TenantID,
		&p.ClientID,
		&p.Name,
		&p.Code,
		&p.BudgetHours,
		&p.IsBillable,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.ClientName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Project{}, timesheet.ErrProjectNotFound
		}
		return timesheet.Project{}, err
	}
	return p, nil
}

func (r *projectRepositoryImpl) Create(ctx context.Context, p timesheet.Project) (timesheet.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (
			id, tenant_id, client_id, name, code, budget_hours,
			is_billable, is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, UPPER($4), $5,
			$6, $7, NOW(), NOW()
		) RETURNING id, code, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.TenantID, p.ClientID, p.Name, p.Code, p.BudgetHours,
		p.IsBillable, p.IsActive,
	).Scan(&p.ID, &p.Code, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return timesheet.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := projectSelect + ` WHERE p.id = $1`

	return scanProject(q.QueryRow(ctx, query, id))
}

func (r *projectRepositoryImpl) ListByTenant(ctx context.Context, tenantID string) ([]timesheet.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := projectSelect + ` WHERE p.tenant_id = $1 ORDER BY p.name`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []timesheet.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *projectRepositoryImpl) Update(ctx context.Context, p timesheet.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = $1, budget_hours = $2, is_billable = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, p.Name, p.BudgetHours, p.IsBillable, p.IsActive, p.ID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return timesheet.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return timesheet.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepositoryImpl) CountEntries(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM time_entries WHERE project_id = $1`, id).Scan(&count)
	return count, err
}
