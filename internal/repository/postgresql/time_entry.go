package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bambooclone/hr-backend-go/internal/domain/timesheet"
	"github.com/bambooclone/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timesheet.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

const timeEntrySelect = `
	SELECT te.id, te.tenant_id, te.employee_id, te.project_id, te.date, te.hours,
		   te.description, te.is_billable, te.status, te.submitted_at,
		   te.resolved_by, te.resolved_at, te.created_at, te.updated_at,
		   p.name AS project_name, p.code AS project_code
	FROM time_entries te
	INNER JOIN projects p ON te.project_id = p.id
`

func scanTimeEntry(row pgx.Row) (timesheet.TimeEntry, error) {
	var te timesheet.TimeEntry
	err := row.Scan(
		&te.ID,
		&te.TenantID,
		&te.EmployeeID,
		&te.ProjectID,
		&te.Date,
		&te.Hours,
		&te.Description,
		&te.IsBillable,
		&te.Status,
		&te.SubmittedAt,
		&te.ResolvedBy,
		&te.ResolvedAt,
		&te.CreatedAt,
		&te.UpdatedAt,
		&te.ProjectName,
		&te.ProjectCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.TimeEntry{}, timesheet.ErrEntryNotFound
		}
		return timesheet.TimeEntry{}, err
	}
	return te, nil
}

func (r *timeEntryRepositoryImpl) Create(ctx context.Context, entry timesheet.TimeEntry) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (
			id, tenant_id, employee_id, project_id, date, hours,
			description, is_billable, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.TenantID, entry.EmployeeID, entry.ProjectID, entry.Date, entry.Hours,
		entry.Description, entry.IsBillable, entry.Status,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return timesheet.TimeEntry{}, err
	}

	return entry, nil
}

func (r *timeEntryRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := timeEntrySelect + ` WHERE te.id = $1`

	return scanTimeEntry(q.QueryRow(ctx, query, id))
}

func (r *timeEntryRepositoryImpl) ListByTenant(ctx context.Context, tenantID string, filter timesheet.EntryFilter) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := timeEntrySelect + ` WHERE te.tenant_id = $1`
	args := []interface{}{tenantID}
	argPos := 2

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND te.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND te.project_id = $%d", argPos)
		args = append(args, *filter.ProjectID)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND te.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND te.date >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND te.date <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	query += " ORDER BY te.date DESC, te.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimeEntries(rows)
}

func (r *timeEntryRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := timeEntrySelect + `
		WHERE te.employee_id = $1 AND te.date >= $2 AND te.date < $3
		ORDER BY te.date, te.created_at
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimeEntries(rows)
}

func (r *timeEntryRepositoryImpl) ListByIDs(ctx context.Context, ids []string) ([]timesheet.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := timeEntrySelect + ` WHERE te.id = ANY($1) ORDER BY te.date`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimeEntries(rows)
}

func collectTimeEntries(rows pgx.Rows) ([]timesheet.TimeEntry, error) {
	var entries []timesheet.TimeEntry
	for rows.Next() {
		te, err := scanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, te)
	}
	return entries, rows.Err()
}

func (r *timeEntryRepositoryImpl) DeleteDraft(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1 AND status = 'draft'`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM time_entries WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return timesheet.ErrEntryNotFound
		}
		return timesheet.ErrEntryNotDraft
	}
	return nil
}

// SubmitBatch flips every listed draft to submitted. The update counts only
// rows still in draft, so a short count means some entry already left draft;
// run inside a transaction to roll the batch back in that case.
func (r *timeEntryRepositoryImpl) SubmitBatch(ctx context.Context, ids []string, submittedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET status = 'submitted', submitted_at = $1, updated_at = NOW()
		WHERE id = ANY($2) AND status = 'draft'
	`

	commandTag, err := q.Exec(ctx, query, submittedAt, ids)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != int64(len(ids)) {
		return timesheet.ErrEntryNotDraft
	}
	return nil
}

// UpdateStatus mirrors the conditional write used for leave requests: only
// the expected pre-state matches, so racing approvers cannot both win.
func (r *timeEntryRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to timesheet.EntryStatus, resolvedBy string, resolvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET status = $1, resolved_by = $2, resolved_at = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	commandTag, err := q.Exec(ctx, query, to, resolvedBy, resolvedAt, id, from)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM time_entries WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return timesheet.ErrEntryNotFound
		}
		return timesheet.ErrEntryAlreadyProcessed
	}
	return nil
}
