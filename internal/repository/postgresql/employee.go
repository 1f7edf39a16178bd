package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bambooclone/hr-backend-go/internal/domain/employee"
	"github.com/bambooclone/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.TenantID,
		&e.EmployeeCode,
		&e.FullName,
		&e.Email,
		&e.Phone,
		&e.DepartmentID,
		&e.Designation,
		&e.DateOfJoining,
		&e.ReportingTo,
		&e.EmploymentType,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

const employeeSelect = `
	SELECT e.id, e.tenant_id, e.employee_code, e.full_name, e.email, e.phone,
		   e.department_id, e.designation, e.date_of_joining, e.reporting_to,
		   e.employment_type, e.status, e.created_at, e.updated_at,
		   d.name AS department_name
	FROM employees e
	LEFT JOIN departments d ON e.department_id = d.id
`

func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, tenant_id, employee_code, full_name, email, phone,
			department_id, designation, date_of_joining, reporting_to,
			employment_type, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, LOWER($4), $5,
			$6, $7, $8, $9,
			$10, $11,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.TenantID, e.EmployeeCode, e.FullName, e.Email, e.Phone,
		e.DepartmentID, e.Designation, e.DateOfJoining, e.ReportingTo,
		e.EmploymentType, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return e, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.id = $1`

	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, tenantID, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.tenant_id = $1 AND LOWER(e.email) = LOWER($2)`

	return scanEmployee(q.QueryRow(ctx, query, tenantID, email))
}

func (r *employeeRepositoryImpl) ListByTenant(ctx context.Context, tenantID string, filter employee.ListFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.tenant_id = $1`
	args := []interface{}{tenantID}
	argPos := 2

	if filter.Status != nil {
		query += fmt.Sprintf(" AND e.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.DepartmentID != nil {
		query += fmt.Sprintf(" AND e.department_id = $%d", argPos)
		args = append(args, *filter.DepartmentID)
		argPos++
	}
	if filter.Search != nil {
		query += fmt.Sprintf(" AND (e.full_name ILIKE $%d OR e.email ILIKE $%d OR e.employee_code ILIKE $%d)", argPos, argPos, argPos)
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	query += " ORDER BY e.full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) ListActiveByTenant(ctx context.Context, tenantID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + ` WHERE e.tenant_id = $1 AND e.status = 'active' ORDER BY e.full_name`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET employee_code = $1, full_name = $2, email = LOWER($3), phone = $4,
			department_id = $5, designation = $6, date_of_joining = $7,
			reporting_to = $8, employment_type = $9, status = $10, updated_at = NOW()
		WHERE id = $11
	`

	commandTag, err := q.Exec(ctx, query,
		e.EmployeeCode, e.FullName, e.Email, e.Phone,
		e.DepartmentID, e.Designation, e.DateOfJoining,
		e.ReportingTo, e.EmploymentType, e.Status, e.ID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) ExistsByCodeOrEmail(ctx context.Context, tenantID, code, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE tenant_id = $1 AND (employee_code = $2 OR LOWER(email) = LOWER($3))
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, tenantID, code, email).Scan(&exists)
	return exists, err
}

func (r *employeeRepositoryImpl) Lock(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var locked string
	err := q.QueryRow(ctx, `SELECT id FROM employees WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

func (r *employeeRepositoryImpl) CountActive(ctx context.Context, tenantID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE tenant_id = $1 AND status = 'active'`, tenantID).Scan(&count)
	return count, err
}
