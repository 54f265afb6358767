package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/meridianhr/payroll-backend-go/internal/domain/employee"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.full_name, e.identity_no, e.epf_no, e.socso_no, e.tax_no,
	e.join_date, e.resign_date, e.status, e.department_id, e.grade_id,
	e.created_at, e.updated_at, d.name, g.name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.FullName, &e.IdentityNo, &e.EPFNo, &e.SOCSONo, &e.TaxNo,
		&e.JoinDate, &e.ResignDate, &e.Status, &e.DepartmentID, &e.GradeID,
		&e.CreatedAt, &e.UpdatedAt, &e.DepartmentName, &e.GradeName,
	)
	return e, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN grades g ON e.grade_id = g.id
		WHERE e.id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN grades g ON e.grade_id = g.id
		WHERE e.employee_code = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeCode))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_code, full_name, identity_no, epf_no, socso_no, tax_no,
			join_date, status, department_id, grade_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	e := newEmployee
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeCode, newEmployee.FullName, newEmployee.IdentityNo,
		newEmployee.EPFNo, newEmployee.SOCSONo, newEmployee.TaxNo,
		newEmployee.JoinDate, newEmployee.Status, newEmployee.DepartmentID, newEmployee.GradeID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if strings.Contains(err.Error(), "uk_employee_identity_no") {
			return employee.Employee{}, employee.ErrIdentityNoExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) ExistsByCodeOrIdentityNo(ctx context.Context, employeeCode, identityNo string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees WHERE employee_code = $1 OR identity_no = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeCode, identityNo).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

func (r *employeeRepository) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	argIdx := 2

	if req.FullName != nil {
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.IdentityNo != nil {
		setParts = append(setParts, fmt.Sprintf("identity_no = $%d", argIdx))
		args = append(args, *req.IdentityNo)
		argIdx++
	}
	if req.EPFNo != nil {
		setParts = append(setParts, fmt.Sprintf("epf_no = $%d", argIdx))
		args = append(args, *req.EPFNo)
		argIdx++
	}
	if req.SOCSONo != nil {
		setParts = append(setParts, fmt.Sprintf("socso_no = $%d", argIdx))
		args = append(args, *req.SOCSONo)
		argIdx++
	}
	if req.TaxNo != nil {
		setParts = append(setParts, fmt.Sprintf("tax_no = $%d", argIdx))
		args = append(args, *req.TaxNo)
		argIdx++
	}
	if req.ResignDate != nil {
		setParts = append(setParts, fmt.Sprintf("resign_date = $%d", argIdx))
		args = append(args, *req.ResignDate)
		argIdx++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.DepartmentID != nil {
		setParts = append(setParts, fmt.Sprintf("department_id = $%d", argIdx))
		args = append(args, *req.DepartmentID)
		argIdx++
	}
	if req.GradeID != nil {
		setParts = append(setParts, fmt.Sprintf("grade_id = $%d", argIdx))
		args = append(args, *req.GradeID)
		argIdx++
	}

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $1", strings.Join(setParts, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_identity_no") {
			return employee.ErrIdentityNoExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) List(ctx context.Context, includeStatuses []employee.EmploymentStatus) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN grades g ON e.grade_id = g.id
	`
	var args []interface{}
	if len(includeStatuses) > 0 {
		statuses := make([]string, len(includeStatuses))
		for i, s := range includeStatuses {
			statuses[i] = string(s)
		}
		query += " WHERE e.status = ANY($1)"
		args = append(args, statuses)
	}
	query += " ORDER BY e.employee_code"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}
