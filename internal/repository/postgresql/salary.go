package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/meridianhr/payroll-backend-go/internal/domain/salary"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

// ========== COMPONENTS ==========

func (r *salaryRepository) CreateComponent(ctx context.Context, component salary.Component) (salary.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_components (
			code, name, type, frequency, is_taxable, is_epf_applicable, is_socso_applicable, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, code, name, type, frequency, is_taxable, is_epf_applicable, is_socso_applicable,
			is_active, created_at, updated_at
	`

	var c salary.Component
	err := q.QueryRow(ctx, query,
		component.Code, component.Name, component.Type, component.Frequency,
		component.IsTaxable, component.IsEPFApplicable, component.IsSOCSOApplicable, component.IsActive,
	).Scan(
		&c.ID, &c.Code, &c.Name, &c.Type, &c.Frequency, &c.IsTaxable, &c.IsEPFApplicable,
		&c.IsSOCSOApplicable, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_salary_component_code") {
			return salary.Component{}, salary.ErrComponentCodeExists
		}
		return salary.Component{}, fmt.Errorf("failed to create salary component: %w", err)
	}

	return c, nil
}

func (r *salaryRepository) GetComponentByID(ctx context.Context, id string) (salary.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, type, frequency, is_taxable, is_epf_applicable, is_socso_applicable,
			is_active, created_at, updated_at
		FROM salary_components
		WHERE id = $1
	`

	var c salary.Component
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Code, &c.Name, &c.Type, &c.Frequency, &c.IsTaxable, &c.IsEPFApplicable,
		&c.IsSOCSOApplicable, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Component{}, salary.ErrComponentNotFound
		}
		return salary.Component{}, fmt.Errorf("failed to get salary component: %w", err)
	}

	return c, nil
}

func (r *salaryRepository) GetComponentByCode(ctx context.Context, code string) (salary.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, type, frequency, is_taxable, is_epf_applicable, is_socso_applicable,
			is_active, created_at, updated_at
		FROM salary_components
		WHERE code = $1
	`

	var c salary.Component
	err := q.QueryRow(ctx, query, code).Scan(
		&c.ID, &c.Code, &c.Name, &c.Type, &c.Frequency, &c.IsTaxable, &c.IsEPFApplicable,
		&c.IsSOCSOApplicable, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Component{}, salary.ErrComponentNotFound
		}
		return salary.Component{}, fmt.Errorf("failed to get salary component by code: %w", err)
	}

	return c, nil
}

func (r *salaryRepository) ListComponents(ctx context.Context, activeOnly bool) ([]salary.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, type, frequency, is_taxable, is_epf_applicable, is_socso_applicable,
			is_active, created_at, updated_at
		FROM salary_components
	`
	if activeOnly {
		query += " WHERE is_active = true"
	}
	query += " ORDER BY type, code"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary components: %w", err)
	}
	defer rows.Close()

	var components []salary.Component
	for rows.Next() {
		var c salary.Component
		if err := rows.Scan(
			&c.ID, &c.Code, &c.Name, &c.Type, &c.Frequency, &c.IsTaxable, &c.IsEPFApplicable,
			&c.IsSOCSOApplicable, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary component: %w", err)
		}
		components = append(components, c)
	}

	return components, nil
}

func (r *salaryRepository) UpdateComponent(ctx context.Context, req salary.UpdateComponentRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setParts = append(setParts, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.IsTaxable != nil {
		setParts = append(setParts, fmt.Sprintf("is_taxable = $%d", argIdx))
		args = append(args, *req.IsTaxable)
		argIdx++
	}
	if req.IsEPFApplicable != nil {
		setParts = append(setParts, fmt.Sprintf("is_epf_applicable = $%d", argIdx))
		args = append(args, *req.IsEPFApplicable)
		argIdx++
	}
	if req.IsSOCSOApplicable != nil {
		setParts = append(setParts, fmt.Sprintf("is_socso_applicable = $%d", argIdx))
		args = append(args, *req.IsSOCSOApplicable)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	query := fmt.Sprintf("UPDATE salary_components SET %s WHERE id = $1", strings.Join(setParts, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update salary component: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrComponentNotFound
	}

	return nil
}

// ========== STRUCTURE ASSIGNMENTS ==========

const assignmentColumns = `
	s.id, s.employee_id, s.component_id, s.amount, s.effective_start_date, s.effective_end_date,
	s.is_active, s.created_by, s.created_at, c.code, c.name, c.type
`

func scanAssignment(row pgx.Row) (salary.StructureAssignment, error) {
	var a salary.StructureAssignment
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.ComponentID, &a.Amount, &a.EffectiveStartDate, &a.EffectiveEndDate,
		&a.IsActive, &a.CreatedBy, &a.CreatedAt, &a.ComponentCode, &a.ComponentName, &a.ComponentType,
	)
	return a, err
}

func (r *salaryRepository) CreateAssignment(ctx context.Context, assignment salary.StructureAssignment) (salary.StructureAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_salary_structures (
			employee_id, component_id, amount, effective_start_date, effective_end_date, is_active, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	a := assignment
	err := q.QueryRow(ctx, query,
		assignment.EmployeeID, assignment.ComponentID, assignment.Amount,
		assignment.EffectiveStartDate, assignment.EffectiveEndDate, assignment.IsActive, assignment.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "fk_structure_component") {
			return salary.StructureAssignment{}, salary.ErrComponentNotFound
		}
		return salary.StructureAssignment{}, fmt.Errorf("failed to create structure assignment: %w", err)
	}

	return a, nil
}

func (r *salaryRepository) GetAssignmentByID(ctx context.Context, id string) (salary.StructureAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM employee_salary_structures s
		JOIN salary_components c ON s.component_id = c.id
		WHERE s.id = $1
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.StructureAssignment{}, salary.ErrAssignmentNotFound
		}
		return salary.StructureAssignment{}, fmt.Errorf("failed to get structure assignment: %w", err)
	}

	return a, nil
}

func (r *salaryRepository) ListAssignmentsByEmployee(ctx context.Context, employeeID string) ([]salary.StructureAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM employee_salary_structures s
		JOIN salary_components c ON s.component_id = c.id
		WHERE s.employee_id = $1
		ORDER BY s.effective_start_date, s.created_at
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list structure assignments: %w", err)
	}
	defer rows.Close()

	var assignments []salary.StructureAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan structure assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (r *salaryRepository) ListEffectiveByEmployee(ctx context.Context, employeeID string, date time.Time) ([]salary.StructureAssignment, error) {
	q := GetQuerier(ctx, r.db)

	// Both boundaries are inclusive; NULL end date means open-ended.
	query := `
		SELECT ` + assignmentColumns + `
		FROM employee_salary_structures s
		JOIN salary_components c ON s.component_id = c.id
		WHERE s.employee_id = $1
		  AND s.is_active = true
		  AND s.effective_start_date <= $2
		  AND (s.effective_end_date IS NULL OR s.effective_end_date >= $2)
		ORDER BY s.created_at
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve effective structures: %w", err)
	}
	defer rows.Close()

	var assignments []salary.StructureAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan structure assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (r *salaryRepository) EndAssignment(ctx context.Context, id string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employee_salary_structures SET effective_end_date = $2 WHERE id = $1`, id, endDate)
	if err != nil {
		return fmt.Errorf("failed to end structure assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrAssignmentNotFound
	}

	return nil
}

func (r *salaryRepository) DeactivateAssignment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employee_salary_structures SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate structure assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrAssignmentNotFound
	}

	return nil
}
