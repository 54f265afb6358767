package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/meridianhr/payroll-backend-go/internal/domain/master/grade"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/database"
)

type gradeRepository struct {
	db *database.DB
}

func NewGradeRepository(db *database.DB) grade.GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) Create(ctx context.Context, g grade.Grade) (grade.Grade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO grades (name, min_salary, max_salary, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, min_salary, max_salary, description, created_at, updated_at
	`

	var created grade.Grade
	err := q.QueryRow(ctx, query, g.Name, g.MinSalary, g.MaxSalary, g.Description).Scan(
		&created.ID, &created.Name, &created.MinSalary, &created.MaxSalary, &created.Description,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_grade_name") {
			return grade.Grade{}, grade.ErrGradeNameExists
		}
		return grade.Grade{}, fmt.Errorf("failed to create grade: %w", err)
	}

	return created, nil
}

func (r *gradeRepository) GetByID(ctx context.Context, id string) (grade.Grade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, min_salary, max_salary, description, created_at, updated_at
		FROM grades
		WHERE id = $1
	`

	var g grade.Grade
	err := q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.Name, &g.MinSalary, &g.MaxSalary, &g.Description, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return grade.Grade{}, grade.ErrGradeNotFound
		}
		return grade.Grade{}, fmt.Errorf("failed to get grade: %w", err)
	}

	return g, nil
}

func (r *gradeRepository) List(ctx context.Context) ([]grade.Grade, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, min_salary, max_salary, description, created_at, updated_at
		FROM grades
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	defer rows.Close()

	var grades []grade.Grade
	for rows.Next() {
		var g grade.Grade
		if err := rows.Scan(
			&g.ID, &g.Name, &g.MinSalary, &g.MaxSalary, &g.Description, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan grade: %w", err)
		}
		grades = append(grades, g)
	}

	return grades, nil
}

func (r *gradeRepository) Update(ctx context.Context, req grade.UpdateGradeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE grades
		SET name = $2, min_salary = $3, max_salary = $4, description = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Name, req.MinSalary, req.MaxSalary, req.Description)
	if err != nil {
		if strings.Contains(err.Error(), "uk_grade_name") {
			return grade.ErrGradeNameExists
		}
		return fmt.Errorf("failed to update grade: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return grade.ErrGradeNotFound
	}

	return nil
}

func (r *gradeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete grade: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return grade.ErrGradeNotFound
	}

	return nil
}
