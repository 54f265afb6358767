package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/meridianhr/payroll-backend-go/internal/domain/payroll"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== RUNS ==========

const runColumns = `
	id, month, year, run_date, status, processed_by, total_payout, created_at, updated_at
`

func scanRun(row pgx.Row) (payroll.Run, error) {
	var run payroll.Run
	err := row.Scan(
		&run.ID, &run.Month, &run.Year, &run.RunDate, &run.Status,
		&run.ProcessedBy, &run.TotalPayout, &run.CreatedAt, &run.UpdatedAt,
	)
	return run, err
}

func (r *payrollRepository) GetRunByPeriod(ctx context.Context, month, year int) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + runColumns + `
		FROM payroll_runs
		WHERE month = $1 AND year = $2
	`

	run, err := scanRun(q.QueryRow(ctx, query, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	return run, nil
}

func (r *payrollRepository) GetRunByPeriodForUpdate(ctx context.Context, month, year int) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + runColumns + `
		FROM payroll_runs
		WHERE month = $1 AND year = $2
		FOR UPDATE
	`

	run, err := scanRun(q.QueryRow(ctx, query, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to lock payroll run: %w", err)
	}

	return run, nil
}

func (r *payrollRepository) CreateRun(ctx context.Context, run payroll.Run) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (month, year, run_date, status, processed_by, total_payout)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + runColumns

	created, err := scanRun(q.QueryRow(ctx, query,
		run.Month, run.Year, run.RunDate, run.Status, run.ProcessedBy, run.TotalPayout,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_run_period") {
			return payroll.Run{}, payroll.ErrRunAlreadyExists
		}
		return payroll.Run{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) UpdateRunResult(ctx context.Context, run payroll.Run) (payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET run_date = $2, processed_by = $3, total_payout = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + runColumns

	updated, err := scanRun(q.QueryRow(ctx, query,
		run.ID, run.RunDate, run.ProcessedBy, run.TotalPayout,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Run{}, payroll.ErrRunNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to update payroll run: %w", err)
	}

	return updated, nil
}

func (r *payrollRepository) FinalizeRun(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE payroll_runs SET status = $2, updated_at = NOW() WHERE id = $1 AND status = $3`,
		id, payroll.RunStatusFinalized, payroll.RunStatusDraft)
	if err != nil {
		return fmt.Errorf("failed to finalize payroll run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var status payroll.RunStatus
		err := q.QueryRow(ctx, `SELECT status FROM payroll_runs WHERE id = $1`, id).Scan(&status)
		if err == pgx.ErrNoRows {
			return payroll.ErrRunNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to finalize payroll run: %w", err)
		}
		return payroll.ErrRunFinalized
	}

	return nil
}

func (r *payrollRepository) ListRunsByYear(ctx context.Context, year int) ([]payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + runColumns + `
		FROM payroll_runs
		WHERE year = $1
		ORDER BY month
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, nil
}

// ========== ITEMS ==========

const itemColumns = `
	i.id, i.run_id, i.employee_id, i.component_id, i.amount, i.calculation_base,
	i.calculation_rate, i.remarks, i.created_at,
	e.employee_code, e.full_name, c.code, c.name
`

func scanItem(row pgx.Row) (payroll.Item, error) {
	var item payroll.Item
	err := row.Scan(
		&item.ID, &item.RunID, &item.EmployeeID, &item.ComponentID, &item.Amount,
		&item.CalculationBase, &item.CalculationRate, &item.Remarks, &item.CreatedAt,
		&item.EmployeeCode, &item.EmployeeName, &item.ComponentCode, &item.ComponentName,
	)
	return item, err
}

func (r *payrollRepository) CreateItems(ctx context.Context, items []payroll.Item) error {
	if len(items) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	valueParts := make([]string, 0, len(items))
	args := make([]interface{}, 0, len(items)*7)
	argIdx := 1
	for _, item := range items {
		valueParts = append(valueParts, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			argIdx, argIdx+1, argIdx+2, argIdx+3, argIdx+4, argIdx+5, argIdx+6))
		args = append(args,
			item.RunID, item.EmployeeID, item.ComponentID, item.Amount,
			item.CalculationBase, item.CalculationRate, item.Remarks)
		argIdx += 7
	}

	query := fmt.Sprintf(`
		INSERT INTO payroll_items (
			run_id, employee_id, component_id, amount, calculation_base, calculation_rate, remarks
		) VALUES %s
	`, strings.Join(valueParts, ", "))

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create payroll items: %w", err)
	}

	return nil
}

func (r *payrollRepository) DeleteItemsByRun(ctx context.Context, runID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_items WHERE run_id = $1`, runID); err != nil {
		return fmt.Errorf("failed to delete payroll items: %w", err)
	}

	return nil
}

func (r *payrollRepository) ListItemsByRun(ctx context.Context, runID string) ([]payroll.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + itemColumns + `
		FROM payroll_items i
		JOIN employees e ON i.employee_id = e.id
		JOIN salary_components c ON i.component_id = c.id
		WHERE i.run_id = $1
		ORDER BY e.employee_code, c.type, c.code
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll items: %w", err)
	}
	defer rows.Close()

	var items []payroll.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *payrollRepository) ListItemsByRunAndEmployee(ctx context.Context, runID, employeeID string) ([]payroll.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + itemColumns + `
		FROM payroll_items i
		JOIN employees e ON i.employee_id = e.id
		JOIN salary_components c ON i.component_id = c.id
		WHERE i.run_id = $1 AND i.employee_id = $2
		ORDER BY c.type, c.code
	`

	rows, err := q.Query(ctx, query, runID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll items for employee: %w", err)
	}
	defer rows.Close()

	var items []payroll.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *payrollRepository) CountItemsByRun(ctx context.Context, runID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_items WHERE run_id = $1`, runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count payroll items: %w", err)
	}

	return count, nil
}
