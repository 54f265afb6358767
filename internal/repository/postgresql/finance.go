package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/meridianhr/payroll-backend-go/internal/domain/finance"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/database"
)

type financeRepository struct {
	db *database.DB
}

func NewFinanceRepository(db *database.DB) finance.FinanceRepository {
	return &financeRepository{db: db}
}

const snapshotColumns = `
	id, user_email, year, month,
	basic_salary, fixed_allowance, variable_allowance, bonus, total_income,
	epf, pcb, zakat_monthly, total_deductions,
	housing, transport, food, investment, donation, savings, gold_savings, total_expenses,
	net_salary, balance, created_at
`

func scanSnapshot(row pgx.Row) (finance.Snapshot, error) {
	var s finance.Snapshot
	err := row.Scan(
		&s.ID, &s.UserEmail, &s.Year, &s.Month,
		&s.BasicSalary, &s.FixedAllowance, &s.VariableAllowance, &s.Bonus, &s.TotalIncome,
		&s.EPF, &s.PCB, &s.ZakatMonthly, &s.TotalDeductions,
		&s.Housing, &s.Transport, &s.Food, &s.Investment, &s.Donation, &s.Savings,
		&s.GoldSavings, &s.TotalExpenses,
		&s.NetSalary, &s.Balance, &s.CreatedAt,
	)
	return s, err
}

func (r *financeRepository) Upsert(ctx context.Context, snapshot finance.Snapshot) (finance.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO finance_snapshots (
			user_email, year, month,
			basic_salary, fixed_allowance, variable_allowance, bonus, total_income,
			epf, pcb, zakat_monthly, total_deductions,
			housing, transport, food, investment, donation, savings, gold_savings, total_expenses,
			net_salary, balance
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (user_email, year, month) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			fixed_allowance = EXCLUDED.fixed_allowance,
			variable_allowance = EXCLUDED.variable_allowance,
			bonus = EXCLUDED.bonus,
			total_income = EXCLUDED.total_income,
			epf = EXCLUDED.epf,
			pcb = EXCLUDED.pcb,
			zakat_monthly = EXCLUDED.zakat_monthly,
			total_deductions = EXCLUDED.total_deductions,
			housing = EXCLUDED.housing,
			transport = EXCLUDED.transport,
			food = EXCLUDED.food,
			investment = EXCLUDED.investment,
			donation = EXCLUDED.donation,
			savings = EXCLUDED.savings,
			gold_savings = EXCLUDED.gold_savings,
			total_expenses = EXCLUDED.total_expenses,
			net_salary = EXCLUDED.net_salary,
			balance = EXCLUDED.balance
		RETURNING ` + snapshotColumns

	saved, err := scanSnapshot(q.QueryRow(ctx, query,
		snapshot.UserEmail, snapshot.Year, snapshot.Month,
		snapshot.BasicSalary, snapshot.FixedAllowance, snapshot.VariableAllowance, snapshot.Bonus, snapshot.TotalIncome,
		snapshot.EPF, snapshot.PCB, snapshot.ZakatMonthly, snapshot.TotalDeductions,
		snapshot.Housing, snapshot.Transport, snapshot.Food, snapshot.Investment, snapshot.Donation,
		snapshot.Savings, snapshot.GoldSavings, snapshot.TotalExpenses,
		snapshot.NetSalary, snapshot.Balance,
	))
	if err != nil {
		return finance.Snapshot{}, fmt.Errorf("failed to save finance snapshot: %w", err)
	}

	return saved, nil
}

func (r *financeRepository) ListByUser(ctx context.Context, userEmail string) ([]finance.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + snapshotColumns + `
		FROM finance_snapshots
		WHERE user_email = $1
		ORDER BY year DESC, month DESC
	`

	rows, err := q.Query(ctx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list finance snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []finance.Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan finance snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, nil
}

func (r *financeRepository) ListByUserAndYear(ctx context.Context, userEmail string, year int) ([]finance.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + snapshotColumns + `
		FROM finance_snapshots
		WHERE user_email = $1 AND year = $2
		ORDER BY month
	`

	rows, err := q.Query(ctx, query, userEmail, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list finance snapshots by year: %w", err)
	}
	defer rows.Close()

	var snapshots []finance.Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan finance snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, nil
}

func (r *financeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM finance_snapshots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete finance snapshot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return finance.ErrSnapshotNotFound
	}

	return nil
}
