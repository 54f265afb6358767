package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/meridianhr/payroll-backend-go/internal/domain/dashboard"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) YearlyTrend(ctx context.Context, year int) ([]dashboard.MonthlyTrend, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT month, total_payout
		FROM payroll_runs
		WHERE year = $1
		ORDER BY month
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query yearly trend: %w", err)
	}
	defer rows.Close()

	totals := make(map[int]decimal.Decimal)
	for rows.Next() {
		var month int
		var total decimal.Decimal
		if err := rows.Scan(&month, &total); err != nil {
			return nil, fmt.Errorf("failed to scan yearly trend row: %w", err)
		}
		totals[month] = total
	}

	// Months without a run still appear with a zero total.
	trend := make([]dashboard.MonthlyTrend, 0, 12)
	for month := 1; month <= 12; month++ {
		total, ok := totals[month]
		if !ok {
			total = decimal.Zero
		}
		trend = append(trend, dashboard.MonthlyTrend{
			Month:       time.Month(month).String(),
			TotalPayout: total,
		})
	}

	return trend, nil
}

func (r *dashboardRepository) DepartmentCosts(ctx context.Context, year int) ([]dashboard.DepartmentCost, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(d.name, 'Unassigned'), COALESCE(SUM(
			CASE WHEN c.type = 'EARNING' THEN i.amount ELSE -i.amount END
		), 0)
		FROM payroll_items i
		JOIN payroll_runs r ON i.run_id = r.id
		JOIN employees e ON i.employee_id = e.id
		JOIN salary_components c ON i.component_id = c.id
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE r.year = $1
		GROUP BY d.name
		ORDER BY 2 DESC
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query department costs: %w", err)
	}
	defer rows.Close()

	var costs []dashboard.DepartmentCost
	for rows.Next() {
		var cost dashboard.DepartmentCost
		if err := rows.Scan(&cost.DepartmentName, &cost.TotalCost); err != nil {
			return nil, fmt.Errorf("failed to scan department cost: %w", err)
		}
		costs = append(costs, cost)
	}

	return costs, nil
}
