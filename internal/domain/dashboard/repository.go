package dashboard

import "context"

type DashboardRepository interface {
	YearlyTrend(ctx context.Context, year int) ([]MonthlyTrend, error)
	DepartmentCosts(ctx context.Context, year int) ([]DepartmentCost, error)
}
