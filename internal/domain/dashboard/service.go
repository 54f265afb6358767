package dashboard

import (
	"context"

	"github.com/meridianhr/payroll-backend-go/internal/domain/audit"
)

// OverviewResponse bundles the three dashboard panels fetched in one call.
type OverviewResponse struct {
	YearlyTrend     []MonthlyTrend   `json:"yearly_trend"`
	DepartmentCosts []DepartmentCost `json:"department_costs"`
	RecentChanges   []audit.Log      `json:"recent_changes"`
}

type DashboardService interface {
	YearlyTrend(ctx context.Context, year int) ([]MonthlyTrend, error)
	DepartmentCosts(ctx context.Context, year int) ([]DepartmentCost, error)
	RecentChanges(ctx context.Context) ([]audit.Log, error)
	Overview(ctx context.Context, year int) (OverviewResponse, error)
}
