package dashboard

import (
	"context"

	"github.com/meridianhr/payroll-backend-go/internal/domain/audit"
	"github.com/meridianhr/payroll-backend-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

const recentChangesLimit = 10

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	auditRepo     audit.AuditRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, auditRepo audit.AuditRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		auditRepo:     auditRepo,
	}
}

func (s *DashboardServiceImpl) YearlyTrend(ctx context.Context, year int) ([]dashboard.MonthlyTrend, error) {
	return s.dashboardRepo.YearlyTrend(ctx, year)
}

func (s *DashboardServiceImpl) DepartmentCosts(ctx context.Context, year int) ([]dashboard.DepartmentCost, error) {
	return s.dashboardRepo.DepartmentCosts(ctx, year)
}

func (s *DashboardServiceImpl) RecentChanges(ctx context.Context) ([]audit.Log, error) {
	return s.auditRepo.ListRecent(ctx, recentChangesLimit)
}

// Overview fetches the three dashboard panels concurrently.
func (s *DashboardServiceImpl) Overview(ctx context.Context, year int) (dashboard.OverviewResponse, error) {
	var overview dashboard.OverviewResponse

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		trend, err := s.dashboardRepo.YearlyTrend(gCtx, year)
		if err != nil {
			return err
		}
		overview.YearlyTrend = trend
		return nil
	})
	g.Go(func() error {
		costs, err := s.dashboardRepo.DepartmentCosts(gCtx, year)
		if err != nil {
			return err
		}
		overview.DepartmentCosts = costs
		return nil
	})
	g.Go(func() error {
		logs, err := s.auditRepo.ListRecent(gCtx, recentChangesLimit)
		if err != nil {
			return err
		}
		overview.RecentChanges = logs
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.OverviewResponse{}, err
	}
	return overview, nil
}
