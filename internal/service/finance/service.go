package finance

import (
	"context"

	"github.com/meridianhr/payroll-backend-go/internal/domain/finance"
	"github.com/shopspring/decimal"
)

type FinanceServiceImpl struct {
	financeRepo finance.FinanceRepository
}

func NewFinanceService(financeRepo finance.FinanceRepository) finance.FinanceService {
	return &FinanceServiceImpl{financeRepo: financeRepo}
}

func (s *FinanceServiceImpl) SaveSnapshot(ctx context.Context, req finance.SaveSnapshotRequest) (finance.SnapshotResponse, error) {
	if err := req.Validate(); err != nil {
		return finance.SnapshotResponse{}, err
	}

	snapshot := finance.Snapshot{
		UserEmail: req.UserEmail,
		Year:      req.Year,
		Month:     req.Month,

		BasicSalary:       req.BasicSalary,
		FixedAllowance:    req.FixedAllowance,
		VariableAllowance: req.VariableAllowance,
		Bonus:             req.Bonus,

		EPF:          req.EPF,
		PCB:          req.PCB,
		ZakatMonthly: req.ZakatMonthly,

		Housing:     req.Housing,
		Transport:   req.Transport,
		Food:        req.Food,
		Investment:  req.Investment,
		Donation:    req.Donation,
		Savings:     req.Savings,
		GoldSavings: req.GoldSavings,
	}

	snapshot.TotalIncome = req.BasicSalary.Add(req.FixedAllowance).Add(req.VariableAllowance).Add(req.Bonus)
	snapshot.TotalDeductions = req.EPF.Add(req.PCB).Add(req.ZakatMonthly)
	snapshot.TotalExpenses = req.Housing.Add(req.Transport).Add(req.Food).
		Add(req.Investment).Add(req.Donation).Add(req.Savings).Add(req.GoldSavings)
	snapshot.NetSalary = snapshot.TotalIncome.Sub(snapshot.TotalDeductions)
	snapshot.Balance = snapshot.NetSalary.Sub(snapshot.TotalExpenses)

	saved, err := s.financeRepo.Upsert(ctx, snapshot)
	if err != nil {
		return finance.SnapshotResponse{}, err
	}

	return toSnapshotResponse(saved), nil
}

func (s *FinanceServiceImpl) History(ctx context.Context, userEmail string) ([]finance.SnapshotResponse, error) {
	snapshots, err := s.financeRepo.ListByUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	responses := make([]finance.SnapshotResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		responses = append(responses, toSnapshotResponse(snapshot))
	}
	return responses, nil
}

func (s *FinanceServiceImpl) Latest(ctx context.Context, userEmail string) (finance.SnapshotResponse, error) {
	snapshots, err := s.financeRepo.ListByUser(ctx, userEmail)
	if err != nil {
		return finance.SnapshotResponse{}, err
	}
	if len(snapshots) == 0 {
		return finance.SnapshotResponse{}, finance.ErrSnapshotNotFound
	}
	return toSnapshotResponse(snapshots[0]), nil
}

func (s *FinanceServiceImpl) Summary(ctx context.Context, userEmail string) (finance.SummaryResponse, error) {
	snapshots, err := s.financeRepo.ListByUser(ctx, userEmail)
	if err != nil {
		return finance.SummaryResponse{}, err
	}
	return buildSummary(snapshots), nil
}

// buildSummary folds the full snapshot history, newest first. Net worth and
// the savings totals read off the latest snapshot; the monthly average runs
// over every recorded month.
func buildSummary(snapshots []finance.Snapshot) finance.SummaryResponse {
	summary := finance.SummaryResponse{
		NetWorth:          decimal.Zero,
		AvgMonthlySavings: decimal.Zero,
		TotalMoneySavings: decimal.Zero,
		TotalGoldSavings:  decimal.Zero,
	}
	if len(snapshots) == 0 {
		return summary
	}

	latest := snapshots[0]
	summary.TotalMoneySavings = latest.Savings
	summary.TotalGoldSavings = latest.GoldSavings
	summary.NetWorth = latest.Savings.Add(latest.GoldSavings)

	total := decimal.Zero
	for _, snapshot := range snapshots {
		monthly := snapshot.Balance
		if monthly.IsZero() {
			monthly = snapshot.TotalIncome.Sub(snapshot.TotalDeductions).Sub(snapshot.TotalExpenses)
		}
		total = total.Add(monthly)
	}
	summary.AvgMonthlySavings = total.
		DivRound(decimal.NewFromInt(int64(len(snapshots))), 2)

	return summary
}

func (s *FinanceServiceImpl) YearlyZakat(ctx context.Context, userEmail string, year int) (decimal.Decimal, error) {
	snapshots, err := s.financeRepo.ListByUserAndYear(ctx, userEmail, year)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, snapshot := range snapshots {
		total = total.Add(snapshot.ZakatMonthly)
	}
	return total, nil
}

func (s *FinanceServiceImpl) DeleteSnapshot(ctx context.Context, id string) error {
	return s.financeRepo.Delete(ctx, id)
}

func toSnapshotResponse(snapshot finance.Snapshot) finance.SnapshotResponse {
	return finance.SnapshotResponse{
		ID:        snapshot.ID,
		UserEmail: snapshot.UserEmail,
		Year:      snapshot.Year,
		Month:     snapshot.Month,

		BasicSalary:       snapshot.BasicSalary,
		FixedAllowance:    snapshot.FixedAllowance,
		VariableAllowance: snapshot.VariableAllowance,
		Bonus:             snapshot.Bonus,
		TotalIncome:       snapshot.TotalIncome,

		EPF:             snapshot.EPF,
		PCB:             snapshot.PCB,
		ZakatMonthly:    snapshot.ZakatMonthly,
		TotalDeductions: snapshot.TotalDeductions,

		Housing:       snapshot.Housing,
		Transport:     snapshot.Transport,
		Food:          snapshot.Food,
		Investment:    snapshot.Investment,
		Donation:      snapshot.Donation,
		Savings:       snapshot.Savings,
		GoldSavings:   snapshot.GoldSavings,
		TotalExpenses: snapshot.TotalExpenses,

		NetSalary: snapshot.NetSalary,
		Balance:   snapshot.Balance,
	}
}
