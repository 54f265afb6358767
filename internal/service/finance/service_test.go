package finance

import (
	"testing"

	"github.com/meridianhr/payroll-backend-go/internal/domain/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBuildSummaryEmptyHistory(t *testing.T) {
	summary := buildSummary(nil)

	assert.True(t, summary.NetWorth.IsZero())
	assert.True(t, summary.AvgMonthlySavings.IsZero())
	assert.True(t, summary.TotalMoneySavings.IsZero())
	assert.True(t, summary.TotalGoldSavings.IsZero())
}

func TestBuildSummaryReadsLatestSnapshot(t *testing.T) {
	// Newest first, as the repository returns them.
	snapshots := []finance.Snapshot{
		{Year: 2026, Month: 2, Savings: dec("1200"), GoldSavings: dec("300"), Balance: dec("900")},
		{Year: 2026, Month: 1, Savings: dec("1000"), GoldSavings: dec("250"), Balance: dec("500")},
	}

	summary := buildSummary(snapshots)

	assert.True(t, summary.TotalMoneySavings.Equal(dec("1200")))
	assert.True(t, summary.TotalGoldSavings.Equal(dec("300")))
	assert.True(t, summary.NetWorth.Equal(dec("1500")))
	assert.True(t, summary.AvgMonthlySavings.Equal(dec("700")), "avg %s", summary.AvgMonthlySavings)
}

func TestBuildSummaryBalanceFallback(t *testing.T) {
	snapshots := []finance.Snapshot{
		{
			Year: 2026, Month: 1,
			TotalIncome:     dec("5000"),
			TotalDeductions: dec("800"),
			TotalExpenses:   dec("3000"),
			// Balance left zero; the fold derives it.
		},
	}

	summary := buildSummary(snapshots)

	assert.True(t, summary.AvgMonthlySavings.Equal(dec("1200")), "avg %s", summary.AvgMonthlySavings)
}

func TestBuildSummaryRoundsHalfUp(t *testing.T) {
	snapshots := []finance.Snapshot{
		{Year: 2026, Month: 3, Balance: dec("100")},
		{Year: 2026, Month: 2, Balance: dec("100")},
		{Year: 2026, Month: 1, Balance: dec("100.01")},
	}

	summary := buildSummary(snapshots)

	assert.True(t, summary.AvgMonthlySavings.Equal(dec("100.00")), "avg %s", summary.AvgMonthlySavings)
}
