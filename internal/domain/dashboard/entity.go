package dashboard

import "github.com/shopspring/decimal"

// MonthlyTrend - total payout for one month of the requested year; months
// without a payroll run carry a zero total.
type MonthlyTrend struct {
	Month       string          `json:"month"`
	TotalPayout decimal.Decimal `json:"total_payout"`
}

// DepartmentCost - payroll spend attributed to one department over a year,
// aggregated from payroll items joined through employees.
type DepartmentCost struct {
	DepartmentName string          `json:"department_name"`
	TotalCost      decimal.Decimal `json:"total_cost"`
}
