package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot - one self-reported monthly income/expense picture per
// (user email, year, month). Saving the same period again overwrites the
// previous snapshot in place.
type Snapshot struct {
	ID        string
	UserEmail string
	Year      int
	Month     int

	// Income
	BasicSalary       decimal.Decimal
	FixedAllowance    decimal.Decimal
	VariableAllowance decimal.Decimal
	Bonus             decimal.Decimal
	TotalIncome       decimal.Decimal

	// Deductions
	EPF             decimal.Decimal
	PCB             decimal.Decimal
	ZakatMonthly    decimal.Decimal
	TotalDeductions decimal.Decimal

	// Expenses
	Housing       decimal.Decimal
	Transport     decimal.Decimal
	Food          decimal.Decimal
	Investment    decimal.Decimal
	Donation      decimal.Decimal
	Savings       decimal.Decimal
	GoldSavings   decimal.Decimal
	TotalExpenses decimal.Decimal

	// Calculated
	NetSalary decimal.Decimal
	Balance   decimal.Decimal

	CreatedAt time.Time
}
