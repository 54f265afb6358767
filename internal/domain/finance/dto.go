package finance

import (
	"github.com/meridianhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SaveSnapshotRequest struct {
	UserEmail string `json:"user_email"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`

	BasicSalary       decimal.Decimal `json:"basic_salary"`
	FixedAllowance    decimal.Decimal `json:"fixed_allowance"`
	VariableAllowance decimal.Decimal `json:"variable_allowance"`
	Bonus             decimal.Decimal `json:"bonus"`

	EPF          decimal.Decimal `json:"epf"`
	PCB          decimal.Decimal `json:"pcb"`
	ZakatMonthly decimal.Decimal `json:"zakat_monthly"`

	Housing     decimal.Decimal `json:"housing"`
	Transport   decimal.Decimal `json:"transport"`
	Food        decimal.Decimal `json:"food"`
	Investment  decimal.Decimal `json:"investment"`
	Donation    decimal.Decimal `json:"donation"`
	Savings     decimal.Decimal `json:"savings"`
	GoldSavings decimal.Decimal `json:"gold_savings"`
}

func (r *SaveSnapshotRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.UserEmail) {
		errs = append(errs, validator.ValidationError{Field: "user_email", Message: "must be a valid email address"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a plausible year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryResponse struct {
	NetWorth          decimal.Decimal `json:"net_worth"`
	AvgMonthlySavings decimal.Decimal `json:"avg_monthly_savings"`
	TotalMoneySavings decimal.Decimal `json:"total_money_savings"`
	TotalGoldSavings  decimal.Decimal `json:"total_gold_savings"`
}

type SnapshotResponse struct {
	ID        string `json:"id"`
	UserEmail string `json:"user_email"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`

	BasicSalary       decimal.Decimal `json:"basic_salary"`
	FixedAllowance    decimal.Decimal `json:"fixed_allowance"`
	VariableAllowance decimal.Decimal `json:"variable_allowance"`
	Bonus             decimal.Decimal `json:"bonus"`
	TotalIncome       decimal.Decimal `json:"total_income"`

	EPF             decimal.Decimal `json:"epf"`
	PCB             decimal.Decimal `json:"pcb"`
	ZakatMonthly    decimal.Decimal `json:"zakat_monthly"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`

	Housing       decimal.Decimal `json:"housing"`
	Transport     decimal.Decimal `json:"transport"`
	Food          decimal.Decimal `json:"food"`
	Investment    decimal.Decimal `json:"investment"`
	Donation      decimal.Decimal `json:"donation"`
	Savings       decimal.Decimal `json:"savings"`
	GoldSavings   decimal.Decimal `json:"gold_savings"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`

	NetSalary decimal.Decimal `json:"net_salary"`
	Balance   decimal.Decimal `json:"balance"`
}
