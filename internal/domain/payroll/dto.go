package payroll

import (
	"github.com/meridianhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateRunRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GenerateRunRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a plausible payroll year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunResponse struct {
	ID          string          `json:"id"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	RunDate     string          `json:"run_date"`
	Status      string          `json:"status"`
	ProcessedBy *string         `json:"processed_by,omitempty"`
	TotalPayout decimal.Decimal `json:"total_payout"`
}

type ItemResponse struct {
	ID              string           `json:"id"`
	RunID           string           `json:"run_id"`
	EmployeeID      string           `json:"employee_id"`
	EmployeeCode    *string          `json:"employee_code,omitempty"`
	EmployeeName    *string          `json:"employee_name,omitempty"`
	ComponentID     string           `json:"component_id"`
	ComponentCode   *string          `json:"component_code,omitempty"`
	ComponentName   *string          `json:"component_name,omitempty"`
	Amount          decimal.Decimal  `json:"amount"`
	CalculationBase decimal.Decimal  `json:"calculation_base"`
	CalculationRate *decimal.Decimal `json:"calculation_rate,omitempty"`
	Remarks         *string          `json:"remarks,omitempty"`
}
