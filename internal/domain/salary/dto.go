package salary

import (
	"github.com/meridianhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateComponentRequest struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	Frequency         string `json:"frequency"`
	IsTaxable         *bool  `json:"is_taxable,omitempty"`
	IsEPFApplicable   *bool  `json:"is_epf_applicable,omitempty"`
	IsSOCSOApplicable *bool  `json:"is_socso_applicable,omitempty"`
}

func (r *CreateComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidComponentCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be 2-20 uppercase letters, digits or underscores"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !IsValidComponentType(ComponentType(r.Type)) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be EARNING, DEDUCTION or STATUTORY_DEDUCTION"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateComponentRequest struct {
	ID                string  `json:"-"`
	Name              *string `json:"name,omitempty"`
	IsTaxable         *bool   `json:"is_taxable,omitempty"`
	IsEPFApplicable   *bool   `json:"is_epf_applicable,omitempty"`
	IsSOCSOApplicable *bool   `json:"is_socso_applicable,omitempty"`
	IsActive          *bool   `json:"is_active,omitempty"`
}

type ComponentResponse struct {
	ID                string `json:"id"`
	Code              string `json:"code"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	Frequency         string `json:"frequency"`
	IsTaxable         bool   `json:"is_taxable"`
	IsEPFApplicable   bool   `json:"is_epf_applicable"`
	IsSOCSOApplicable bool   `json:"is_socso_applicable"`
	IsActive          bool   `json:"is_active"`
}

type AssignComponentRequest struct {
	EmployeeID         string          `json:"-"`
	ComponentID        string          `json:"component_id"`
	Amount             decimal.Decimal `json:"amount"`
	EffectiveStartDate string          `json:"effective_start_date"`
	EffectiveEndDate   *string         `json:"effective_end_date,omitempty"`
}

func (r *AssignComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ComponentID) {
		errs = append(errs, validator.ValidationError{Field: "component_id", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	start, startOK := validator.IsValidDate(r.EffectiveStartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "effective_start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EffectiveEndDate != nil {
		end, endOK := validator.IsValidDate(*r.EffectiveEndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{Field: "effective_end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else if startOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "effective_end_date", Message: "must not precede effective_start_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	ComponentID        string          `json:"component_id"`
	ComponentCode      string          `json:"component_code"`
	ComponentName      string          `json:"component_name"`
	ComponentType      string          `json:"component_type"`
	Amount             decimal.Decimal `json:"amount"`
	EffectiveStartDate string          `json:"effective_start_date"`
	EffectiveEndDate   *string         `json:"effective_end_date,omitempty"`
	IsActive           bool            `json:"is_active"`
}
