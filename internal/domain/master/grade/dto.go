package grade

import (
	"github.com/meridianhr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateGradeRequest struct {
	Name        string           `json:"name"`
	MinSalary   *decimal.Decimal `json:"min_salary,omitempty"`
	MaxSalary   *decimal.Decimal `json:"max_salary,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (r *CreateGradeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	if r.MinSalary != nil && r.MinSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "min_salary",
			Message: "must be non-negative",
		})
	}
	if r.MaxSalary != nil && r.MaxSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "max_salary",
			Message: "must be non-negative",
		})
	}
	if r.MinSalary != nil && r.MaxSalary != nil && r.MinSalary.GreaterThan(*r.MaxSalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "min_salary",
			Message: "must not exceed max_salary",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateGradeRequest struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	MinSalary   *decimal.Decimal `json:"min_salary,omitempty"`
	MaxSalary   *decimal.Decimal `json:"max_salary,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (r *UpdateGradeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.MinSalary != nil && r.MaxSalary != nil && r.MinSalary.GreaterThan(*r.MaxSalary) {
		errs = append(errs, validator.ValidationError{
			Field:   "min_salary",
			Message: "must not exceed max_salary",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GradeResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	MinSalary   *decimal.Decimal `json:"min_salary,omitempty"`
	MaxSalary   *decimal.Decimal `json:"max_salary,omitempty"`
	Description *string          `json:"description,omitempty"`
}
