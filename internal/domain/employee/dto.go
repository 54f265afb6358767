package employee

import (
	"github.com/meridianhr/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	IdentityNo   string  `json:"identity_no"`
	EPFNo        *string `json:"epf_no,omitempty"`
	SOCSONo      *string `json:"socso_no,omitempty"`
	TaxNo        *string `json:"tax_no,omitempty"`
	JoinDate     string  `json:"join_date"`
	Status       string  `json:"status"`
	DepartmentID *string `json:"department_id,omitempty"`
	GradeID      *string `json:"grade_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must match EMPnnn format"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidIdentityNo(r.IdentityNo) {
		errs = append(errs, validator.ValidationError{Field: "identity_no", Message: "must be a 12-digit identity number"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !IsValidStatus(EmploymentStatus(r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be ACTIVE, PROBATION or RESIGNED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	FullName     *string `json:"full_name,omitempty"`
	IdentityNo   *string `json:"identity_no,omitempty"`
	EPFNo        *string `json:"epf_no,omitempty"`
	SOCSONo      *string `json:"socso_no,omitempty"`
	TaxNo        *string `json:"tax_no,omitempty"`
	ResignDate   *string `json:"resign_date,omitempty"`
	Status       *string `json:"status,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	GradeID      *string `json:"grade_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be empty"})
	}
	if r.IdentityNo != nil && !validator.IsValidIdentityNo(*r.IdentityNo) {
		errs = append(errs, validator.ValidationError{Field: "identity_no", Message: "must be a 12-digit identity number"})
	}
	if r.ResignDate != nil {
		if _, ok := validator.IsValidDate(*r.ResignDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "resign_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.Status != nil && !IsValidStatus(EmploymentStatus(*r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be ACTIVE, PROBATION or RESIGNED"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeFilter narrows ListEmployees by employment status. Leaving Statuses
// empty is an explicit "everyone" policy, not an accident.
type EmployeeFilter struct {
	Statuses []EmploymentStatus
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeCode   string  `json:"employee_code"`
	FullName       string  `json:"full_name"`
	IdentityNo     string  `json:"identity_no"`
	EPFNo          *string `json:"epf_no,omitempty"`
	SOCSONo        *string `json:"socso_no,omitempty"`
	TaxNo          *string `json:"tax_no,omitempty"`
	JoinDate       string  `json:"join_date"`
	ResignDate     *string `json:"resign_date,omitempty"`
	Status         string  `json:"status"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	GradeID        *string `json:"grade_id,omitempty"`
	GradeName      *string `json:"grade_name,omitempty"`
}
