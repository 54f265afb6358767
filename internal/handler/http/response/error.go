package response

import (
	"errors"
	"net/http"

	"github.com/meridianhr/payroll-backend-go/internal/domain/auth"
	"github.com/meridianhr/payroll-backend-go/internal/domain/employee"
	"github.com/meridianhr/payroll-backend-go/internal/domain/finance"
	"github.com/meridianhr/payroll-backend-go/internal/domain/master/department"
	"github.com/meridianhr/payroll-backend-go/internal/domain/master/grade"
	"github.com/meridianhr/payroll-backend-go/internal/domain/payroll"
	"github.com/meridianhr/payroll-backend-go/internal/domain/salary"
	"github.com/meridianhr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrIdentityNoExists):
		Conflict(w, "Identity number already registered")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid employment status", nil)

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, grade.ErrGradeNotFound):
		NotFound(w, "Grade not found")
	case errors.Is(err, grade.ErrGradeNameExists):
		Conflict(w, "Grade name already exists")
	case errors.Is(err, grade.ErrInvalidSalaryBand):
		BadRequest(w, "Invalid salary band", nil)

	// Salary structure errors
	case errors.Is(err, salary.ErrComponentNotFound):
		NotFound(w, "Salary component not found")
	case errors.Is(err, salary.ErrComponentCodeExists):
		Conflict(w, "Salary component code already exists")
	case errors.Is(err, salary.ErrAssignmentNotFound):
		NotFound(w, "Salary structure assignment not found")

	// Payroll errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrRunAlreadyExists):
		Conflict(w, "Payroll run already exists for this period")
	case errors.Is(err, payroll.ErrRunFinalized):
		Conflict(w, "Payroll run for this period is already finalized")
	case errors.Is(err, payroll.ErrMalformedStructure):
		Conflict(w, "Salary structure is malformed; no items were written")
	case errors.Is(err, payroll.ErrItemNotFound):
		NotFound(w, "Payroll item not found")
	case errors.Is(err, payroll.ErrNoItemsForEmployee):
		NotFound(w, "No payroll items for this employee in the period")

	// Finance errors
	case errors.Is(err, finance.ErrSnapshotNotFound):
		NotFound(w, "Finance snapshot not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
