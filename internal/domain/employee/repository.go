package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	ExistsByCodeOrIdentityNo(ctx context.Context, employeeCode, identityNo string) (bool, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error
	// List returns employees whose status is in includeStatuses; an empty
	// slice means no filtering at all.
	List(ctx context.Context, includeStatuses []EmploymentStatus) ([]Employee, error)
}
