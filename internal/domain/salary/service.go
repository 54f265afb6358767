package salary

import "context"

type SalaryService interface {
	// Components
	CreateComponent(ctx context.Context, req CreateComponentRequest) (ComponentResponse, error)
	GetComponent(ctx context.Context, id string) (ComponentResponse, error)
	ListComponents(ctx context.Context, activeOnly bool) ([]ComponentResponse, error)
	UpdateComponent(ctx context.Context, req UpdateComponentRequest) error

	// Structure assignments
	AssignComponent(ctx context.Context, actor string, req AssignComponentRequest) (AssignmentResponse, error)
	ListEmployeeStructures(ctx context.Context, employeeID string) ([]AssignmentResponse, error)
	EndAssignment(ctx context.Context, id string, endDate string) error
	DeactivateAssignment(ctx context.Context, id string) error
}
