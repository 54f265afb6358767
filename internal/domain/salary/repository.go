package salary

import (
	"context"
	"time"
)

type SalaryRepository interface {
	// Components
	CreateComponent(ctx context.Context, component Component) (Component, error)
	GetComponentByID(ctx context.Context, id string) (Component, error)
	GetComponentByCode(ctx context.Context, code string) (Component, error)
	ListComponents(ctx context.Context, activeOnly bool) ([]Component, error)
	UpdateComponent(ctx context.Context, req UpdateComponentRequest) error

	// Structure assignments
	CreateAssignment(ctx context.Context, assignment StructureAssignment) (StructureAssignment, error)
	GetAssignmentByID(ctx context.Context, id string) (StructureAssignment, error)
	ListAssignmentsByEmployee(ctx context.Context, employeeID string) ([]StructureAssignment, error)
	// ListEffectiveByEmployee returns the assignments in force for employeeID
	// on date: active, started on or before date, and either open-ended or
	// ending on or after date. Storage order; empty slice when none match.
	ListEffectiveByEmployee(ctx context.Context, employeeID string, date time.Time) ([]StructureAssignment, error)
	EndAssignment(ctx context.Context, id string, endDate time.Time) error
	DeactivateAssignment(ctx context.Context, id string) error
}
