package employee

import (
	"time"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	IdentityNo   string
	EPFNo        *string
	SOCSONo      *string
	TaxNo        *string
	JoinDate     time.Time
	ResignDate   *time.Time
	Status       EmploymentStatus
	DepartmentID *string
	GradeID      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DepartmentName *string
	GradeName      *string
}

type EmploymentStatus string

const (
	StatusActive    EmploymentStatus = "ACTIVE"
	StatusProbation EmploymentStatus = "PROBATION"
	StatusResigned  EmploymentStatus = "RESIGNED"
)

// ValidStatuses lists every employment status the directory accepts.
var ValidStatuses = []EmploymentStatus{StatusActive, StatusProbation, StatusResigned}

func IsValidStatus(s EmploymentStatus) bool {
	switch s {
	case StatusActive, StatusProbation, StatusResigned:
		return true
	}
	return false
}
