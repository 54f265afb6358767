package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComponentType enum
type ComponentType string

const (
	ComponentTypeEarning            ComponentType = "EARNING"
	ComponentTypeDeduction          ComponentType = "DEDUCTION"
	ComponentTypeStatutoryDeduction ComponentType = "STATUTORY_DEDUCTION"
)

func IsValidComponentType(t ComponentType) bool {
	switch t {
	case ComponentTypeEarning, ComponentTypeDeduction, ComponentTypeStatutoryDeduction:
		return true
	}
	return false
}

// Frequency enum. Informational only; the engine pays every effective
// assignment each run regardless of frequency.
type Frequency string

const (
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
	FrequencyOneTime Frequency = "ONE_TIME"
)

// Component - Master salary component definition
type Component struct {
	ID                string
	Code              string
	Name              string
	Type              ComponentType
	Frequency         Frequency
	IsTaxable         bool
	IsEPFApplicable   bool
	IsSOCSOApplicable bool
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// StructureAssignment - Effective-dated component assignment to an employee
type StructureAssignment struct {
	ID                 string
	EmployeeID         string
	ComponentID        string
	Amount             decimal.Decimal
	EffectiveStartDate time.Time
	EffectiveEndDate   *time.Time
	IsActive           bool
	CreatedBy          *string
	CreatedAt          time.Time

	// Joined fields
	ComponentCode *string
	ComponentName *string
	ComponentType *ComponentType
}

// EffectiveOn reports whether the assignment is in force on date. Both the
// start and end boundaries are inclusive; a nil end date means open-ended.
func (a StructureAssignment) EffectiveOn(date time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.EffectiveStartDate.After(date) {
		return false
	}
	if a.EffectiveEndDate != nil && a.EffectiveEndDate.Before(date) {
		return false
	}
	return true
}
