package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunStatus enum
type RunStatus string

const (
	RunStatusDraft     RunStatus = "DRAFT"
	RunStatusFinalized RunStatus = "FINALIZED"
)

// Run - one payroll execution for a (month, year) period. At most one run
// exists per period; the run stays DRAFT after generation and only an
// explicit finalize moves it to FINALIZED, which is terminal.
type Run struct {
	ID          string
	Month       int
	Year        int
	RunDate     time.Time
	Status      RunStatus
	ProcessedBy *string
	TotalPayout decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Item - one line per (run, employee, component) emitted by a generation
// pass. Items are replaced wholesale on re-generation, never updated.
type Item struct {
	ID              string
	RunID           string
	EmployeeID      string
	ComponentID     string
	Amount          decimal.Decimal
	CalculationBase decimal.Decimal
	CalculationRate *decimal.Decimal
	Remarks         *string
	CreatedAt       time.Time

	// Joined fields
	EmployeeCode  *string
	EmployeeName  *string
	ComponentCode *string
	ComponentName *string
}

// PeriodEnd returns the last calendar day of (month, year), the reference
// date for effective-structure resolution.
func PeriodEnd(month, year int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, -1)
}
