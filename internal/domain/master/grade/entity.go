package grade

import (
	"time"

	"github.com/shopspring/decimal"
)

type Grade struct {
	ID          string
	Name        string
	MinSalary   *decimal.Decimal
	MaxSalary   *decimal.Decimal
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
