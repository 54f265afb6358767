package department

import "time"

type Department struct {
	ID             string
	Name           string
	CostCenterCode *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
