package finance

import (
	"context"

	"github.com/shopspring/decimal"
)

type FinanceService interface {
	SaveSnapshot(ctx context.Context, req SaveSnapshotRequest) (SnapshotResponse, error)
	History(ctx context.Context, userEmail string) ([]SnapshotResponse, error)
	Latest(ctx context.Context, userEmail string) (SnapshotResponse, error)
	Summary(ctx context.Context, userEmail string) (SummaryResponse, error)
	YearlyZakat(ctx context.Context, userEmail string, year int) (decimal.Decimal, error)
	DeleteSnapshot(ctx context.Context, id string) error
}
