package finance

import "context"

type FinanceRepository interface {
	// Upsert inserts the snapshot or, when one already exists for
	// (user email, year, month), replaces it while preserving CreatedAt.
	Upsert(ctx context.Context, snapshot Snapshot) (Snapshot, error)
	// ListByUser returns snapshots ordered by year desc, month desc.
	ListByUser(ctx context.Context, userEmail string) ([]Snapshot, error)
	ListByUserAndYear(ctx context.Context, userEmail string, year int) ([]Snapshot, error)
	Delete(ctx context.Context, id string) error
}
