package payroll

import "context"

type PayrollRepository interface {
	// Runs
	GetRunByPeriod(ctx context.Context, month, year int) (Run, error)
	// GetRunByPeriodForUpdate locks the run row for the duration of the
	// caller's transaction, serializing concurrent generation for one period.
	GetRunByPeriodForUpdate(ctx context.Context, month, year int) (Run, error)
	CreateRun(ctx context.Context, run Run) (Run, error)
	UpdateRunResult(ctx context.Context, run Run) (Run, error)
	FinalizeRun(ctx context.Context, id string) error
	ListRunsByYear(ctx context.Context, year int) ([]Run, error)

	// Items
	CreateItems(ctx context.Context, items []Item) error
	DeleteItemsByRun(ctx context.Context, runID string) error
	ListItemsByRun(ctx context.Context, runID string) ([]Item, error)
	ListItemsByRunAndEmployee(ctx context.Context, runID, employeeID string) ([]Item, error)
	CountItemsByRun(ctx context.Context, runID string) (int64, error)
}
