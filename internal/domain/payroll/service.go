package payroll

import "context"

// PayrollService runs and reads the payroll ledger. Generation is
// serialized per (month, year) and transactional end to end.
type PayrollService interface {
	GenerateRun(ctx context.Context, processedBy string, req GenerateRunRequest) (RunResponse, error)
	FinalizeRun(ctx context.Context, month, year int) (RunResponse, error)
	GetRun(ctx context.Context, month, year int) (RunResponse, error)
	ListRuns(ctx context.Context, year int) ([]RunResponse, error)
	ListRunItems(ctx context.Context, month, year int) ([]ItemResponse, error)
	ListEmployeeRunItems(ctx context.Context, month, year int, employeeID string) ([]ItemResponse, error)
	GeneratePayslipPDF(ctx context.Context, month, year int, employeeID string) ([]byte, error)
}
