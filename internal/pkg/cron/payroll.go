package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/meridianhr/payroll-backend-go/internal/domain/payroll"
)

// DraftRunReminder logs payroll runs for past periods that were generated
// but never finalized, so stale drafts do not sit unnoticed.
func DraftRunReminder(payrollRepo payroll.PayrollRepository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		now := time.Now()
		runs, err := payrollRepo.ListRunsByYear(ctx, now.Year())
		if err != nil {
			return err
		}

		for _, run := range runs {
			if run.Status != payroll.RunStatusDraft {
				continue
			}
			if run.Month >= int(now.Month()) {
				continue
			}
			slog.Warn("Payroll run for a past period is still in draft",
				"month", run.Month,
				"year", run.Year,
				"total_payout", run.TotalPayout.String(),
			)
		}
		return nil
	}
}
