package payroll

import (
	"testing"
	"time"
)

func TestPeriodEnd(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
		want  time.Time
	}{
		{"january", 1, 2026, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"april has 30 days", 4, 2026, time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)},
		{"february common year", 2, 2026, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"february leap year", 2, 2028, time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"december", 12, 2026, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeriodEnd(tt.month, tt.year); !got.Equal(tt.want) {
				t.Errorf("PeriodEnd(%d, %d) = %v, want %v", tt.month, tt.year, got, tt.want)
			}
		})
	}
}
