package salary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStructureAssignment_EffectiveOn(t *testing.T) {
	end := date(2026, 6, 30)

	cases := []struct {
		name       string
		assignment StructureAssignment
		on         time.Time
		want       bool
	}{
		{
			name: "inactive never effective",
			assignment: StructureAssignment{
				IsActive:           false,
				EffectiveStartDate: date(2026, 1, 1),
			},
			on:   date(2026, 3, 15),
			want: false,
		},
		{
			name: "day before start excluded",
			assignment: StructureAssignment{
				IsActive:           true,
				EffectiveStartDate: date(2026, 1, 15),
			},
			on:   date(2026, 1, 14),
			want: false,
		},
		{
			name: "start date inclusive",
			assignment: StructureAssignment{
				IsActive:           true,
				EffectiveStartDate: date(2026, 1, 15),
			},
			on:   date(2026, 1, 15),
			want: true,
		},
		{
			name: "open-ended stays effective",
			assignment: StructureAssignment{
				IsActive:           true,
				EffectiveStartDate: date(2020, 1, 1),
			},
			on:   date(2099, 12, 31),
			want: true,
		},
		{
			name: "end date inclusive",
			assignment: StructureAssignment{
				IsActive:           true,
				EffectiveStartDate: date(2026, 1, 1),
				EffectiveEndDate:   &end,
			},
			on:   date(2026, 6, 30),
			want: true,
		},
		{
			name: "day after end excluded",
			assignment: StructureAssignment{
				IsActive:           true,
				EffectiveStartDate: date(2026, 1, 1),
				EffectiveEndDate:   &end,
			},
			on:   date(2026, 7, 1),
			want: false,
		},
	}

	for _, c := range cases {
		c.assignment.Amount = decimal.NewFromInt(1000)
		got := c.assignment.EffectiveOn(c.on)
		if got != c.want {
			t.Errorf("%s: EffectiveOn(%s) = %v, want %v", c.name, c.on.Format("2006-01-02"), got, c.want)
		}
	}
}
