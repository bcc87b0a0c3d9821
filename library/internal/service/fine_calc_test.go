package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/library-api/library/internal/model"
)

func TestFinePolicy_Assess(t *testing.T) {
	t.Parallel()
	policy := FinePolicy{
		RatePerDay:     decimal.NewFromInt(5000),
		DamageFraction: decimal.NewFromFloat(0.3),
		ExtendDays:     7,
	}
	due := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	var tests = []struct {
		name       string
		price      decimal.Decimal
		returnDate time.Time
		condition  model.Condition
		wantFine   bool
		wantAmount decimal.Decimal
		wantReason model.FineReason
		wantNote   string
		wantDays   int
	}{
		{
			name:       "on time good condition",
			price:      decimal.NewFromInt(100000),
			returnDate: due.Add(-time.Hour),
			condition:  model.ConditionGood,
			wantFine:   false,
		},
		{
			name:       "three days late",
			price:      decimal.NewFromInt(100000),
			returnDate: due.Add(72 * time.Hour),
			condition:  model.ConditionGood,
			wantFine:   true,
			wantAmount: decimal.NewFromInt(15000),
			wantReason: model.ReasonOverdue,
			wantNote:   "Late return: 3 days",
			wantDays:   3,
		},
		{
			name:       "partial day rounds up",
			price:      decimal.NewFromInt(100000),
			returnDate: due.Add(25 * time.Hour),
			condition:  model.ConditionGood,
			wantFine:   true,
			wantAmount: decimal.NewFromInt(10000),
			wantReason: model.ReasonOverdue,
			wantNote:   "Late return: 2 days",
			wantDays:   2,
		},
		{
			name:       "damaged on time",
			price:      decimal.NewFromInt(100000),
			returnDate: due.Add(-time.Hour),
			condition:  model.ConditionDamaged,
			wantFine:   true,
			wantAmount: decimal.NewFromInt(30000),
			wantReason: model.ReasonDamaged,
			wantNote:   "Book damaged",
		},
		{
			name:       "lost on time charges full price",
			price:      decimal.NewFromInt(200000),
			returnDate: due.Add(-time.Hour),
			condition:  model.ConditionLost,
			wantFine:   true,
			wantAmount: decimal.NewFromInt(200000),
			wantReason: model.ReasonLost,
			wantNote:   "Book lost",
		},
		{
			name:       "overdue and damaged sums but overdue is primary",
			price:      decimal.NewFromInt(100000),
			returnDate: due.Add(48 * time.Hour),
			condition:  model.ConditionDamaged,
			wantFine:   true,
			wantAmount: decimal.NewFromInt(40000),
			wantReason: model.ReasonOverdue,
			wantNote:   "Book damaged Late return: 2 days",
			wantDays:   2,
		},
		{
			name:       "overdue and lost sums but lost is primary",
			price:      decimal.NewFromInt(100000),
			returnDate: due.Add(48 * time.Hour),
			condition:  model.ConditionLost,
			wantFine:   true,
			wantAmount: decimal.NewFromInt(110000),
			wantReason: model.ReasonLost,
			wantNote:   "Book lost Late return: 2 days",
			wantDays:   2,
		},
		{
			name:       "free book lost yields no fine",
			price:      decimal.Zero,
			returnDate: due.Add(-time.Hour),
			condition:  model.ConditionLost,
			wantFine:   false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := policy.Assess(tt.price, due, tt.returnDate, tt.condition)
			require.Equal(t, tt.wantFine, ok)
			if !tt.wantFine {
				return
			}
			require.True(t, got.Amount.Equal(tt.wantAmount), "amount %s", got.Amount)
			require.Equal(t, tt.wantReason, got.Reason)
			require.Equal(t, tt.wantNote, got.Note)
			require.Equal(t, tt.wantDays, got.DaysLate)
		})
	}
}
