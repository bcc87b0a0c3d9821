package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openshelf/library-api/library/internal/model"
)

type FineAssessment struct {
	Amount   decimal.Decimal
	Reason   model.FineReason
	Note     string
	DaysLate int
}

// Assess computes the penalty for a return. Components accumulate into one
// amount; the reason keeps only the primary cause (lost wins, then overdue,
// then damaged). The second return value is false when no fine is due.
func (p FinePolicy) Assess(price decimal.Decimal, dueDate, returnDate time.Time, condition model.Condition) (FineAssessment, bool) {
	var (
		amount decimal.Decimal
		reason model.FineReason
		notes  []string
	)

	overdue := returnDate.After(dueDate)
	daysLate := 0
	if overdue {
		daysLate = int(math.Ceil(returnDate.Sub(dueDate).Hours() / 24))
		amount = amount.Add(p.RatePerDay.Mul(decimal.NewFromInt(int64(daysLate))))
		reason = model.ReasonOverdue
	}

	switch condition {
	case model.ConditionDamaged:
		amount = amount.Add(price.Mul(p.DamageFraction))
		if reason == "" {
			reason = model.ReasonDamaged
		}
		notes = append(notes, "Book damaged")
	case model.ConditionLost:
		amount = amount.Add(price)
		reason = model.ReasonLost
		notes = append(notes, "Book lost")
	}

	if overdue {
		notes = append(notes, fmt.Sprintf("Late return: %d days", daysLate))
	}

	if !amount.IsPositive() {
		return FineAssessment{}, false
	}
	return FineAssessment{
		Amount:   amount,
		Reason:   reason,
		Note:     strings.Join(notes, " "),
		DaysLate: daysLate,
	}, true
}
