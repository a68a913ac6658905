// Package amortization computes fixed-payment (French/annuity) loan
// schedules. It is pure: no state, no I/O, no persistence concerns.
package amortization

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ScheduledPayment is one period of a flat annuity schedule. Every period
// carries the identical fixed payment; the schedule does not decompose
// payments into principal and interest parts.
type ScheduledPayment struct {
	Sequence int
	DueDate  time.Time
	Amount   decimal.Decimal
}

// MonthlyPayment computes the fixed monthly installment for an annuity loan:
//
//	r = annualRatePercent / 12 / 100
//	payment = principal * r * (1+r)^n / ((1+r)^n - 1)
//
// The power term is evaluated in float64 and the result rounded to 2 decimal
// places, matching the stored-amount precision. A zero rate degenerates the
// formula, so it falls back to an even linear split of the principal.
func MonthlyPayment(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	monthlyRate := annualRatePercent.InexactFloat64() / 12.0 / 100.0
	if monthlyRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	}

	factor := math.Pow(1+monthlyRate, float64(termMonths))
	payment := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2)
}

// BuildSchedule produces termMonths scheduled payments, due at
// startDate + 1..termMonths months, each carrying the identical fixed
// payment from MonthlyPayment.
func BuildSchedule(startDate time.Time, principal, annualRatePercent decimal.Decimal, termMonths int) []ScheduledPayment {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	payment := MonthlyPayment(principal, annualRatePercent, termMonths)

	schedule := make([]ScheduledPayment, 0, termMonths)
	for period := 1; period <= termMonths; period++ {
		schedule = append(schedule, ScheduledPayment{
			Sequence: period,
			DueDate:  startDate.AddDate(0, period, 0),
			Amount:   payment,
		})
	}

	return schedule
}

// RecomputePayment derives a new uniform payment after a rate revision,
// spreading the remaining unpaid installments' nominal sum over their count
// at the new rate. Treating the face-value sum as principal ignores the
// interest already embedded in those installments, so the result is a
// financial approximation rather than a true re-amortization.
func RecomputePayment(remainingNominal, newAnnualRatePercent decimal.Decimal, remainingCount int) decimal.Decimal {
	return MonthlyPayment(remainingNominal, newAnnualRatePercent, remainingCount)
}
