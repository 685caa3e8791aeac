/*
vacation.go - Proportional vacation payout

PURPOSE:
  Cash out accrued-but-unused paid leave at termination. This is the one
  universal entitlement: it is owed on every termination of a dependent
  contract regardless of cause.

ACCRUAL RULE:
  15 legal vacation days per 12 worked months = 1.25 days per month. Leftover
  days convert to months at a fixed 30-day month; the payout values each
  remaining day at baseSalary/30.

ROUNDING:
  Half away from zero to whole pesos, applied here and nowhere later. Each of
  the three settlement components rounds independently; moving rounding to
  the total would change results.
*/
package settlement

import (
	"github.com/shopspring/decimal"
)

var (
	thirty          = decimal.NewFromInt(30)
	accrualPerMonth = decimal.RequireFromString("1.25")
)

// ProportionalVacation returns the monetary payout for vacation days accrued
// over the given tenure and not yet taken. Never negative: consumption beyond
// accrual floors at zero rather than generating a debt.
func ProportionalVacation(tenure Tenure, baseSalary, daysTaken decimal.Decimal) decimal.Decimal {
	// Months including the day fraction at the statutory 30-day month.
	totalMonths := decimal.NewFromInt(int64(tenure.Months)).
		Add(decimal.NewFromInt(int64(tenure.ExtraDays)).Div(thirty))

	accruedDays := totalMonths.Mul(accrualPerMonth)

	remaining := accruedDays.Sub(daysTaken)
	if remaining.IsNegative() {
		return decimal.Zero
	}

	dailyValue := baseSalary.Div(thirty)
	return remaining.Mul(dailyValue).Round(0)
}
