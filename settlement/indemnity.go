/*
indemnity.go - Severance indemnities (years of service, notice substitute)

PURPOSE:
  The two indemnities owed when an employer ends an indefinite contract for
  company needs (article 161):

  Years of service:
    One capped monthly income per year served. A leftover fraction of six or
    more whole months counts as a full year; service beyond eleven years is
    not indemnified.

  Notice substitute:
    One capped monthly income, owed only when the employer skipped the 30-day
    advance notice.

THE 90-UF CAP:
  Both indemnities use the same statutory base: taxable income capped at 90
  times the UF rate in force. The rate is injected per computation; a zero
  rate legitimately zeroes the base.

SEE ALSO:
  - settle.go: eligibility gating; these functions do no gating themselves
*/
package settlement

import (
	"github.com/shopspring/decimal"
)

var ninety = decimal.NewFromInt(90)

// maxIndemnifiedYears is the statutory ceiling on indemnified service.
const maxIndemnifiedYears = 11

// cappedMonthlyBase returns taxable income limited to 90 UF.
func cappedMonthlyBase(taxableIncome, ufValue decimal.Decimal) decimal.Decimal {
	capAmount := ninety.Mul(ufValue)
	if taxableIncome.GreaterThan(capAmount) {
		return capAmount
	}
	return taxableIncome
}

// YearsOfServiceIndemnity returns the severance owed for the given tenure:
// the capped monthly base times the (half-year-rounded, 11-capped) years of
// service, rounded to whole pesos.
func YearsOfServiceIndemnity(tenure Tenure, taxableIncome, ufValue decimal.Decimal) decimal.Decimal {
	years := tenure.FullYears()
	if years > maxIndemnifiedYears {
		years = maxIndemnifiedYears
	}
	if years == 0 {
		return decimal.Zero
	}

	base := cappedMonthlyBase(taxableIncome, ufValue)
	return base.Mul(decimal.NewFromInt(int64(years))).Round(0)
}

// NoticeSubstituteIndemnity returns one month's capped pay in lieu of the
// 30-day advance notice, rounded to whole pesos.
func NoticeSubstituteIndemnity(taxableIncome, ufValue decimal.Decimal) decimal.Decimal {
	return cappedMonthlyBase(taxableIncome, ufValue).Round(0)
}
