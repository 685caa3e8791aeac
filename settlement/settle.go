/*
settle.go - Settlement orchestration and eligibility rules

PURPOSE:
  Validates caller input, applies the cause/contract eligibility rules, runs
  the three calculators, and assembles the itemized result.

ELIGIBILITY RULES:
  fee-for-service          -> nothing is owed; sentinel cause, all zeros
  any dependent contract   -> proportional vacation, always
  article 161 + indefinite -> years-of-service indemnity
                              + notice substitute unless notice was given
  every other cause        -> vacation only

  Fixed-term and project/task contracts never receive the indemnities even
  under article 161: that cause is reserved for indefinite contracts.

GUARANTEES:
  - Pure and side-effect free; any number of calls may run concurrently
  - TotalPayable is exactly the sum of the breakdown, no hidden adjustments
  - Invalid input (unknown enum, inverted dates, negative amounts) is
    rejected with a typed error before any computation
*/
package settlement

// Validate checks the caller contract: recognized enums, a non-inverted date
// range, and non-negative money/day inputs. The orchestrator refuses to
// compute on anything else.
func (in TerminationInput) Validate() error {
	if !in.Cause.Valid() {
		return &UnknownEnumError{Kind: "cause", Value: string(in.Cause)}
	}
	if !in.ContractType.Valid() {
		return &UnknownEnumError{Kind: "contract_type", Value: string(in.ContractType)}
	}
	if in.EndDate.Before(in.StartDate) {
		return &InvalidDateRangeError{Start: in.StartDate, End: in.EndDate}
	}
	if in.BaseSalary.IsNegative() {
		return &NegativeAmountError{Field: "base_salary"}
	}
	if in.TaxableIncome.IsNegative() {
		return &NegativeAmountError{Field: "taxable_income"}
	}
	if in.VacationDaysTaken.IsNegative() {
		return &NegativeAmountError{Field: "vacation_days_taken"}
	}
	return nil
}

// Settle computes the full termination settlement for one worker.
func Settle(in TerminationInput, cfg CurrencyConfig) (SettlementResult, error) {
	if err := in.Validate(); err != nil {
		return SettlementResult{}, err
	}

	// Fee-for-service relationships sit outside the labor code: no vacation,
	// no indemnities, and the supplied cause is not echoed.
	if in.ContractType == ContractFeeForService {
		return zeroResult(), nil
	}

	tenure := TenureBetween(in.StartDate, in.EndDate)

	breakdown := Breakdown{
		ProportionalVacation: ProportionalVacation(tenure, in.BaseSalary, in.VacationDaysTaken),
	}

	if in.Cause == CauseEmployerNeeds && in.ContractType == ContractIndefinite {
		breakdown.YearsOfService = YearsOfServiceIndemnity(tenure, in.TaxableIncome, cfg.UFValue)
		if !in.NoticeGiven {
			breakdown.NoticeSubstitute = NoticeSubstituteIndemnity(in.TaxableIncome, cfg.UFValue)
		}
	}

	return SettlementResult{
		LegalCause:   in.Cause,
		Breakdown:    breakdown,
		TotalPayable: breakdown.ProportionalVacation.Add(breakdown.YearsOfService).Add(breakdown.NoticeSubstitute),
	}, nil
}

func zeroResult() SettlementResult {
	return SettlementResult{LegalCause: CauseNotApplicable}
}
