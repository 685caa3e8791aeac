/*
Package settlement computes termination settlements ("finiquitos") under the
Chilean labor code.

PURPOSE:
  Given the facts of an ended employment relationship (dates, cause, contract
  type, income) and the current UF rate, compute the legally mandated payout:
  proportional vacation pay, years-of-service indemnity, and notice-substitute
  indemnity, itemized and totalled.

KEY CONCEPTS IN THIS FILE (types.go):
  - Cause: The statutory article under which the contract ended
  - ContractType: Indefinite, fixed-term, project/task, or fee-for-service
  - TerminationInput: Immutable facts supplied by the caller
  - CurrencyConfig: The injected UF rate (never cached here)
  - SettlementResult: Itemized, totalled outcome

DESIGN PRINCIPLES:
  1. Purity: Every computation is a function of its inputs; no I/O, no state
  2. Precision: Uses decimal.Decimal to avoid floating-point drift on money
  3. Type Safety: Causes and contract types are closed enumerations with
     constructors; invalid values are rejected at the boundary, never matched
     by string prefix
  4. Totality: Settle rejects invalid input with a typed error and otherwise
     always produces a result

USAGE:
  input := settlement.TerminationInput{
      StartDate:    settlement.NewDate(2023, time.January, 15),
      EndDate:      settlement.NewDate(2024, time.January, 15),
      Cause:        settlement.CauseEmployerNeeds,
      ContractType: settlement.ContractIndefinite,
      BaseSalary:   decimal.NewFromInt(600000),
      TaxableIncome: decimal.NewFromInt(750000),
  }
  result, err := settlement.Settle(input, settlement.CurrencyConfig{
      UFValue: decimal.NewFromInt(38500),
  })

SEE ALSO:
  - tenure.go: Months/days elapsed between two dates
  - vacation.go: Proportional vacation payout
  - indemnity.go: Years-of-service and notice-substitute indemnities
  - settle.go: Eligibility rules and orchestration
*/
package settlement

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// TERMINATION CAUSE - Statutory article invoked
// =============================================================================

// Cause identifies the labor-code article under which the contract ends.
type Cause string

const (
	// CauseMutualAgreement is article 159-1: both parties agree to end.
	CauseMutualAgreement Cause = "mutual_agreement"
	// CauseResignation is article 159-2: the worker resigns.
	CauseResignation Cause = "voluntary_resignation"
	// CauseFixedTermExpiry is article 159-4: a fixed-term contract runs out.
	CauseFixedTermExpiry Cause = "fixed_term_expiry"
	// CauseMisconduct is article 160: dismissal for serious misconduct.
	CauseMisconduct Cause = "misconduct_dismissal"
	// CauseEmployerNeeds is article 161: dismissal for company needs. The only
	// cause that triggers severance indemnities.
	CauseEmployerNeeds Cause = "employer_needs_dismissal"

	// CauseNotApplicable is the sentinel echoed for fee-for-service contracts,
	// which have no statutory settlement.
	CauseNotApplicable Cause = "not_applicable"
)

// Article returns the labor-code article number for display purposes.
func (c Cause) Article() string {
	switch c {
	case CauseMutualAgreement:
		return "159-1"
	case CauseResignation:
		return "159-2"
	case CauseFixedTermExpiry:
		return "159-4"
	case CauseMisconduct:
		return "160"
	case CauseEmployerNeeds:
		return "161"
	default:
		return ""
	}
}

// Valid reports whether c is one of the recognized input causes.
// CauseNotApplicable is output-only and is not a valid input.
func (c Cause) Valid() bool {
	switch c {
	case CauseMutualAgreement, CauseResignation, CauseFixedTermExpiry,
		CauseMisconduct, CauseEmployerNeeds:
		return true
	default:
		return false
	}
}

// ParseCause converts an external string into a Cause, rejecting anything
// outside the closed set.
func ParseCause(s string) (Cause, error) {
	c := Cause(s)
	if !c.Valid() {
		return "", &UnknownEnumError{Kind: "cause", Value: s}
	}
	return c, nil
}

// =============================================================================
// CONTRACT TYPE
// =============================================================================

type ContractType string

const (
	ContractIndefinite    ContractType = "indefinite"
	ContractFixedTerm     ContractType = "fixed_term"
	ContractProjectOrTask ContractType = "project_or_task"
	// ContractFeeForService ("honorarios") is not a labor contract and carries
	// no statutory settlement at all.
	ContractFeeForService ContractType = "fee_for_service"
)

func (ct ContractType) Valid() bool {
	switch ct {
	case ContractIndefinite, ContractFixedTerm, ContractProjectOrTask, ContractFeeForService:
		return true
	default:
		return false
	}
}

func ParseContractType(s string) (ContractType, error) {
	ct := ContractType(s)
	if !ct.Valid() {
		return "", &UnknownEnumError{Kind: "contract_type", Value: s}
	}
	return ct, nil
}

// =============================================================================
// INPUT / CONFIG
// =============================================================================

// TerminationInput holds the caller-supplied facts for one computation.
// The engine never mutates it.
type TerminationInput struct {
	StartDate Date
	EndDate   Date

	Cause        Cause
	ContractType ContractType

	// NoticeGiven is true when the employer gave the 30-day advance notice,
	// which exempts it from the notice-substitute indemnity.
	NoticeGiven bool

	// BaseSalary is the contractual liquid salary, the per-day basis for the
	// vacation payout.
	BaseSalary decimal.Decimal

	// TaxableIncome is the income base subject to the 90-UF indemnity cap.
	// The caller computes it (base salary plus gratification); the engine
	// does not derive it.
	TaxableIncome decimal.Decimal

	// VacationDaysTaken is the number of days already consumed against the
	// accrued vacation balance. May be fractional.
	VacationDaysTaken decimal.Decimal
}

// CurrencyConfig carries the UF rate for a single computation. It is injected
// per call by the caller; the engine neither caches nor validates it. A zero
// rate is legitimate degenerate input: it zeroes the capped base.
type CurrencyConfig struct {
	UFValue decimal.Decimal
}

// =============================================================================
// RESULT
// =============================================================================

// Breakdown itemizes the three settlement components. Every field is a
// non-negative integer-valued decimal (whole pesos, rounded half away from
// zero at each independent computation point).
type Breakdown struct {
	ProportionalVacation decimal.Decimal
	YearsOfService       decimal.Decimal
	NoticeSubstitute     decimal.Decimal
}

// SettlementResult is the itemized, totalled outcome of one computation.
type SettlementResult struct {
	// LegalCause echoes the input cause, or CauseNotApplicable for
	// fee-for-service contracts.
	LegalCause Cause
	Breakdown  Breakdown
	// TotalPayable is exactly the sum of the three breakdown components.
	TotalPayable decimal.Decimal
}
