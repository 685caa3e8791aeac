/*
errors.go - Error types for the settlement engine

PURPOSE:
  The engine is pure, so every error here is an input-contract violation
  caught at the boundary before any money math runs. Callers match with
  errors.Is / errors.As.

ERROR CATEGORIES:
  1. Enum errors - unrecognized cause or contract type
  2. Range errors - end date before start date
  3. Sign errors  - negative monetary or day inputs

SEE ALSO:
  - settle.go: Validate, where these are raised
  - api/handlers.go: maps these to HTTP 400
*/
package settlement

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDateRange is returned when the end date precedes the start
	// date. Negative tenure must never reach the monetary formulas.
	ErrInvalidDateRange = errors.New("invalid date range: end before start")

	// ErrUnknownCause is returned for a termination cause outside the
	// recognized statutory set.
	ErrUnknownCause = errors.New("unknown termination cause")

	// ErrUnknownContractType is returned for a contract type outside the
	// recognized set.
	ErrUnknownContractType = errors.New("unknown contract type")

	// ErrNegativeAmount is returned when a salary, income, or vacation-days
	// input is negative.
	ErrNegativeAmount = errors.New("negative monetary or day amount")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidDateRangeError reports an inverted employment interval.
type InvalidDateRangeError struct {
	Start Date
	End   Date
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range: end %s before start %s", e.End, e.Start)
}

func (e *InvalidDateRangeError) Unwrap() error {
	return ErrInvalidDateRange
}

// UnknownEnumError reports a value outside a closed enumeration.
type UnknownEnumError struct {
	Kind  string // "cause" or "contract_type"
	Value string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Value)
}

func (e *UnknownEnumError) Unwrap() error {
	if e.Kind == "contract_type" {
		return ErrUnknownContractType
	}
	return ErrUnknownCause
}

// NegativeAmountError reports which input field carried a negative value.
type NegativeAmountError struct {
	Field string
}

func (e *NegativeAmountError) Error() string {
	return fmt.Sprintf("negative amount in %s", e.Field)
}

func (e *NegativeAmountError) Unwrap() error {
	return ErrNegativeAmount
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
// Every engine error currently is; the helper exists so transport layers
// don't hardcode the list.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrUnknownCause) ||
		errors.Is(err, ErrUnknownContractType) ||
		errors.Is(err, ErrNegativeAmount)
}
