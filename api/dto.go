/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the settlement domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers (and by the settlement boundary itself),
  not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - settlement/types.go: the domain shapes these mirror
*/
package api

import (
	"github.com/australhr/settlement-engine/settlement"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// SettlementRequest is the request to compute a termination settlement.
// Monetary amounts are whole pesos; vacation days may be fractional.
type SettlementRequest struct {
	StartDate         string  `json:"start_date"` // YYYY-MM-DD
	EndDate           string  `json:"end_date"`   // YYYY-MM-DD
	Cause             string  `json:"cause"`
	ContractType      string  `json:"contract_type"`
	NoticeGiven       bool    `json:"notice_given"`
	BaseSalary        float64 `json:"base_salary"`
	TaxableIncome     float64 `json:"taxable_income"`
	VacationDaysTaken float64 `json:"vacation_days_taken"`

	// UFValue overrides the indicator provider when positive. Zero or absent
	// means "resolve through the provider for the end date".
	UFValue float64 `json:"uf_value,omitempty"`
}

// SettlementDTO is the itemized settlement returned to clients.
type SettlementDTO struct {
	LegalCause   string       `json:"legal_cause"`
	Article      string       `json:"article,omitempty"`
	Breakdown    BreakdownDTO `json:"breakdown"`
	TotalPayable int64        `json:"total_payable"`
	UFValue      string       `json:"uf_value"`
}

// BreakdownDTO itemizes the three settlement components in whole pesos.
type BreakdownDTO struct {
	ProportionalVacation int64 `json:"proportional_vacation_pay"`
	YearsOfService       int64 `json:"years_of_service_indemnity"`
	NoticeSubstitute     int64 `json:"notice_substitute_indemnity"`
}

// UFRateDTO reports a UF value for a day.
type UFRateDTO struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// EnumsDTO lists the recognized causes and contract types, for populating
// termination forms.
type EnumsDTO struct {
	Causes        []CauseDTO `json:"causes"`
	ContractTypes []string   `json:"contract_types"`
}

type CauseDTO struct {
	Value   string `json:"value"`
	Article string `json:"article"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toSettlementDTO(result settlement.SettlementResult, cfg settlement.CurrencyConfig) SettlementDTO {
	return SettlementDTO{
		LegalCause: string(result.LegalCause),
		Article:    result.LegalCause.Article(),
		Breakdown: BreakdownDTO{
			ProportionalVacation: result.Breakdown.ProportionalVacation.IntPart(),
			YearsOfService:       result.Breakdown.YearsOfService.IntPart(),
			NoticeSubstitute:     result.Breakdown.NoticeSubstitute.IntPart(),
		},
		TotalPayable: result.TotalPayable.IntPart(),
		UFValue:      cfg.UFValue.String(),
	}
}
