/*
handlers.go - HTTP handlers for the settlement service

PURPOSE:
  Exposes the settlement engine over REST. Handles HTTP request/response,
  JSON serialization, UF rate resolution, and delegates the math to the
  settlement package.

ENDPOINTS:
  POST /api/settlements/preview  Compute a termination settlement
  GET  /api/indicators/uf        UF value (today or ?date=YYYY-MM-DD)
  GET  /api/enums                Recognized causes and contract types

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: validation errors (settlement.IsClientError), malformed input
  - 502: indicator source unavailable
  - 500: everything else

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/australhr/settlement-engine/indicators"
	"github.com/australhr/settlement-engine/settlement"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Rates indicators.Provider
}

// NewHandler creates a handler resolving UF rates through the given provider.
func NewHandler(rates indicators.Provider) *Handler {
	return &Handler{Rates: rates}
}

// PreviewSettlement computes a settlement without persisting anything.
// POST /api/settlements/preview
func (h *Handler) PreviewSettlement(w http.ResponseWriter, r *http.Request) {
	var req SettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	startDate, err := settlement.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start_date (use YYYY-MM-DD)", err)
		return
	}
	endDate, err := settlement.ParseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end_date (use YYYY-MM-DD)", err)
		return
	}
	cause, err := settlement.ParseCause(req.Cause)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown cause", err)
		return
	}
	contractType, err := settlement.ParseContractType(req.ContractType)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown contract_type", err)
		return
	}

	cfg, err := h.resolveUF(r, req, endDate)
	if err != nil {
		writeError(w, http.StatusBadGateway, "UF rate unavailable", err)
		return
	}

	input := settlement.TerminationInput{
		StartDate:         startDate,
		EndDate:           endDate,
		Cause:             cause,
		ContractType:      contractType,
		NoticeGiven:       req.NoticeGiven,
		BaseSalary:        decimal.NewFromFloat(req.BaseSalary),
		TaxableIncome:     decimal.NewFromFloat(req.TaxableIncome),
		VacationDaysTaken: decimal.NewFromFloat(req.VacationDaysTaken),
	}

	result, err := settlement.Settle(input, cfg)
	if err != nil {
		if settlement.IsClientError(err) {
			writeError(w, http.StatusBadRequest, "Invalid settlement input", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to compute settlement", err)
		return
	}

	writeJSON(w, http.StatusOK, toSettlementDTO(result, cfg))
}

// resolveUF picks the UF rate for a computation: the inline override when
// supplied, the provider keyed by termination date otherwise.
func (h *Handler) resolveUF(r *http.Request, req SettlementRequest, endDate settlement.Date) (settlement.CurrencyConfig, error) {
	if req.UFValue > 0 {
		return settlement.CurrencyConfig{UFValue: decimal.NewFromFloat(req.UFValue)}, nil
	}
	value, err := h.Rates.UFValue(r.Context(), endDate)
	if err != nil {
		return settlement.CurrencyConfig{}, err
	}
	return settlement.CurrencyConfig{UFValue: value}, nil
}

// GetUFRate returns the UF value for today or an explicit ?date=YYYY-MM-DD.
// GET /api/indicators/uf
func (h *Handler) GetUFRate(w http.ResponseWriter, r *http.Request) {
	day := settlement.Today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := settlement.ParseDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
			return
		}
		day = parsed
	}

	value, err := h.Rates.UFValue(r.Context(), day)
	if err != nil {
		if errors.Is(err, indicators.ErrRateUnavailable) {
			writeError(w, http.StatusNotFound, "No UF value for that date", err)
			return
		}
		writeError(w, http.StatusBadGateway, "UF rate unavailable", err)
		return
	}

	writeJSON(w, http.StatusOK, UFRateDTO{Date: day.String(), Value: value.String()})
}

// ListEnums returns the recognized causes and contract types.
// GET /api/enums
func (h *Handler) ListEnums(w http.ResponseWriter, r *http.Request) {
	causes := []settlement.Cause{
		settlement.CauseMutualAgreement,
		settlement.CauseResignation,
		settlement.CauseFixedTermExpiry,
		settlement.CauseMisconduct,
		settlement.CauseEmployerNeeds,
	}

	dto := EnumsDTO{
		ContractTypes: []string{
			string(settlement.ContractIndefinite),
			string(settlement.ContractFixedTerm),
			string(settlement.ContractProjectOrTask),
			string(settlement.ContractFeeForService),
		},
	}
	for _, c := range causes {
		dto.Causes = append(dto.Causes, CauseDTO{Value: string(c), Article: c.Article()})
	}

	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
