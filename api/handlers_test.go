package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/australhr/settlement-engine/api"
	"github.com/australhr/settlement-engine/indicators"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestRouter() http.Handler {
	h := api.NewHandler(indicators.Static{Value: decimal.NewFromInt(38500)})
	return api.NewRouter(h)
}

func postPreview(t *testing.T, router http.Handler, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/settlements/preview", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func dismissalBody() map[string]any {
	return map[string]any{
		"start_date":          "2023-01-15",
		"end_date":            "2024-01-15",
		"cause":               "employer_needs_dismissal",
		"contract_type":       "indefinite",
		"notice_given":        false,
		"base_salary":         600000,
		"taxable_income":      750000,
		"vacation_days_taken": 0,
	}
}

// =============================================================================
// SETTLEMENT PREVIEW
// =============================================================================

func TestPreviewSettlement_WorkedScenario(t *testing.T) {
	router := newTestRouter()

	rec := postPreview(t, router, dismissalBody())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var dto api.SettlementDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))

	assert.Equal(t, "employer_needs_dismissal", dto.LegalCause)
	assert.Equal(t, "161", dto.Article)
	assert.Equal(t, int64(300000), dto.Breakdown.ProportionalVacation)
	assert.Equal(t, int64(750000), dto.Breakdown.YearsOfService)
	assert.Equal(t, int64(750000), dto.Breakdown.NoticeSubstitute)
	assert.Equal(t, int64(1800000), dto.TotalPayable)
}

func TestPreviewSettlement_InlineUFOverridesProvider(t *testing.T) {
	router := newTestRouter()

	body := dismissalBody()
	body["taxable_income"] = 5000000
	body["uf_value"] = 30000 // cap becomes 2,700,000 instead of 3,465,000

	rec := postPreview(t, router, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var dto api.SettlementDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, int64(2700000), dto.Breakdown.YearsOfService)
	assert.Equal(t, int64(2700000), dto.Breakdown.NoticeSubstitute)
}

func TestPreviewSettlement_FeeForServiceIsAllZero(t *testing.T) {
	router := newTestRouter()

	body := dismissalBody()
	body["contract_type"] = "fee_for_service"

	rec := postPreview(t, router, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var dto api.SettlementDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "not_applicable", dto.LegalCause)
	assert.Equal(t, int64(0), dto.TotalPayable)
}

func TestPreviewSettlement_RejectsUnknownCause(t *testing.T) {
	router := newTestRouter()

	body := dismissalBody()
	body["cause"] = "161" // article numbers are not causes

	rec := postPreview(t, router, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewSettlement_RejectsInvertedDates(t *testing.T) {
	router := newTestRouter()

	body := dismissalBody()
	body["start_date"], body["end_date"] = body["end_date"], body["start_date"]

	rec := postPreview(t, router, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Error, "Invalid settlement input")
}

func TestPreviewSettlement_RejectsMalformedDate(t *testing.T) {
	router := newTestRouter()

	body := dismissalBody()
	body["end_date"] = "15/01/2024"

	rec := postPreview(t, router, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// INDICATORS
// =============================================================================

func TestGetUFRate_ForExplicitDate(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/indicators/uf?date=2024-01-15", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var dto api.UFRateDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "2024-01-15", dto.Date)
	assert.Equal(t, "38500", dto.Value)
}

func TestGetUFRate_RejectsBadDate(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/indicators/uf?date=yesterday", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// ENUMS
// =============================================================================

func TestListEnums(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/enums", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var dto api.EnumsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))

	assert.Len(t, dto.Causes, 5)
	assert.Len(t, dto.ContractTypes, 4)
	assert.Contains(t, dto.ContractTypes, "fee_for_service")
}
