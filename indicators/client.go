package indicators

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/australhr/settlement-engine/settlement"
)

// DefaultBaseURL points at the public Chilean economic-indicator API.
const DefaultBaseURL = "https://mindicador.cl/api"

// Client fetches UF rates from a mindicador-style JSON API.
//
// The API shape is GET {base}/uf/{dd-mm-yyyy} returning:
//
//	{"serie": [{"fecha": "...", "valor": 38500.21}]}
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a Client against the given base URL (DefaultBaseURL if
// empty) with a sane request timeout.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type serieResponse struct {
	Serie []struct {
		Fecha string  `json:"fecha"`
		Valor float64 `json:"valor"`
	} `json:"serie"`
}

// UFValue fetches the UF rate for the given day. An empty serie (weekend gaps,
// future dates) maps to ErrRateUnavailable.
func (c *Client) UFValue(ctx context.Context, day settlement.Date) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/uf/%s", c.BaseURL, day.Time.Format("02-01-2006"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetch uf rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("fetch uf rate: unexpected status %d: %w", resp.StatusCode, ErrRateUnavailable)
	}

	var body serieResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("decode uf response: %w", err)
	}
	if len(body.Serie) == 0 {
		return decimal.Zero, fmt.Errorf("no value for %s: %w", day, ErrRateUnavailable)
	}

	return decimal.NewFromFloat(body.Serie[0].Valor), nil
}
