/*
Package indicators supplies the UF (unidad de fomento) rate the settlement
engine needs.

PURPOSE:
  The engine takes the UF value as an explicit per-call parameter and never
  caches it. This package is the collaborator that produces that value: a
  fixed rate for tests and offline use, an HTTP client for a public indicator
  API, and a mirror that caches fetched rates locally so the remote API is
  hit at most once per day.

KEY CONCEPTS:
  - Provider: anything that can answer "what was the UF worth on this day"
  - Static: a fixed rate
  - Client: remote indicator API (client.go)
  - Mirror: Client behind a local rate store (mirror.go)

SEE ALSO:
  - settlement/types.go: CurrencyConfig, where the rate ends up
  - store/sqlite: the persistent rate store backing Mirror
*/
package indicators

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/australhr/settlement-engine/settlement"
)

// ErrRateUnavailable is returned when no UF value can be produced for the
// requested day.
var ErrRateUnavailable = errors.New("uf rate unavailable")

// Provider answers the UF value for a given day.
type Provider interface {
	UFValue(ctx context.Context, day settlement.Date) (decimal.Decimal, error)
}

// RateStore persists UF rates by day. Implemented by store/sqlite.
type RateStore interface {
	SaveRate(ctx context.Context, day settlement.Date, value decimal.Decimal) error
	GetRate(ctx context.Context, day settlement.Date) (decimal.Decimal, bool, error)
}

// Static is a Provider with a fixed rate, for tests and for running with a
// manually supplied value.
type Static struct {
	Value decimal.Decimal
}

func (s Static) UFValue(ctx context.Context, day settlement.Date) (decimal.Decimal, error) {
	return s.Value, nil
}
