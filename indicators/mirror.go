package indicators

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/australhr/settlement-engine/settlement"
)

// Mirror is a Provider that checks a local rate store before asking the
// remote source, and records every fetched value. The UF changes once per
// day, so a mirrored day never goes stale.
type Mirror struct {
	Source Provider
	Store  RateStore
}

func NewMirror(source Provider, store RateStore) *Mirror {
	return &Mirror{Source: source, Store: store}
}

func (m *Mirror) UFValue(ctx context.Context, day settlement.Date) (decimal.Decimal, error) {
	value, ok, err := m.Store.GetRate(ctx, day)
	if err == nil && ok {
		return value, nil
	}
	if err != nil {
		// A broken mirror degrades to a plain pass-through.
		log.Printf("uf mirror read failed for %s: %v", day, err)
	}

	value, err = m.Source.UFValue(ctx, day)
	if err != nil {
		return decimal.Zero, err
	}

	if saveErr := m.Store.SaveRate(ctx, day, value); saveErr != nil {
		log.Printf("uf mirror write failed for %s: %v", day, saveErr)
	}
	return value, nil
}
