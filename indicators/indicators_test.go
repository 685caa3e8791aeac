package indicators_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/australhr/settlement-engine/indicators"
	"github.com/australhr/settlement-engine/settlement"
)

func day(year int, month time.Month, d int) settlement.Date {
	return settlement.NewDate(year, month, d)
}

// =============================================================================
// CLIENT
// =============================================================================

func TestClient_FetchesUFForDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// mindicador addresses days as dd-mm-yyyy
		assert.Equal(t, "/uf/15-01-2024", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"serie":[{"fecha":"2024-01-15T03:00:00.000Z","valor":38500.21}]}`))
	}))
	defer srv.Close()

	client := indicators.NewClient(srv.URL)
	value, err := client.UFValue(context.Background(), day(2024, time.January, 15))
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.RequireFromString("38500.21")), "got %s", value)
}

func TestClient_EmptySerieIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"serie":[]}`))
	}))
	defer srv.Close()

	client := indicators.NewClient(srv.URL)
	_, err := client.UFValue(context.Background(), day(2024, time.January, 15))
	assert.ErrorIs(t, err, indicators.ErrRateUnavailable)
}

func TestClient_NonOKStatusIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := indicators.NewClient(srv.URL)
	_, err := client.UFValue(context.Background(), day(2024, time.January, 15))
	assert.ErrorIs(t, err, indicators.ErrRateUnavailable)
}

// =============================================================================
// MIRROR
// =============================================================================

type memoryRateStore struct {
	rates map[string]decimal.Decimal
}

func newMemoryRateStore() *memoryRateStore {
	return &memoryRateStore{rates: make(map[string]decimal.Decimal)}
}

func (m *memoryRateStore) SaveRate(ctx context.Context, d settlement.Date, v decimal.Decimal) error {
	m.rates[d.String()] = v
	return nil
}

func (m *memoryRateStore) GetRate(ctx context.Context, d settlement.Date) (decimal.Decimal, bool, error) {
	v, ok := m.rates[d.String()]
	return v, ok, nil
}

type countingProvider struct {
	calls int32
	value decimal.Decimal
	err   error
}

func (p *countingProvider) UFValue(ctx context.Context, d settlement.Date) (decimal.Decimal, error) {
	atomic.AddInt32(&p.calls, 1)
	return p.value, p.err
}

func TestMirror_FetchesOncePerDay(t *testing.T) {
	// GIVEN: an empty mirror over a counting source
	// WHEN: the same day is requested three times
	// THEN: the source is consulted exactly once
	source := &countingProvider{value: decimal.NewFromInt(38500)}
	mirror := indicators.NewMirror(source, newMemoryRateStore())

	for i := 0; i < 3; i++ {
		value, err := mirror.UFValue(context.Background(), day(2024, time.March, 1))
		require.NoError(t, err)
		assert.True(t, value.Equal(decimal.NewFromInt(38500)))
	}
	assert.Equal(t, int32(1), source.calls)
}

func TestMirror_PropagatesSourceFailure(t *testing.T) {
	source := &countingProvider{err: errors.New("api down")}
	mirror := indicators.NewMirror(source, newMemoryRateStore())

	_, err := mirror.UFValue(context.Background(), day(2024, time.March, 1))
	assert.Error(t, err)
}

func TestStatic_AlwaysAnswers(t *testing.T) {
	p := indicators.Static{Value: decimal.NewFromInt(39000)}
	v, err := p.UFValue(context.Background(), day(2030, time.December, 25))
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.NewFromInt(39000)))
}
