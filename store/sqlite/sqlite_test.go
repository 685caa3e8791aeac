package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/australhr/settlement-engine/settlement"
	"github.com/australhr/settlement-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveAndGetRate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	day := settlement.NewDate(2024, time.January, 15)
	value := decimal.RequireFromString("38500.21")

	require.NoError(t, store.SaveRate(ctx, day, value))

	got, ok, err := store.GetRate(ctx, day)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Equal(value), "decimal text round-trip must be exact, got %s", got)
}

func TestStore_GetRate_MissingDay(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.GetRate(context.Background(), settlement.NewDate(2024, time.January, 15))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SaveRate_OverwritesSameDay(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	day := settlement.NewDate(2024, time.January, 15)

	require.NoError(t, store.SaveRate(ctx, day, decimal.NewFromInt(38000)))
	require.NoError(t, store.SaveRate(ctx, day, decimal.NewFromInt(38500)))

	got, ok, err := store.GetRate(ctx, day)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Equal(decimal.NewFromInt(38500)))
}

func TestStore_LatestRate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, _, ok, err := store.LatestRate(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "empty mirror has no latest rate")

	require.NoError(t, store.SaveRate(ctx, settlement.NewDate(2024, time.January, 10), decimal.NewFromInt(38400)))
	require.NoError(t, store.SaveRate(ctx, settlement.NewDate(2024, time.January, 20), decimal.NewFromInt(38600)))
	require.NoError(t, store.SaveRate(ctx, settlement.NewDate(2024, time.January, 15), decimal.NewFromInt(38500)))

	day, value, ok, err := store.LatestRate(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2024-01-20", day.String())
	assert.True(t, value.Equal(decimal.NewFromInt(38600)))
}
