package domain_test

import (
	"testing"

	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTable_SetAndGet(t *testing.T) {
	table := domain.NewRateTable()
	table.Set("usd", "eur", decimal.RequireFromString("0.85"))

	rate, ok := table.Get("USD", "EUR")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.85")))

	_, ok = table.Get("EUR", "USD")
	assert.False(t, ok, "inverse pairs are not implied")
}

func TestRateTable_IdentityPair(t *testing.T) {
	table := domain.NewRateTable()

	rate, ok := table.Get("USD", "usd")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestRateTable_RejectsNonPositive(t *testing.T) {
	table := domain.NewRateTable()
	table.Set("USD", "EUR", decimal.Zero)
	table.Set("USD", "ILS", decimal.RequireFromString("-1"))

	assert.Equal(t, 0, table.Len())
}

func TestRateTable_MergeExistingWins(t *testing.T) {
	base := domain.NewRateTable()
	base.Set("USD", "EUR", decimal.RequireFromString("0.90"))

	other := domain.NewRateTable()
	other.Set("USD", "EUR", decimal.RequireFromString("0.85"))
	other.Set("USD", "ILS", decimal.RequireFromString("3.65"))
	other.Stale = true

	base.Merge(other)

	rate, _ := base.Get("USD", "EUR")
	assert.True(t, rate.Equal(decimal.RequireFromString("0.90")), "existing entry must win")

	rate, ok := base.Get("USD", "ILS")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("3.65")))

	assert.True(t, base.Stale, "staleness is carried through a merge")
}
