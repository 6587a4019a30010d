package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dealfeed/currency_backend/internal/apperrors"
	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/dealfeed/currency_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock RateReader ---
type MockRateReader struct {
	mock.Mock
}

func (m *MockRateReader) GetRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateReader) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func TestRepositoryRateSource_Snapshot(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRateReader)
	repo.On("ListRates", ctx).Return([]domain.ExchangeRate{
		{FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: decimal.RequireFromString("0.85")},
		{FromCurrencyCode: "CNY", ToCurrencyCode: "USD", Rate: decimal.RequireFromString("0.14")},
	}, nil).Once()

	source := services.NewRepositoryRateSource(repo)
	table, err := source.Snapshot(ctx)

	require.NoError(t, err)
	rate, ok := table.Get("USD", "EUR")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.85")))
	assert.Equal(t, 2, table.Len())
	repo.AssertNumberOfCalls(t, "ListRates", 1)
}

func TestRepositoryRateSource_Failure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRateReader)
	repo.On("ListRates", ctx).Return(nil, fmt.Errorf("connection refused")).Once()

	source := services.NewRepositoryRateSource(repo)
	_, err := source.Snapshot(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateLookup)
}

// stubSource returns a fixed table or error.
type stubSource struct {
	table *domain.RateTable
	err   error
}

func (s *stubSource) Snapshot(ctx context.Context) (*domain.RateTable, error) {
	return s.table, s.err
}

func tableOf(pairs ...[3]string) *domain.RateTable {
	table := domain.NewRateTable()
	for _, p := range pairs {
		table.Set(p[0], p[1], decimal.RequireFromString(p[2]))
	}
	return table
}

func TestCompositeRateSource_EarlierWins(t *testing.T) {
	primary := &stubSource{table: tableOf([3]string{"USD", "EUR", "0.90"})}
	secondary := &stubSource{table: tableOf(
		[3]string{"USD", "EUR", "0.85"},
		[3]string{"USD", "ILS", "3.65"},
	)}

	source := services.NewCompositeRateSource(testLogger(), primary, secondary)
	table, err := source.Snapshot(context.Background())

	require.NoError(t, err)
	rate, ok := table.Get("USD", "EUR")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.90")), "primary source must win")

	rate, ok = table.Get("USD", "ILS")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("3.65")), "secondary fills gaps")
}

func TestCompositeRateSource_SkipsFailingSource(t *testing.T) {
	failing := &stubSource{err: fmt.Errorf("%w: db down", apperrors.ErrRateLookup)}
	working := &stubSource{table: tableOf([3]string{"USD", "EUR", "0.85"})}

	source := services.NewCompositeRateSource(testLogger(), failing, working)
	table, err := source.Snapshot(context.Background())

	require.NoError(t, err)
	_, ok := table.Get("USD", "EUR")
	assert.True(t, ok)
}

func TestCompositeRateSource_AllFail(t *testing.T) {
	failing := &stubSource{err: fmt.Errorf("%w: db down", apperrors.ErrRateLookup)}

	source := services.NewCompositeRateSource(testLogger(), failing, failing)
	_, err := source.Snapshot(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateLookup)
}

func TestCompositeRateSource_StalePropagates(t *testing.T) {
	staleTable := tableOf([3]string{"USD", "EUR", "0.85"})
	staleTable.Stale = true
	fresh := &stubSource{table: tableOf([3]string{"USD", "ILS", "3.65"})}
	stale := &stubSource{table: staleTable}

	source := services.NewCompositeRateSource(testLogger(), fresh, stale)
	table, err := source.Snapshot(context.Background())

	require.NoError(t, err)
	assert.True(t, table.Stale, "staleness of any merged part carries through")
}
