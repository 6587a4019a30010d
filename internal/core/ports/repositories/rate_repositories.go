package repositories

import (
	"context"

	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReader defines read operations for persisted exchange rates
type RateReader interface {
	// GetRate retrieves the rate for a directed currency pair.
	// Returns apperrors.ErrNotFound when the pair is absent.
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error)

	// ListRates retrieves every stored rate, ordered by currency pair.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// RateWriter defines write operations for persisted exchange rates
type RateWriter interface {
	// SetRate upserts the rate for a directed currency pair.
	SetRate(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) (*domain.ExchangeRate, error)

	// DeleteRate removes a directed pair, reporting whether a row existed.
	DeleteRate(ctx context.Context, fromCurrency, toCurrency string) (bool, error)

	// InitializeDefaults seeds the table with the default rate set when it
	// is empty. Idempotent; returns the number of rates inserted.
	InitializeDefaults(ctx context.Context) (int, error)
}

// RateRepositoryFacade combines all rate repository interfaces.
// This is a facade for clients that need access to all operations.
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
