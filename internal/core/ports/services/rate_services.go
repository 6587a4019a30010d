package services

import (
	"context"

	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReaderSvc defines read operations for stored exchange rates
type RateReaderSvc interface {
	// GetRate retrieves a stored rate for a directed currency pair.
	GetRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// ListRates retrieves all stored rates.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// RateWriterSvc defines write operations for stored exchange rates
type RateWriterSvc interface {
	// SetRate upserts a rate for a directed currency pair.
	SetRate(ctx context.Context, fromCode, toCode string, rate decimal.Decimal) (*domain.ExchangeRate, error)

	// DeleteRate removes a stored rate, reporting whether one existed.
	DeleteRate(ctx context.Context, fromCode, toCode string) (bool, error)

	// InitializeDefaults seeds the default rate set when the store is empty.
	InitializeDefaults(ctx context.Context) (int, error)
}

// RateSvcFacade combines all rate management service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
