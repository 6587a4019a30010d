package services

import (
	"context"

	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSource is the capability the conversion engine needs from any rate
// backend: one coherent snapshot of the rate table per load. The persisted
// store reads the table in a single query, the remote cache serves its
// TTL-bounded feed snapshot, and the composite source merges several.
type RateSource interface {
	// Snapshot returns an immutable rate table. Implementations perform at
	// most one external read per call.
	Snapshot(ctx context.Context) (*domain.RateTable, error)
}

// ConversionSvcFacade is the conversion API consumed by the route layer.
type ConversionSvcFacade interface {
	// Convert converts a single price. Business failures (unsupported
	// target, no path) come back inside the result, not as errors.
	Convert(ctx context.Context, req domain.ConversionRequest) domain.ConversionResult

	// GetRate is a direct lookup with no fallback strategy.
	// Returns apperrors.ErrNotFound when no direct rate exists.
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)

	// BatchConvert converts many prices against one rate-table snapshot.
	// Results preserve input order; one failure never aborts the rest.
	BatchConvert(ctx context.Context, reqs []domain.ConversionRequest) []domain.ConversionResult
}
