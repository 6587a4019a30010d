package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dealfeed/currency_backend/internal/apperrors"
	"github.com/dealfeed/currency_backend/internal/core/domain"
	portsrepo "github.com/dealfeed/currency_backend/internal/core/ports/repositories"
	portssvc "github.com/dealfeed/currency_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// RepositoryRateSource builds rate-table snapshots from the persisted
// store. Each snapshot is a single repository read.
type RepositoryRateSource struct {
	repo portsrepo.RateReader
}

// NewRepositoryRateSource creates a snapshot source over the rate repository.
func NewRepositoryRateSource(repo portsrepo.RateReader) *RepositoryRateSource {
	return &RepositoryRateSource{repo: repo}
}

// Snapshot loads every stored rate in one query.
func (s *RepositoryRateSource) Snapshot(ctx context.Context) (*domain.RateTable, error) {
	rates, err := s.repo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRateLookup, err)
	}

	table := domain.NewRateTable()
	for _, r := range rates {
		table.Set(r.FromCurrencyCode, r.ToCurrencyCode, r.Rate)
	}
	return table, nil
}

// RemoteRateSource builds rate-table snapshots from the remote feed cache.
// The feed is keyed by a single base currency; the table carries base→X
// and the inverted X→base pairs, and the engine's pivot strategies bridge
// everything else.
type RemoteRateSource struct {
	cache        *RemoteRateCache
	baseCurrency string
}

// NewRemoteRateSource creates a snapshot source over the remote cache.
func NewRemoteRateSource(cache *RemoteRateCache, baseCurrency string) *RemoteRateSource {
	return &RemoteRateSource{cache: cache, baseCurrency: baseCurrency}
}

// Snapshot fetches (or reuses) the cached feed snapshot for the base
// currency. Staleness is carried through on the table.
func (s *RemoteRateSource) Snapshot(ctx context.Context) (*domain.RateTable, error) {
	rates, stale, err := s.cache.GetRates(ctx, s.baseCurrency)
	if err != nil {
		return nil, err
	}

	one := decimal.NewFromInt(1)
	table := domain.NewRateTable()
	table.Stale = stale
	for code, rate := range rates {
		table.Set(s.baseCurrency, code, rate)
		table.Set(code, s.baseCurrency, one.Div(rate))
	}
	return table, nil
}

// CompositeRateSource merges snapshots from several sources. Earlier
// sources take precedence per pair; the composite fails only when every
// source fails.
type CompositeRateSource struct {
	sources []portssvc.RateSource
	logger  *slog.Logger
}

// NewCompositeRateSource creates a source merging the given sources in order.
func NewCompositeRateSource(logger *slog.Logger, sources ...portssvc.RateSource) *CompositeRateSource {
	return &CompositeRateSource{sources: sources, logger: logger}
}

// Snapshot merges the member snapshots, skipping failing sources.
func (s *CompositeRateSource) Snapshot(ctx context.Context) (*domain.RateTable, error) {
	table := domain.NewRateTable()
	loaded := 0
	var lastErr error

	for _, source := range s.sources {
		part, err := source.Snapshot(ctx)
		if err != nil {
			s.logger.Warn("rate source failed, trying next",
				slog.String("source", fmt.Sprintf("%T", source)),
				slog.String("error", err.Error()),
			)
			lastErr = err
			continue
		}
		table.Merge(part)
		loaded++
	}

	if loaded == 0 {
		if lastErr == nil {
			lastErr = fmt.Errorf("%w: no rate sources configured", apperrors.ErrRateLookup)
		}
		return nil, lastErr
	}
	return table, nil
}

var (
	_ portssvc.RateSource = (*RepositoryRateSource)(nil)
	_ portssvc.RateSource = (*RemoteRateSource)(nil)
	_ portssvc.RateSource = (*CompositeRateSource)(nil)
)
