package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dealfeed/currency_backend/internal/apperrors"
	"github.com/dealfeed/currency_backend/internal/core/domain"
	portssvc "github.com/dealfeed/currency_backend/internal/core/ports/services"
	"github.com/dealfeed/currency_backend/internal/platform/config"
	"github.com/shopspring/decimal"
)

const pivotCurrency = "USD"

// ConversionEngine converts prices between currencies with a layered
// fallback strategy over one RateSource: direct rate, then a two-hop
// bridge through USD, then two-hop bridges through the configured
// alternate pivots. All lookups of one call share one table snapshot.
type ConversionEngine struct {
	source     portssvc.RateSource
	allowList  map[string]struct{}
	allowOrder []string
	pivots     []string
	logger     *slog.Logger
}

// NewConversionEngine creates an engine over the given rate source.
func NewConversionEngine(source portssvc.RateSource, cfg config.ConversionConfig, logger *slog.Logger) *ConversionEngine {
	allow := make(map[string]struct{}, len(cfg.TargetAllowList))
	for _, code := range cfg.TargetAllowList {
		allow[strings.ToUpper(code)] = struct{}{}
	}
	return &ConversionEngine{
		source:     source,
		allowList:  allow,
		allowOrder: cfg.TargetAllowList,
		pivots:     cfg.PivotPriority,
		logger:     logger,
	}
}

// Convert converts one price. Business failures come back inside the
// result; the only rounding applied is round-half-up at 2 decimals on the
// final amount, plus the per-hop rounding of the USD pivot amount.
func (e *ConversionEngine) Convert(ctx context.Context, req domain.ConversionRequest) domain.ConversionResult {
	result, done := e.validate(req)
	if done {
		return result
	}

	table, err := e.source.Snapshot(ctx)
	if err != nil {
		e.logger.Warn("rate snapshot unavailable",
			slog.String("from", result.FromCurrency),
			slog.String("to", result.ToCurrency),
			slog.String("error", err.Error()),
		)
		result.ErrorKind = domain.ErrorKindRateLookupFailed
		return result
	}

	return e.convertWithTable(table, req.Price, result)
}

// GetRate is a direct lookup with no fallback strategy.
func (e *ConversionEngine) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	table, err := e.source.Snapshot(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	rate, ok := table.Get(fromCurrency, toCurrency)
	if !ok {
		return decimal.Decimal{}, apperrors.ErrNotFound
	}
	return rate, nil
}

// BatchConvert converts many prices against a single table snapshot: one
// repository read or one cache fetch for the whole batch, whatever the
// batch size. Results keep input order and failures stay per-item.
func (e *ConversionEngine) BatchConvert(ctx context.Context, reqs []domain.ConversionRequest) []domain.ConversionResult {
	results := make([]domain.ConversionResult, 0, len(reqs))

	table, err := e.source.Snapshot(ctx)
	if err != nil {
		e.logger.Warn("rate snapshot unavailable for batch", slog.String("error", err.Error()))
	}

	for _, req := range reqs {
		result, done := e.validate(req)
		if done {
			results = append(results, result)
			continue
		}
		if table == nil {
			result.ErrorKind = domain.ErrorKindRateLookupFailed
			results = append(results, result)
			continue
		}
		results = append(results, e.convertWithTable(table, req.Price, result))
	}
	return results
}

// validate applies the checks that need no rate data: price sign, identity
// conversion, and the target allow-list. done=true means the result is
// final.
func (e *ConversionEngine) validate(req domain.ConversionRequest) (domain.ConversionResult, bool) {
	from := strings.ToUpper(strings.TrimSpace(req.FromCurrency))
	to := strings.ToUpper(strings.TrimSpace(req.ToCurrency))

	result := domain.ConversionResult{
		FromCurrency:  from,
		ToCurrency:    to,
		CorrelationID: req.CorrelationID,
	}

	if req.Price.IsNegative() {
		result.ErrorKind = domain.ErrorKindInvalidPrice
		return result, true
	}

	if from == to {
		price := req.Price
		result.Success = true
		result.ConvertedPrice = &price
		result.Hops = []string{from}
		return result, true
	}

	if _, ok := e.allowList[to]; !ok {
		result.ErrorKind = domain.ErrorKindUnsupportedTarget
		return result, true
	}

	return result, false
}

func (e *ConversionEngine) convertWithTable(table *domain.RateTable, price decimal.Decimal, result domain.ConversionResult) domain.ConversionResult {
	from, to := result.FromCurrency, result.ToCurrency

	// Strategy A: direct rate.
	if rate, ok := table.Get(from, to); ok {
		converted := roundHalfUp(price.Mul(rate))
		result.Success = true
		result.ConvertedPrice = &converted
		result.Hops = []string{from, to}
		result.Stale = table.Stale
		return result
	}

	// Strategy B: bridge through USD. The USD amount is rounded per hop to
	// keep the intermediate value a representable price.
	if usdAmount, ok := e.toPivot(table, price, from, pivotCurrency); ok {
		if converted, ok := e.fromPivot(table, usdAmount, to, pivotCurrency); ok {
			result.Success = true
			result.ConvertedPrice = &converted
			result.Hops = []string{from, pivotCurrency, to}
			result.Stale = table.Stale
			return result
		}
	}

	// Strategy C: alternate pivots in priority order. Only the final
	// amount is rounded.
	for _, pivot := range e.pivots {
		pivot = strings.ToUpper(pivot)
		if pivot == from || pivot == to || pivot == pivotCurrency {
			continue
		}
		hopIn, okIn := table.Get(from, pivot)
		hopOut, okOut := table.Get(pivot, to)
		if !okIn || !okOut {
			continue
		}
		converted := roundHalfUp(price.Mul(hopIn).Mul(hopOut))
		result.Success = true
		result.ConvertedPrice = &converted
		result.Hops = []string{from, pivot, to}
		result.Stale = table.Stale
		return result
	}

	e.logger.Warn("no conversion path found",
		slog.String("from", from),
		slog.String("to", to),
	)
	result.ErrorKind = domain.ErrorKindNoConversionPath
	return result
}

// toPivot converts price into the pivot currency, rounding the pivot
// amount. Identity when already in the pivot.
func (e *ConversionEngine) toPivot(table *domain.RateTable, price decimal.Decimal, from, pivot string) (decimal.Decimal, bool) {
	if from == pivot {
		return price, true
	}
	rate, ok := table.Get(from, pivot)
	if !ok {
		return decimal.Decimal{}, false
	}
	return roundHalfUp(price.Mul(rate)), true
}

// fromPivot converts a pivot amount into the target, rounding the final
// amount. Identity when the target is the pivot.
func (e *ConversionEngine) fromPivot(table *domain.RateTable, pivotAmount decimal.Decimal, to, pivot string) (decimal.Decimal, bool) {
	if to == pivot {
		return pivotAmount, true
	}
	rate, ok := table.Get(pivot, to)
	if !ok {
		return decimal.Decimal{}, false
	}
	return roundHalfUp(pivotAmount.Mul(rate)), true
}

// roundHalfUp rounds to 2 decimal places, half away from zero. Prices are
// non-negative, so this is round-half-up.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

var _ portssvc.ConversionSvcFacade = (*ConversionEngine)(nil)
