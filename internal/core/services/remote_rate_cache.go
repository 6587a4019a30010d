package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dealfeed/currency_backend/internal/apperrors"
	"github.com/dealfeed/currency_backend/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// rateCacheEntry is one immutable snapshot of the remote feed for a base
// currency. Refreshes replace the whole entry; nothing ever mutates the
// rates map after construction, so concurrent readers can use it without
// further locking.
type rateCacheEntry struct {
	rates     map[string]decimal.Decimal
	fetchedAt time.Time
}

// RemoteRateCache is a TTL-bounded in-memory cache over the live rate
// feed, keyed by base currency. Refresh is synchronous on miss; a fetch
// failure degrades to the previous (stale) snapshot when one exists.
type RemoteRateCache struct {
	baseURL    string
	ttl        time.Duration
	httpClient *http.Client
	logger     *slog.Logger

	mu      sync.RWMutex
	entries map[string]*rateCacheEntry
}

// NewRemoteRateCache creates a cache against the configured rate feed.
func NewRemoteRateCache(cfg config.RateFeedConfig, logger *slog.Logger) *RemoteRateCache {
	return &RemoteRateCache{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		ttl:     cfg.CacheTTL,
		httpClient: &http.Client{
			Timeout: cfg.FetchTimeout,
		},
		logger:  logger,
		entries: make(map[string]*rateCacheEntry),
	}
}

// GetRates returns the feed snapshot for the base currency. The boolean
// reports staleness: true means the TTL has lapsed and a refresh failed,
// so the previous snapshot is being served. With no previous snapshot the
// fetch failure is returned instead.
func (c *RemoteRateCache) GetRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, bool, error) {
	base := strings.ToUpper(strings.TrimSpace(baseCurrency))

	c.mu.RLock()
	entry := c.entries[base]
	c.mu.RUnlock()

	if entry != nil && time.Since(entry.fetchedAt) < c.ttl {
		return entry.rates, false, nil
	}

	rates, err := c.fetch(ctx, base)
	if err != nil {
		if entry != nil {
			c.logger.Warn("serving stale exchange rates after fetch failure",
				slog.String("base", base),
				slog.Duration("age", time.Since(entry.fetchedAt)),
				slog.String("error", err.Error()),
			)
			return entry.rates, true, nil
		}
		return nil, false, err
	}

	fresh := &rateCacheEntry{rates: rates, fetchedAt: time.Now()}
	c.mu.Lock()
	c.entries[base] = fresh
	c.mu.Unlock()

	c.logger.Info("refreshed exchange rates from feed",
		slog.String("base", base),
		slog.Int("count", len(rates)),
	)
	return rates, false, nil
}

// fetch performs one feed request: GET {baseURL}/{base}. Only the "rates"
// object of the response is consumed.
func (c *RemoteRateCache) fetch(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate feed request: %w", err)
	}
	req.Header.Set("User-Agent", "dealfeed-currency-backend/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrRemoteFetchTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRateLookup, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: rate feed returned status %d: %s", apperrors.ErrRateLookup, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read rate feed response: %v", apperrors.ErrRateLookup, err)
	}

	ratesJSON := gjson.GetBytes(body, "rates")
	if !ratesJSON.Exists() || !ratesJSON.IsObject() {
		return nil, fmt.Errorf("%w: rate feed response has no rates object", apperrors.ErrRateLookup)
	}

	rates := make(map[string]decimal.Decimal)
	ratesJSON.ForEach(func(key, value gjson.Result) bool {
		rate := decimal.NewFromFloat(value.Float())
		if rate.GreaterThan(decimal.Zero) {
			rates[strings.ToUpper(key.String())] = rate
		}
		return true
	})

	return rates, nil
}

func isTimeout(err error) bool {
	type timeout interface{ Timeout() bool }
	for e := err; e != nil; {
		if t, ok := e.(timeout); ok && t.Timeout() {
			return true
		}
		unwrapper, ok := e.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		e = unwrapper.Unwrap()
	}
	return false
}
