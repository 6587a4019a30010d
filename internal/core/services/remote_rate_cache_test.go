package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dealfeed/currency_backend/internal/apperrors"
	"github.com/dealfeed/currency_backend/internal/core/services"
	"github.com/dealfeed/currency_backend/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedBody = `{"base":"USD","rates":{"EUR":0.85,"ILS":3.65,"GBP":0.73,"BAD":-1,"ZERO":0}}`

func newFeedServer(fetches *atomic.Int32, fail *atomic.Bool) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feedBody)) //nolint:errcheck
	}))
}

func newTestCache(baseURL string, ttl time.Duration) *services.RemoteRateCache {
	return services.NewRemoteRateCache(config.RateFeedConfig{
		BaseURL:      baseURL,
		CacheTTL:     ttl,
		FetchTimeout: 2 * time.Second,
	}, testLogger())
}

func TestRemoteRateCache_FetchAndParse(t *testing.T) {
	var fetches atomic.Int32
	var fail atomic.Bool
	server := newFeedServer(&fetches, &fail)
	defer server.Close()

	cache := newTestCache(server.URL, 5*time.Minute)

	rates, stale, err := cache.GetRates(context.Background(), "usd")
	require.NoError(t, err)
	assert.False(t, stale)
	assert.True(t, rates["EUR"].Equal(decimal.RequireFromString("0.85")))
	assert.True(t, rates["ILS"].Equal(decimal.RequireFromString("3.65")))

	// Non-positive rates are dropped at parse time.
	_, ok := rates["BAD"]
	assert.False(t, ok)
	_, ok = rates["ZERO"]
	assert.False(t, ok)
}

func TestRemoteRateCache_ServesFromCacheWithinTTL(t *testing.T) {
	var fetches atomic.Int32
	var fail atomic.Bool
	server := newFeedServer(&fetches, &fail)
	defer server.Close()

	cache := newTestCache(server.URL, 5*time.Minute)
	ctx := context.Background()

	_, _, err := cache.GetRates(ctx, "USD")
	require.NoError(t, err)
	_, _, err = cache.GetRates(ctx, "USD")
	require.NoError(t, err)
	_, _, err = cache.GetRates(ctx, "USD")
	require.NoError(t, err)

	assert.Equal(t, int32(1), fetches.Load(), "expected a single upstream fetch within TTL")
}

func TestRemoteRateCache_RefetchAfterTTL(t *testing.T) {
	var fetches atomic.Int32
	var fail atomic.Bool
	server := newFeedServer(&fetches, &fail)
	defer server.Close()

	cache := newTestCache(server.URL, time.Nanosecond)
	ctx := context.Background()

	_, _, err := cache.GetRates(ctx, "USD")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, _, err = cache.GetRates(ctx, "USD")
	require.NoError(t, err)

	assert.Equal(t, int32(2), fetches.Load())
}

func TestRemoteRateCache_StaleServeOnFailure(t *testing.T) {
	var fetches atomic.Int32
	var fail atomic.Bool
	server := newFeedServer(&fetches, &fail)
	defer server.Close()

	cache := newTestCache(server.URL, time.Nanosecond)
	ctx := context.Background()

	rates, stale, err := cache.GetRates(ctx, "USD")
	require.NoError(t, err)
	require.False(t, stale)
	require.True(t, rates["EUR"].Equal(decimal.RequireFromString("0.85")))

	// Upstream starts failing; the expired snapshot is served marked stale.
	fail.Store(true)
	time.Sleep(time.Millisecond)

	rates, stale, err = cache.GetRates(ctx, "USD")
	require.NoError(t, err)
	assert.True(t, stale)
	assert.True(t, rates["EUR"].Equal(decimal.RequireFromString("0.85")))
}

func TestRemoteRateCache_ErrorWithoutSnapshot(t *testing.T) {
	var fetches atomic.Int32
	var fail atomic.Bool
	fail.Store(true)
	server := newFeedServer(&fetches, &fail)
	defer server.Close()

	cache := newTestCache(server.URL, 5*time.Minute)

	_, _, err := cache.GetRates(context.Background(), "USD")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateLookup)
}

func TestRemoteRateCache_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD"}`)) //nolint:errcheck
	}))
	defer server.Close()

	cache := newTestCache(server.URL, 5*time.Minute)

	_, _, err := cache.GetRates(context.Background(), "USD")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRateLookup)
}
