package config_test

import (
	"testing"
	"time"

	"github.com/dealfeed/currency_backend/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, config.RateSourceComposite, cfg.RateSource)
	assert.Equal(t, []string{"USD", "EUR", "ILS"}, cfg.Conversion.TargetAllowList)
	assert.Equal(t, []string{"EUR", "GBP", "JPY", "CNY"}, cfg.Conversion.PivotPriority)
	assert.Equal(t, 300*time.Second, cfg.RateFeed.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.RateFeed.FetchTimeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RATE_SOURCE", "db")
	t.Setenv("TARGET_CURRENCIES", " usd, gbp ,")
	t.Setenv("RATE_CACHE_TTL", "90s")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.RateSourceDB, cfg.RateSource)
	assert.Equal(t, []string{"USD", "GBP"}, cfg.Conversion.TargetAllowList)
	assert.Equal(t, 90*time.Second, cfg.RateFeed.CacheTTL)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_SOURCE", "carrier-pigeon")
	t.Setenv("RATE_CACHE_TTL", "soon")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.RateSourceComposite, cfg.RateSource)
	assert.Equal(t, 300*time.Second, cfg.RateFeed.CacheTTL)
}
