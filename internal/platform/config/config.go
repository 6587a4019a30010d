package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Rate source selectors recognized in RATE_SOURCE.
const (
	RateSourceDB        = "db"
	RateSourceRemote    = "remote"
	RateSourceComposite = "composite"
)

// ConversionConfig holds the knobs of the conversion engine.
type ConversionConfig struct {
	// TargetAllowList is the set of currencies conversions may target.
	TargetAllowList []string
	// PivotPriority is the ordered list of alternate pivot currencies tried
	// after the USD pivot fails.
	PivotPriority []string
}

// RateFeedConfig holds the remote rate feed settings.
type RateFeedConfig struct {
	BaseURL      string
	CacheTTL     time.Duration
	FetchTimeout time.Duration
}

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	RateLimit    string
	RateSource   string

	Conversion ConversionConfig
	RateFeed   RateFeedConfig
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("RATE_SOURCE", RateSourceComposite)
	viper.SetDefault("TARGET_CURRENCIES", "USD,EUR,ILS")
	viper.SetDefault("PIVOT_CURRENCIES", "EUR,GBP,JPY,CNY")
	viper.SetDefault("RATE_FEED_URL", "https://api.exchangerate-api.com/v4/latest")
	viper.SetDefault("RATE_CACHE_TTL", "300s")
	viper.SetDefault("RATE_FETCH_TIMEOUT", "10s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.RateSource = strings.ToLower(viper.GetString("RATE_SOURCE"))
	switch cfg.RateSource {
	case RateSourceDB, RateSourceRemote, RateSourceComposite:
	default:
		slog.Warn("Invalid value for RATE_SOURCE, using default",
			slog.String("value", cfg.RateSource), slog.String("default", RateSourceComposite))
		cfg.RateSource = RateSourceComposite
	}

	cfg.Conversion = ConversionConfig{
		TargetAllowList: parseCurrencyList(viper.GetString("TARGET_CURRENCIES")),
		PivotPriority:   parseCurrencyList(viper.GetString("PIVOT_CURRENCIES")),
	}

	cfg.RateFeed = RateFeedConfig{
		BaseURL:      strings.TrimRight(viper.GetString("RATE_FEED_URL"), "/"),
		CacheTTL:     parseDurationOr("RATE_CACHE_TTL", 300*time.Second),
		FetchTimeout: parseDurationOr("RATE_FETCH_TIMEOUT", 10*time.Second),
	}

	return cfg, nil
}

// parseCurrencyList splits a comma-separated list of codes, trimming and
// uppercasing each entry. Order is preserved.
func parseCurrencyList(raw string) []string {
	var codes []string
	for _, part := range strings.Split(raw, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			slog.Warn("Invalid duration value, using default",
				slog.String("key", key), slog.String("value", raw),
				slog.Duration("default", fallback))
		}
		return fallback
	}
	return d
}
