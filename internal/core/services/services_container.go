package services

import (
	"log/slog"

	"github.com/dealfeed/currency_backend/internal/core/domain"
	portsrepo "github.com/dealfeed/currency_backend/internal/core/ports/repositories"
	portssvc "github.com/dealfeed/currency_backend/internal/core/ports/services"
	"github.com/dealfeed/currency_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The catalog is immutable and shared by the detector, the rate
	// service and the currencies endpoint.
	container.Catalog = domain.NewCatalog()

	container.Detector = NewCurrencyDetector(container.Catalog)
	container.Rates = NewRateService(repos.RateRepo, container.Catalog)

	source := buildRateSource(cfg, repos, logger)
	container.Conversion = NewConversionEngine(source, cfg.Conversion, logger)

	return container
}

// buildRateSource assembles the snapshot provider the conversion engine
// reads from, per the configured RATE_SOURCE mode.
func buildRateSource(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) portssvc.RateSource {
	repoSource := NewRepositoryRateSource(repos.RateRepo)

	switch cfg.RateSource {
	case config.RateSourceDB:
		return repoSource
	case config.RateSourceRemote:
		cache := NewRemoteRateCache(cfg.RateFeed, logger)
		return NewRemoteRateSource(cache, "USD")
	default:
		// Composite: stored rates take precedence, the remote feed fills
		// the gaps.
		cache := NewRemoteRateCache(cfg.RateFeed, logger)
		remote := NewRemoteRateSource(cache, "USD")
		return NewCompositeRateSource(logger, repoSource, remote)
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.DetectorSvcFacade = (*CurrencyDetector)(nil)
	_ portssvc.RateSvcFacade     = (*RateService)(nil)
)
