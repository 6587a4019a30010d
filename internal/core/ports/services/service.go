package services

import (
	"github.com/dealfeed/currency_backend/internal/core/domain"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Conversion ConversionSvcFacade
	Detector   DetectorSvcFacade
	Rates      RateSvcFacade
	Catalog    *domain.Catalog
}
