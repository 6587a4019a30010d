package services

import (
	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DetectorSvcFacade classifies currencies from free-form text and product
// records. Detection is pure: no match is reported as ok=false / nil, never
// as an error.
type DetectorSvcFacade interface {
	// DetectFromPrice scans price-style patterns in catalog priority order.
	DetectFromPrice(text string) (string, bool)

	// DetectFromCountry substring-matches the ordered country alias list.
	DetectFromCountry(text string) (string, bool)

	// DetectFromProduct tries explicit fields, then title/description text,
	// then shop/country hints, tagging the result with its provenance.
	DetectFromProduct(rec domain.ProductRecord) *domain.DetectionResult

	// ExtractPrice pulls the first numeric token out of text, ignoring
	// thousands separators.
	ExtractPrice(text string) (decimal.Decimal, bool)

	// Detect tries price-pattern detection, then country detection.
	Detect(text string) *domain.DetectionResult
}
