package services

import (
	"regexp"
	"strings"

	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// numberPattern matches the first numeric token in free text. Thousands
// separators are tolerated and stripped before parsing.
var numberPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`)

// CurrencyDetector classifies currencies from price text, country text and
// product records. It is pure: all methods are lookups over the static
// catalog, and "no match" is an answer, not an error.
type CurrencyDetector struct {
	catalog *domain.Catalog
}

// NewCurrencyDetector creates a detector over the given catalog.
func NewCurrencyDetector(catalog *domain.Catalog) *CurrencyDetector {
	return &CurrencyDetector{catalog: catalog}
}

// DetectFromPrice scans price-style patterns across all currencies in
// catalog priority order and returns the first match. Symbolic patterns
// (ones carrying a currency symbol or prefix) are tried for every currency
// before any code- or name-based pattern is consulted, so "S$12.50" is SGD
// even though a bare "$" would later match USD.
func (d *CurrencyDetector) DetectFromPrice(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	for _, symbolic := range []bool{true, false} {
		for _, def := range d.catalog.Currencies {
			for _, p := range def.Patterns {
				if p.Symbolic != symbolic {
					continue
				}
				if p.Expr.MatchString(text) {
					return def.Code, true
				}
			}
		}
	}
	return "", false
}

// DetectFromCountry matches country/nationality words as case-insensitive
// substrings, in alias list order. The first alias contained in the text
// wins; list order, not map iteration, makes overlaps deterministic.
func (d *CurrencyDetector) DetectFromCountry(text string) (string, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return "", false
	}

	for _, alias := range d.catalog.Aliases {
		if strings.Contains(text, alias.Alias) {
			return alias.Code, true
		}
	}
	return "", false
}

// DetectFromProduct inspects a product record in decreasing order of trust:
// explicit currency fields, then price fields, then title/description text,
// then shop/country hints.
func (d *CurrencyDetector) DetectFromProduct(rec domain.ProductRecord) *domain.DetectionResult {
	for _, code := range []string{rec.SalePriceCurrency, rec.OriginalPriceCurrency} {
		code = strings.ToUpper(strings.TrimSpace(code))
		if _, ok := d.catalog.Lookup(code); ok {
			return &domain.DetectionResult{
				CurrencyCode: code,
				Confidence:   domain.ConfidenceHigh,
				Method:       domain.MethodExplicitField,
			}
		}
	}

	for _, text := range []string{rec.SalePrice, rec.OriginalPrice} {
		if code, ok := d.DetectFromPrice(text); ok {
			return &domain.DetectionResult{
				CurrencyCode: code,
				Confidence:   domain.ConfidenceHigh,
				Method:       domain.MethodExplicitField,
			}
		}
	}

	for _, text := range []string{rec.Title, rec.Description} {
		if code, ok := d.DetectFromPrice(text); ok {
			return &domain.DetectionResult{
				CurrencyCode: code,
				Confidence:   domain.ConfidenceMedium,
				Method:       domain.MethodPriceText,
			}
		}
	}

	for _, text := range []string{rec.ShopName, rec.ShopCountry, rec.Country} {
		if code, ok := d.DetectFromCountry(text); ok {
			return &domain.DetectionResult{
				CurrencyCode: code,
				Confidence:   domain.ConfidenceMedium,
				Method:       domain.MethodCountryText,
			}
		}
	}

	return nil
}

// ExtractPrice returns the first numeric token in the text as a decimal.
// Thousands separators are ignored; no numeric token means no price.
func (d *CurrencyDetector) ExtractPrice(text string) (decimal.Decimal, bool) {
	match := numberPattern.FindString(text)
	if match == "" {
		return decimal.Decimal{}, false
	}

	price, err := decimal.NewFromString(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return price, true
}

// Detect tries price-pattern detection first, then country detection.
func (d *CurrencyDetector) Detect(text string) *domain.DetectionResult {
	if code, ok := d.DetectFromPrice(text); ok {
		return &domain.DetectionResult{
			CurrencyCode: code,
			Confidence:   domain.ConfidenceMedium,
			Method:       domain.MethodPriceText,
		}
	}
	if code, ok := d.DetectFromCountry(text); ok {
		return &domain.DetectionResult{
			CurrencyCode: code,
			Confidence:   domain.ConfidenceMedium,
			Method:       domain.MethodCountryText,
		}
	}
	return nil
}
