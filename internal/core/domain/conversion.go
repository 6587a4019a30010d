package domain

import (
	"github.com/shopspring/decimal"
)

// ErrorKind classifies a conversion failure. Business-logic failures are
// reported through ConversionResult, never as Go errors.
type ErrorKind string

const (
	// ErrorKindNone means the conversion succeeded.
	ErrorKindNone ErrorKind = ""
	// ErrorKindUnsupportedTarget means the target currency is outside the configured allow-list.
	ErrorKindUnsupportedTarget ErrorKind = "unsupported_target_currency"
	// ErrorKindNoConversionPath means no strategy resolved a rate for the pair.
	ErrorKindNoConversionPath ErrorKind = "no_conversion_path"
	// ErrorKindRateLookupFailed means the rate source itself failed (DB/network).
	ErrorKindRateLookupFailed ErrorKind = "rate_lookup_failed"
	// ErrorKindInvalidPrice means the input price was negative or not a number.
	ErrorKindInvalidPrice ErrorKind = "invalid_price"
)

// ConversionRequest is the input to single and batch conversion.
type ConversionRequest struct {
	Price         decimal.Decimal `json:"price"`
	FromCurrency  string          `json:"fromCurrency"`
	ToCurrency    string          `json:"toCurrency"`
	CorrelationID string          `json:"correlationID,omitempty"`
}

// ConversionResult is the outcome of a conversion attempt.
// ConvertedPrice is nil when Success is false.
type ConversionResult struct {
	Success        bool             `json:"success"`
	ConvertedPrice *decimal.Decimal `json:"convertedPrice,omitempty"`
	FromCurrency   string           `json:"fromCurrency"`
	ToCurrency     string           `json:"toCurrency"`
	Hops           []string         `json:"hops,omitempty"`
	Stale          bool             `json:"stale,omitempty"`
	ErrorKind      ErrorKind        `json:"errorKind,omitempty"`
	CorrelationID  string           `json:"correlationID,omitempty"`
}

// DetectionConfidence qualifies how strong a currency guess is, based on
// where it came from.
type DetectionConfidence string

const (
	ConfidenceHigh   DetectionConfidence = "high"
	ConfidenceMedium DetectionConfidence = "medium"
)

// DetectionMethod names the signal that produced a currency guess.
type DetectionMethod string

const (
	MethodExplicitField DetectionMethod = "explicit_field"
	MethodPriceText     DetectionMethod = "price_text"
	MethodCountryText   DetectionMethod = "country_text"
)

// DetectionResult is a currency guess with its provenance.
type DetectionResult struct {
	CurrencyCode string              `json:"currencyCode"`
	Confidence   DetectionConfidence `json:"confidence"`
	Method       DetectionMethod     `json:"method"`
}

// ProductRecord carries the product fields the detector inspects, in
// decreasing order of trust: explicit currency/price fields, then free
// text, then shop/country hints.
type ProductRecord struct {
	SalePrice             string `json:"salePrice,omitempty"`
	SalePriceCurrency     string `json:"salePriceCurrency,omitempty"`
	OriginalPrice         string `json:"originalPrice,omitempty"`
	OriginalPriceCurrency string `json:"originalPriceCurrency,omitempty"`
	Title                 string `json:"title,omitempty"`
	Description           string `json:"description,omitempty"`
	ShopName              string `json:"shopName,omitempty"`
	ShopCountry           string `json:"shopCountry,omitempty"`
	Country               string `json:"country,omitempty"`
}
