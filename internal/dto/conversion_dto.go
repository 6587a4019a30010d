package dto

import (
	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/dealfeed/currency_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// ConvertRequest defines the structure for a single conversion.
type ConvertRequest struct {
	Price        decimal.Decimal `json:"price" binding:"required"`
	FromCurrency string          `json:"fromCurrency" binding:"required,currencycode"`
	ToCurrency   string          `json:"toCurrency" binding:"required,currencycode"`
}

// BatchConvertRequest wraps many conversions resolved against one rate
// table snapshot.
type BatchConvertRequest struct {
	Items []ConvertRequest `json:"items" binding:"required,min=1,dive"`
}

// ConvertResponse defines the structure for a conversion outcome. Failed
// conversions come back with success=false and the error kind set; the
// HTTP status stays 200 so batch items can fail independently.
type ConvertResponse struct {
	Success        bool             `json:"success"`
	ConvertedPrice *decimal.Decimal `json:"convertedPrice,omitempty"`
	DisplayPrice   string           `json:"displayPrice,omitempty"`
	FromCurrency   string           `json:"fromCurrency"`
	ToCurrency     string           `json:"toCurrency"`
	Hops           []string         `json:"hops,omitempty"`
	Stale          bool             `json:"stale,omitempty"`
	ErrorKind      string           `json:"errorKind,omitempty"`
	CorrelationID  string           `json:"correlationId,omitempty"`
}

// BatchConvertResponse keeps results in input order.
type BatchConvertResponse struct {
	Results []ConvertResponse `json:"results"`
}

// ToConvertResponse converts a domain.ConversionResult to its DTO. The
// catalog supplies the currency symbol for the display price.
func ToConvertResponse(catalog *domain.Catalog, result domain.ConversionResult) ConvertResponse {
	resp := ConvertResponse{
		Success:        result.Success,
		ConvertedPrice: result.ConvertedPrice,
		FromCurrency:   result.FromCurrency,
		ToCurrency:     result.ToCurrency,
		Hops:           result.Hops,
		Stale:          result.Stale,
		ErrorKind:      string(result.ErrorKind),
		CorrelationID:  result.CorrelationID,
	}
	if result.Success && result.ConvertedPrice != nil {
		resp.DisplayPrice = utils.FormatWithSymbol(catalog, *result.ConvertedPrice, result.ToCurrency)
	}
	return resp
}

// ToBatchConvertResponse converts a slice of results preserving order.
func ToBatchConvertResponse(catalog *domain.Catalog, results []domain.ConversionResult) BatchConvertResponse {
	out := BatchConvertResponse{Results: make([]ConvertResponse, len(results))}
	for i, result := range results {
		out.Results[i] = ToConvertResponse(catalog, result)
	}
	return out
}
