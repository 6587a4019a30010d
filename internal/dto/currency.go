package dto

import (
	"github.com/dealfeed/currency_backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for a supported currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol,omitempty"`
	Name         string `json:"name"`
}

// ToCurrencyResponse converts a domain.CurrencyDefinition to CurrencyResponse DTO
func ToCurrencyResponse(def *domain.CurrencyDefinition) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: def.Code,
		Symbol:       def.Symbol,
		Name:         def.Name,
	}
}

// ToListCurrencyResponse converts the catalog's currency list to DTOs
func ToListCurrencyResponse(defs []domain.CurrencyDefinition) []CurrencyResponse {
	res := make([]CurrencyResponse, len(defs))
	for i := range defs {
		res[i] = ToCurrencyResponse(&defs[i])
	}
	return res
}
