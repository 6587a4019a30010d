package dto

import (
	"time"

	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetExchangeRateRequest defines the body for upserting a rate. The
// currency pair comes from the path.
type SetExchangeRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing rate details.
type ExchangeRateResponse struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// InitializeDefaultsResponse reports how many default pairs were seeded.
type InitializeDefaultsResponse struct {
	Inserted int `json:"inserted"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		FromCurrency: rate.FromCurrencyCode,
		ToCurrency:   rate.ToCurrencyCode,
		Rate:         rate.Rate,
		CreatedAt:    rate.CreatedAt,
		UpdatedAt:    rate.UpdatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
