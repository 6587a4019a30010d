package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate mirrors one row of the currency_rates table.
// The (from_currency, to_currency) pair is the primary key.
type ExchangeRate struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
