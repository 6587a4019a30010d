package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a directed conversion rate: 1 unit of FromCurrencyCode
// equals Rate units of ToCurrencyCode. The (from, to) pair is unique and
// Rate is always positive.
type ExchangeRate struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
