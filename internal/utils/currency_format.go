package utils

import (
	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithSymbol formats an amount with the catalog symbol for a currency.
// Example: 11.9 with EUR returns "€11.90". Codes without a catalog entry or
// symbol fall back to "11.90 XYZ".
func FormatWithSymbol(catalog *domain.Catalog, amount decimal.Decimal, currencyCode string) string {
	fixed := amount.StringFixed(2)
	if def, ok := catalog.Lookup(currencyCode); ok && def.Symbol != "" {
		return def.Symbol + fixed
	}
	return fixed + " " + currencyCode
}
