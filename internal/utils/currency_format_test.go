package utils_test

import (
	"testing"

	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/dealfeed/currency_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithSymbol(t *testing.T) {
	catalog := domain.NewCatalog()

	assert.Equal(t, "€11.90", utils.FormatWithSymbol(catalog, decimal.RequireFromString("11.9"), "EUR"))
	assert.Equal(t, "$85.00", utils.FormatWithSymbol(catalog, decimal.NewFromInt(85), "usd"))
	assert.Equal(t, "₪36.50", utils.FormatWithSymbol(catalog, decimal.RequireFromString("36.5"), "ILS"))
	assert.Equal(t, "12.00 XYZ", utils.FormatWithSymbol(catalog, decimal.NewFromInt(12), "XYZ"))
}
