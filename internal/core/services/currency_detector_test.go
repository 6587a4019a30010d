package services_test

import (
	"testing"

	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/dealfeed/currency_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyDetectorTestSuite struct {
	suite.Suite
	detector *services.CurrencyDetector
}

func (suite *CurrencyDetectorTestSuite) SetupSuite() {
	suite.detector = services.NewCurrencyDetector(domain.NewCatalog())
}

// --- Test Cases ---

func (suite *CurrencyDetectorTestSuite) TestDetectFromPrice_Symbols() {
	cases := []struct {
		text string
		want string
	}{
		{"$19.99", "USD"},
		{"€49.90", "EUR"},
		{"£12", "GBP"},
		{"₪35.50", "ILS"},
		{"₹ 799", "INR"},
		{"¥1500", "JPY"},
		{"₩12000", "KRW"},
		{"฿250", "THB"},
	}

	for _, tc := range cases {
		code, ok := suite.detector.DetectFromPrice(tc.text)
		suite.Require().True(ok, "no match for %q", tc.text)
		suite.Equal(tc.want, code, "text %q", tc.text)
	}
}

func (suite *CurrencyDetectorTestSuite) TestDetectFromPrice_PrefixedDollars() {
	// Prefixed dollar symbols must win over the bare "$" of USD.
	cases := []struct {
		text string
		want string
	}{
		{"S$12.50", "SGD"},
		{"A$20", "AUD"},
		{"C$15.75", "CAD"},
		{"HK$88", "HKD"},
		{"NZ$9.99", "NZD"},
		{"NT$300", "TWD"},
		{"R$45.00", "BRL"},
	}

	for _, tc := range cases {
		code, ok := suite.detector.DetectFromPrice(tc.text)
		suite.Require().True(ok, "no match for %q", tc.text)
		suite.Equal(tc.want, code, "text %q", tc.text)
	}
}

func (suite *CurrencyDetectorTestSuite) TestDetectFromPrice_CodesAndNames() {
	cases := []struct {
		text string
		want string
	}{
		{"19.99 USD", "USD"},
		{"price: 25 eur", "EUR"},
		{"120 ILS total", "ILS"},
		{"Israeli Shekel", "ILS"},
		{"Japanese Yen", "JPY"},
	}

	for _, tc := range cases {
		code, ok := suite.detector.DetectFromPrice(tc.text)
		suite.Require().True(ok, "no match for %q", tc.text)
		suite.Equal(tc.want, code, "text %q", tc.text)
	}
}

func (suite *CurrencyDetectorTestSuite) TestDetectFromPrice_NoMatch() {
	for _, text := range []string{"", "   ", "no price here", "12345"} {
		_, ok := suite.detector.DetectFromPrice(text)
		suite.False(ok, "unexpected match for %q", text)
	}
}

func (suite *CurrencyDetectorTestSuite) TestDetectFromCountry() {
	cases := []struct {
		text string
		want string
	}{
		{"China", "CNY"},
		{"shipped from JAPAN", "JPY"},
		{"Made in Thailand", "THB"},
		{"israel", "ILS"},
		{"South Korea", "KRW"},
		{"Deutschland? No, Germany", "EUR"},
		{"singaporean seller", "SGD"},
	}

	for _, tc := range cases {
		code, ok := suite.detector.DetectFromCountry(tc.text)
		suite.Require().True(ok, "no match for %q", tc.text)
		suite.Equal(tc.want, code, "text %q", tc.text)
	}
}

func (suite *CurrencyDetectorTestSuite) TestDetectFromCountry_NoMatch() {
	_, ok := suite.detector.DetectFromCountry("the moon")
	suite.False(ok)
}

func (suite *CurrencyDetectorTestSuite) TestDetectFromProduct_ExplicitField() {
	result := suite.detector.DetectFromProduct(domain.ProductRecord{
		SalePriceCurrency: "eur",
		Title:             "$ price in title should lose",
	})

	suite.Require().NotNil(result)
	suite.Equal("EUR", result.CurrencyCode)
	suite.Equal(domain.ConfidenceHigh, result.Confidence)
	suite.Equal(domain.MethodExplicitField, result.Method)
}

func (suite *CurrencyDetectorTestSuite) TestDetectFromProduct_PriceField() {
	result := suite.detector.DetectFromProduct(domain.ProductRecord{
		SalePrice: "S$12.50",
	})

	suite.Require().NotNil(result)
	suite.Equal("SGD", result.CurrencyCode)
	suite.Equal(domain.ConfidenceHigh, result.Confidence)
	suite.Equal(domain.MethodExplicitField, result.Method)
}

func (suite *CurrencyDetectorTestSuite) TestDetectFromProduct_TitleText() {
	result := suite.detector.DetectFromProduct(domain.ProductRecord{
		Title: "Vintage lamp only €25",
	})

	suite.Require().NotNil(result)
	suite.Equal("EUR", result.CurrencyCode)
	suite.Equal(domain.ConfidenceMedium, result.Confidence)
	suite.Equal(domain.MethodPriceText, result.Method)
}

func (suite *CurrencyDetectorTestSuite) TestDetectFromProduct_CountryFallback() {
	result := suite.detector.DetectFromProduct(domain.ProductRecord{
		Title:       "Handmade ceramic bowl",
		ShopCountry: "Vietnam",
	})

	suite.Require().NotNil(result)
	suite.Equal("VND", result.CurrencyCode)
	suite.Equal(domain.ConfidenceMedium, result.Confidence)
	suite.Equal(domain.MethodCountryText, result.Method)
}

func (suite *CurrencyDetectorTestSuite) TestDetectFromProduct_NoSignal() {
	result := suite.detector.DetectFromProduct(domain.ProductRecord{
		Title: "mystery item",
	})
	suite.Nil(result)
}

func (suite *CurrencyDetectorTestSuite) TestExtractPrice() {
	cases := []struct {
		text string
		want string
	}{
		{"$19.99", "19.99"},
		{"1,234.56 USD", "1234.56"},
		{"price 25", "25"},
		{"¥1,500", "1500"},
	}

	for _, tc := range cases {
		price, ok := suite.detector.ExtractPrice(tc.text)
		suite.Require().True(ok, "no price in %q", tc.text)
		suite.True(price.Equal(decimal.RequireFromString(tc.want)), "text %q got %s", tc.text, price)
	}

	_, ok := suite.detector.ExtractPrice("no numbers")
	suite.False(ok)
}

func (suite *CurrencyDetectorTestSuite) TestDetect_PriceBeforeCountry() {
	result := suite.detector.Detect("€10 from China")
	suite.Require().NotNil(result)
	suite.Equal("EUR", result.CurrencyCode)
	suite.Equal(domain.MethodPriceText, result.Method)

	result = suite.detector.Detect("shipped from China")
	suite.Require().NotNil(result)
	suite.Equal("CNY", result.CurrencyCode)
	suite.Equal(domain.MethodCountryText, result.Method)

	suite.Nil(suite.detector.Detect("nothing useful"))
}

// --- Run Suite ---
func TestCurrencyDetector(t *testing.T) {
	suite.Run(t, new(CurrencyDetectorTestSuite))
}

func TestCatalogLookup(t *testing.T) {
	catalog := domain.NewCatalog()

	def, ok := catalog.Lookup("usd")
	require.True(t, ok)
	assert.Equal(t, "USD", def.Code)

	_, ok = catalog.Lookup("XXX")
	assert.False(t, ok)
}
