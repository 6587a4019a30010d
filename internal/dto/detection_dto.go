package dto

import (
	"github.com/dealfeed/currency_backend/internal/core/domain"
)

// DetectRequest carries free text, a country name, or a product record to
// run currency detection over. Product takes precedence, then text, then
// country.
type DetectRequest struct {
	Text    string            `json:"text"`
	Country string            `json:"country"`
	Product *ProductRecordDTO `json:"product"`
}

// ProductRecordDTO mirrors the product fields detection inspects.
type ProductRecordDTO struct {
	SalePrice             string `json:"salePrice"`
	SalePriceCurrency     string `json:"salePriceCurrency"`
	OriginalPrice         string `json:"originalPrice"`
	OriginalPriceCurrency string `json:"originalPriceCurrency"`
	Title                 string `json:"title"`
	Description           string `json:"description"`
	ShopName              string `json:"shopName"`
	ShopCountry           string `json:"shopCountry"`
	Country               string `json:"country"`
}

// DetectResponse reports the detected currency, empty code when nothing
// matched.
type DetectResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Confidence   string `json:"confidence,omitempty"`
	Method       string `json:"method,omitempty"`
	Detected     bool   `json:"detected"`
}

// ToProductRecord converts the DTO to its domain form.
func (p *ProductRecordDTO) ToProductRecord() domain.ProductRecord {
	return domain.ProductRecord{
		SalePrice:             p.SalePrice,
		SalePriceCurrency:     p.SalePriceCurrency,
		OriginalPrice:         p.OriginalPrice,
		OriginalPriceCurrency: p.OriginalPriceCurrency,
		Title:                 p.Title,
		Description:           p.Description,
		ShopName:              p.ShopName,
		ShopCountry:           p.ShopCountry,
		Country:               p.Country,
	}
}

// ToDetectResponse converts a detection result, nil meaning no match.
func ToDetectResponse(result *domain.DetectionResult) DetectResponse {
	if result == nil {
		return DetectResponse{Detected: false}
	}
	return DetectResponse{
		CurrencyCode: result.CurrencyCode,
		Confidence:   string(result.Confidence),
		Method:       string(result.Method),
		Detected:     true,
	}
}
