package handlers

import (
	"net/http"

	"github.com/dealfeed/currency_backend/internal/core/domain"
	"github.com/dealfeed/currency_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// currencyHandler serves the supported-currency catalog.
type currencyHandler struct {
	catalog *domain.Catalog
}

func newCurrencyHandler(catalog *domain.Catalog) *currencyHandler {
	return &currencyHandler{catalog: catalog}
}

// registerCurrencyRoutes registers the catalog listing route.
func registerCurrencyRoutes(rg *gin.RouterGroup, catalog *domain.Catalog) {
	h := newCurrencyHandler(catalog)

	rg.GET("/currencies", h.listCurrencies)
}

func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(h.catalog.Currencies))
}
