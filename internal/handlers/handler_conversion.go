package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dealfeed/currency_backend/internal/core/domain"
	portssvc "github.com/dealfeed/currency_backend/internal/core/ports/services"
	"github.com/dealfeed/currency_backend/internal/dto"
	"github.com/dealfeed/currency_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles HTTP requests for price conversion.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
	catalog           *domain.Catalog
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade, catalog *domain.Catalog) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
		catalog:           catalog,
	}
}

// registerConversionRoutes registers routes related to conversion.
func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade, catalog *domain.Catalog) {
	h := newConversionHandler(conversionService, catalog)

	convert := rg.Group("/convert")
	{
		convert.POST("", h.convert)
		convert.POST("/batch", h.batchConvert)
	}
}

func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	correlationID, _ := middleware.GetCorrelationIDFromContext(c)
	result := h.conversionService.Convert(c.Request.Context(), domain.ConversionRequest{
		Price:         req.Price,
		FromCurrency:  req.FromCurrency,
		ToCurrency:    req.ToCurrency,
		CorrelationID: correlationID,
	})
	middleware.ObserveConversion(string(result.ErrorKind))

	if !result.Success {
		logger.Warn("Conversion failed",
			slog.String("from", result.FromCurrency),
			slog.String("to", result.ToCurrency),
			slog.String("error_kind", string(result.ErrorKind)),
		)
	}

	c.JSON(http.StatusOK, dto.ToConvertResponse(h.catalog, result))
}

func (h *conversionHandler) batchConvert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BatchConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BatchConvert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	correlationID, _ := middleware.GetCorrelationIDFromContext(c)
	requests := make([]domain.ConversionRequest, len(req.Items))
	for i, item := range req.Items {
		requests[i] = domain.ConversionRequest{
			Price:         item.Price,
			FromCurrency:  item.FromCurrency,
			ToCurrency:    item.ToCurrency,
			CorrelationID: correlationID,
		}
	}

	results := h.conversionService.BatchConvert(c.Request.Context(), requests)
	for _, result := range results {
		middleware.ObserveConversion(string(result.ErrorKind))
	}

	logger.Info("Batch conversion completed", slog.Int("items", len(results)))
	c.JSON(http.StatusOK, dto.ToBatchConvertResponse(h.catalog, results))
}
