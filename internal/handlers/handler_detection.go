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

// detectionHandler handles HTTP requests for currency detection.
type detectionHandler struct {
	detectorService portssvc.DetectorSvcFacade
}

// newDetectionHandler creates a new detectionHandler.
func newDetectionHandler(ds portssvc.DetectorSvcFacade) *detectionHandler {
	return &detectionHandler{
		detectorService: ds,
	}
}

// registerDetectionRoutes registers routes related to currency detection.
func registerDetectionRoutes(rg *gin.RouterGroup, detectorService portssvc.DetectorSvcFacade) {
	h := newDetectionHandler(detectorService)

	rg.POST("/detect", h.detect)
}

// detect inspects a product record, free text, or country hint, in that
// precedence order.
func (h *detectionHandler) detect(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Detect", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var result *domain.DetectionResult
	switch {
	case req.Product != nil:
		result = h.detectorService.DetectFromProduct(req.Product.ToProductRecord())
	case req.Text != "":
		result = h.detectorService.Detect(req.Text)
	case req.Country != "":
		if code, ok := h.detectorService.DetectFromCountry(req.Country); ok {
			result = &domain.DetectionResult{
				CurrencyCode: code,
				Confidence:   domain.ConfidenceMedium,
				Method:       domain.MethodCountryText,
			}
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "One of text, country or product is required"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDetectResponse(result))
}
