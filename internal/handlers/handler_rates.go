package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dealfeed/currency_backend/internal/apperrors"
	portssvc "github.com/dealfeed/currency_backend/internal/core/ports/services"
	"github.com/dealfeed/currency_backend/internal/dto"
	"github.com/dealfeed/currency_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests for stored exchange rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers routes related to stored rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listRates)
		rates.POST("/defaults", h.initializeDefaults)
		rates.GET("/:from/:to", h.getRate)
		rates.PUT("/:from/:to", h.setRate)
		rates.DELETE("/:from/:to", h.deleteRate)
	}
}

func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

func (h *rateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	rate, err := h.rateService.GetRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else {
			logger.Error("Failed to get rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

func (h *rateHandler) setRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	var req dto.SetExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to set rate",
		slog.String("from", fromCode),
		slog.String("to", toCode),
		slog.Any("rate", req.Rate),
	)

	saved, err := h.rateService.SetRate(c.Request.Context(), fromCode, toCode, req.Rate)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(saved))
}

func (h *rateHandler) deleteRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	deleted, err := h.rateService.DeleteRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rate"})
		}
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *rateHandler) initializeDefaults(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	inserted, err := h.rateService.InitializeDefaults(c.Request.Context())
	if err != nil {
		logger.Error("Failed to initialize default rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize default rates"})
		return
	}

	logger.Info("Default rates initialized", slog.Int("inserted", inserted))
	c.JSON(http.StatusOK, dto.InitializeDefaultsResponse{Inserted: inserted})
}
