package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dealfeed/currency_backend/internal/apperrors"
	"github.com/dealfeed/currency_backend/internal/core/domain"
	portssvc "github.com/dealfeed/currency_backend/internal/core/ports/services"
	"github.com/dealfeed/currency_backend/internal/core/services"
	"github.com/dealfeed/currency_backend/internal/dto"
	"github.com/dealfeed/currency_backend/internal/handlers"
	"github.com/dealfeed/currency_backend/internal/middleware"
	"github.com/dealfeed/currency_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockRateService) SetRate(ctx context.Context, fromCode, toCode string, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockRateService) DeleteRate(ctx context.Context, fromCode, toCode string) (bool, error) {
	args := m.Called(ctx, fromCode, toCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockRateService) InitializeDefaults(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Test Suite ---
type RateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockRateSvc *MockRateService
}

func (suite *RateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidators())

	suite.mockRateSvc = new(MockRateService)
	catalog := domain.NewCatalog()
	container := &portssvc.ServiceContainer{
		Conversion: new(MockConversionService),
		Detector:   services.NewCurrencyDetector(catalog),
		Rates:      suite.mockRateSvc,
		Catalog:    catalog,
	}

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	handlers.RegisterRoutes(suite.router, &config.Config{}, container)
}

func (suite *RateHandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *RateHandlerTestSuite) TestListRates() {
	now := time.Now()
	suite.mockRateSvc.On("ListRates", mock.Anything).Return([]domain.ExchangeRate{
		{FromCurrencyCode: "USD", ToCurrencyCode: "EUR", Rate: decimal.RequireFromString("0.85"), CreatedAt: now, UpdatedAt: now},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/rates", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("USD", resp[0].FromCurrency)
	suite.Equal("EUR", resp[0].ToCurrency)
}

func (suite *RateHandlerTestSuite) TestGetRate_Found() {
	suite.mockRateSvc.On("GetRate", mock.Anything, "USD", "EUR").Return(&domain.ExchangeRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.85"),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/rates/USD/EUR", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRateSvc.AssertExpectations(suite.T())
}

func (suite *RateHandlerTestSuite) TestGetRate_NotFound() {
	suite.mockRateSvc.On("GetRate", mock.Anything, "USD", "XXX").
		Return(nil, apperrors.NewNotFoundError("no rate stored")).Once()

	w := suite.do(http.MethodGet, "/api/v1/rates/USD/XXX", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RateHandlerTestSuite) TestSetRate_Success() {
	rate := decimal.RequireFromString("0.92")
	suite.mockRateSvc.On("SetRate", mock.Anything, "USD", "EUR", rate).Return(&domain.ExchangeRate{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "EUR",
		Rate:             rate,
	}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/rates/USD/EUR", dto.SetExchangeRateRequest{Rate: rate})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Rate.Equal(rate))
}

func (suite *RateHandlerTestSuite) TestSetRate_ValidationError() {
	rate := decimal.RequireFromString("-1")
	suite.mockRateSvc.On("SetRate", mock.Anything, "USD", "EUR", rate).
		Return(nil, apperrors.NewValidationError("rate must be positive")).Once()

	w := suite.do(http.MethodPut, "/api/v1/rates/USD/EUR", dto.SetExchangeRateRequest{Rate: rate})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RateHandlerTestSuite) TestDeleteRate_Found() {
	suite.mockRateSvc.On("DeleteRate", mock.Anything, "USD", "EUR").Return(true, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/rates/USD/EUR", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *RateHandlerTestSuite) TestDeleteRate_NotFound() {
	suite.mockRateSvc.On("DeleteRate", mock.Anything, "USD", "XXX").Return(false, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/rates/USD/XXX", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RateHandlerTestSuite) TestInitializeDefaults() {
	suite.mockRateSvc.On("InitializeDefaults", mock.Anything).Return(10, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/rates/defaults", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.InitializeDefaultsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(10, resp.Inserted)
}

func (suite *RateHandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

// --- Run Suite ---
func TestRateHandler(t *testing.T) {
	suite.Run(t, new(RateHandlerTestSuite))
}
