package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dealfeed/currency_backend/internal/apperrors"
	"github.com/dealfeed/currency_backend/internal/core/domain"
	portsrepo "github.com/dealfeed/currency_backend/internal/core/ports/repositories"
	portssvc "github.com/dealfeed/currency_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// RateService provides business logic for managing persisted exchange rates.
type RateService struct {
	rateRepo portsrepo.RateRepositoryFacade
	catalog  *domain.Catalog
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade, catalog *domain.Catalog) *RateService {
	return &RateService{
		rateRepo: rateRepo,
		catalog:  catalog,
	}
}

// GetRate retrieves the stored rate for a currency pair.
func (s *RateService) GetRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error) {
	fromCurrency, toCurrency, err := s.normalizePair(fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.GetRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		// Repository layer handles ErrNotFound mapping
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// ListRates returns every stored rate pair.
func (s *RateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	return rates, nil
}

// SetRate creates or updates the rate for a currency pair.
func (s *RateService) SetRate(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	fromCurrency, toCurrency, err := s.normalizePair(fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if fromCurrency == toCurrency {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	saved, err := s.rateRepo.SetRate(ctx, fromCurrency, toCurrency, rate)
	if err != nil {
		return nil, fmt.Errorf("failed to set exchange rate in service: %w", err)
	}
	return saved, nil
}

// DeleteRate removes a stored rate pair, reporting whether one existed.
func (s *RateService) DeleteRate(ctx context.Context, fromCurrency, toCurrency string) (bool, error) {
	fromCurrency, toCurrency, err := s.normalizePair(fromCurrency, toCurrency)
	if err != nil {
		return false, err
	}

	deleted, err := s.rateRepo.DeleteRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		return false, fmt.Errorf("failed to delete exchange rate in service: %w", err)
	}
	return deleted, nil
}

// InitializeDefaults seeds the repository with a baseline rate set when it
// is empty. Returns the number of pairs inserted, zero when rates already
// exist.
func (s *RateService) InitializeDefaults(ctx context.Context) (int, error) {
	inserted, err := s.rateRepo.InitializeDefaults(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to initialize default rates in service: %w", err)
	}
	return inserted, nil
}

func (s *RateService) normalizePair(fromCurrency, toCurrency string) (string, string, error) {
	fromCurrency = strings.ToUpper(strings.TrimSpace(fromCurrency))
	toCurrency = strings.ToUpper(strings.TrimSpace(toCurrency))
	if len(fromCurrency) != 3 || len(toCurrency) != 3 {
		return "", "", fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	return fromCurrency, toCurrency, nil
}

var _ portssvc.RateSvcFacade = (*RateService)(nil)
