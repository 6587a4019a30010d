package pgsql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dealfeed/currency_backend/internal/apperrors"
	"github.com/dealfeed/currency_backend/internal/core/domain"
	portsrepo "github.com/dealfeed/currency_backend/internal/core/ports/repositories"
	"github.com/dealfeed/currency_backend/internal/models"
	"github.com/dealfeed/currency_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// defaultRates seeds an empty store with enough pairs to bridge the common
// source currencies into USD and onward to the supported targets.
var defaultRates = []struct {
	from string
	to   string
	rate string
}{
	{"USD", "EUR", "0.85"},
	{"USD", "ILS", "3.65"},
	{"CNY", "USD", "0.14"},
	{"INR", "USD", "0.012"},
	{"MYR", "USD", "0.21"},
	{"THB", "USD", "0.027"},
	{"VND", "USD", "0.000041"},
	{"IDR", "USD", "0.000065"},
	{"PHP", "USD", "0.018"},
	{"SGD", "USD", "0.74"},
}

// PgxRateRepository implements the rate repository ports using pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

var (
	_ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)
	_ portsrepo.TransactionManager   = (*PgxRateRepository)(nil)
)

// NewPgxRateRepository creates a new PgxRateRepository.
func NewPgxRateRepository(db *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetRate retrieves the stored rate for a directed currency pair.
func (r *PgxRateRepository) GetRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error) {
	fromCurrency = strings.ToUpper(fromCurrency)
	toCurrency = strings.ToUpper(toCurrency)

	query := `
		SELECT from_currency, to_currency, rate, created_at, updated_at
		FROM currency_rates
		WHERE from_currency = $1 AND to_currency = $2;
	`

	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, fromCurrency, toCurrency).Scan(
		&modelRate.FromCurrency, &modelRate.ToCurrency, &modelRate.Rate,
		&modelRate.CreatedAt, &modelRate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate stored for " + fromCurrency + " to " + toCurrency)
		}
		return nil, apperrors.NewAppError(500, "failed to get rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListRates retrieves every stored rate pair.
func (r *PgxRateRepository) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT from_currency, to_currency, rate, created_at, updated_at
		FROM currency_rates
		ORDER BY from_currency, to_currency;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list rates", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		var modelRate models.ExchangeRate
		err := rows.Scan(
			&modelRate.FromCurrency, &modelRate.ToCurrency, &modelRate.Rate,
			&modelRate.CreatedAt, &modelRate.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rate", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(modelRate))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating rates", err)
	}

	return rates, nil
}

// SetRate inserts or updates the rate for a directed currency pair.
func (r *PgxRateRepository) SetRate(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	fromCurrency = strings.ToUpper(fromCurrency)
	toCurrency = strings.ToUpper(toCurrency)

	if fromCurrency == toCurrency {
		return nil, apperrors.NewValidationError("from and to currencies cannot be the same")
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("rate must be positive")
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	modelRate := mapping.ToModelExchangeRate(domain.ExchangeRate{
		FromCurrencyCode: fromCurrency,
		ToCurrencyCode:   toCurrency,
		Rate:             rate,
		UpdatedAt:        now,
	})

	var createdAt time.Time
	err = tx.QueryRow(ctx,
		`SELECT created_at FROM currency_rates
		WHERE from_currency = $1 AND to_currency = $2`,
		fromCurrency, toCurrency,
	).Scan(&createdAt)

	if err == nil {
		modelRate.CreatedAt = createdAt
		_, err = tx.Exec(ctx, `
			UPDATE currency_rates
			SET rate = $1, updated_at = $2
			WHERE from_currency = $3 AND to_currency = $4`,
			modelRate.Rate, modelRate.UpdatedAt, fromCurrency, toCurrency,
		)
	} else if errors.Is(err, pgx.ErrNoRows) {
		modelRate.CreatedAt = now
		_, err = tx.Exec(ctx, `
			INSERT INTO currency_rates (from_currency, to_currency, rate, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)`,
			modelRate.FromCurrency, modelRate.ToCurrency, modelRate.Rate,
			modelRate.CreatedAt, modelRate.UpdatedAt,
		)
	}

	if err != nil {
		_ = r.Rollback(ctx, tx)
		return nil, apperrors.NewAppError(500, "failed to set rate", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// DeleteRate removes a stored rate pair, reporting whether a row existed.
func (r *PgxRateRepository) DeleteRate(ctx context.Context, fromCurrency, toCurrency string) (bool, error) {
	fromCurrency = strings.ToUpper(fromCurrency)
	toCurrency = strings.ToUpper(toCurrency)

	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM currency_rates WHERE from_currency = $1 AND to_currency = $2`,
		fromCurrency, toCurrency,
	)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to delete rate", err)
	}
	return tag.RowsAffected() > 0, nil
}

// InitializeDefaults seeds the baseline rate set when the table is empty.
// Returns the number of pairs inserted, zero when rates already exist.
func (r *PgxRateRepository) InitializeDefaults(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM currency_rates`).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count rates", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	inserted := 0
	for _, seed := range defaultRates {
		rate, err := decimal.NewFromString(seed.rate)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return 0, apperrors.NewAppError(500, "invalid default rate for "+seed.from, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO currency_rates (from_currency, to_currency, rate, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)`,
			seed.from, seed.to, rate, now, now,
		)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return 0, apperrors.NewAppError(500, "failed to seed default rates", err)
		}
		inserted++
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return inserted, nil
}
