package pgsql

import (
	portsrepo "github.com/dealfeed/currency_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo: NewPgxRateRepository(dbPool),
	}
}
