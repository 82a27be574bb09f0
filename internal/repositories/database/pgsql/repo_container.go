package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/swiftremit/money_transfer_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		BeneficiaryRepo:  newPgxBeneficiaryRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		RateSnapshotRepo: newPgxRateSnapshotRepository(dbPool),
	}
}
