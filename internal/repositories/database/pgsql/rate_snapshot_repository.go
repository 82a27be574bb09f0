package pgsql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftremit/money_transfer_app/internal/apperrors"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	portsrepo "github.com/swiftremit/money_transfer_app/internal/core/ports/repositories"
	"github.com/swiftremit/money_transfer_app/internal/models"
	"github.com/swiftremit/money_transfer_app/internal/utils/mapping"
)

type PgxRateSnapshotRepository struct {
	BaseRepository
}

func newPgxRateSnapshotRepository(pool *pgxpool.Pool) portsrepo.RateSnapshotRepositoryFacade {
	return &PgxRateSnapshotRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateSnapshotRepositoryFacade = (*PgxRateSnapshotRepository)(nil)

// SaveRateSnapshot appends a fetched rate table. Rows are never updated or
// deleted; the newest row per base currency wins for reads.
func (r *PgxRateSnapshotRepository) SaveRateSnapshot(ctx context.Context, table domain.RateTable) error {
	if table.BaseCurrency == "" || len(table.Rates) == 0 {
		return apperrors.NewValidationError("rate snapshot must carry a base currency and at least one rate")
	}
	m, err := mapping.ToModelRateSnapshot(uuid.NewString(), table)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO rate_snapshots (snapshot_id, base_currency, rates, fetched_at)
        VALUES ($1, $2, $3, $4);
    `
	if _, err := r.Pool.Exec(ctx, query, m.SnapshotID, m.BaseCurrency, m.Rates, m.FetchedAt); err != nil {
		return apperrors.NewAppError(500, "failed to save rate snapshot for "+m.BaseCurrency, err)
	}
	return nil
}

func (r *PgxRateSnapshotRepository) FindLatestRateSnapshot(ctx context.Context, baseCurrency string) (*domain.RateTable, error) {
	query := `
        SELECT snapshot_id, base_currency, rates, fetched_at
        FROM rate_snapshots
        WHERE base_currency = $1
        ORDER BY fetched_at DESC
        LIMIT 1;
    `
	var m models.RateSnapshot
	err := r.Pool.QueryRow(ctx, query, baseCurrency).Scan(
		&m.SnapshotID,
		&m.BaseCurrency,
		&m.Rates,
		&m.FetchedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate snapshot for " + baseCurrency)
		}
		return nil, apperrors.NewAppError(500, "failed to find rate snapshot for "+baseCurrency, err)
	}

	table, err := mapping.ToDomainRateTable(m)
	if err != nil {
		return nil, err
	}
	return &table, nil
}
