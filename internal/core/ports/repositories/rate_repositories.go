package repositories

import (
	"context"

	"github.com/swiftremit/money_transfer_app/internal/core/domain"
)

// RateSnapshotReader defines read operations for persisted rate tables
type RateSnapshotReader interface {
	// FindLatestRateSnapshot retrieves the most recently fetched rate table
	// for a base currency, regardless of staleness.
	FindLatestRateSnapshot(ctx context.Context, baseCurrency string) (*domain.RateTable, error)
}

// RateSnapshotWriter defines write operations for persisted rate tables
type RateSnapshotWriter interface {
	// SaveRateSnapshot appends a fetched rate table. Snapshots are append-only;
	// older rows are retained for audit and the newest wins for reads.
	SaveRateSnapshot(ctx context.Context, table domain.RateTable) error
}

// RateSnapshotRepositoryFacade combines all rate-snapshot repository interfaces
type RateSnapshotRepositoryFacade interface {
	RateSnapshotReader
	RateSnapshotWriter
}
