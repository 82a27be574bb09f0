package models

import "time"

// RateSnapshot mirrors a row of the rate_snapshots table. Rates holds the
// raw JSONB payload; the mapping layer converts it to the domain table.
type RateSnapshot struct {
	SnapshotID   string    `db:"snapshot_id"`
	BaseCurrency string    `db:"base_currency"`
	Rates        []byte    `db:"rates"`
	FetchedAt    time.Time `db:"fetched_at"`
}
