package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	"github.com/swiftremit/money_transfer_app/internal/models"
)

// ToModelRateSnapshot converts a domain RateTable to a model RateSnapshot.
// The snapshot ID is assigned by the caller.
func ToModelRateSnapshot(snapshotID string, t domain.RateTable) (models.RateSnapshot, error) {
	payload, err := json.Marshal(t.Rates)
	if err != nil {
		return models.RateSnapshot{}, fmt.Errorf("failed to marshal rate table: %w", err)
	}
	return models.RateSnapshot{
		SnapshotID:   snapshotID,
		BaseCurrency: t.BaseCurrency,
		Rates:        payload,
		FetchedAt:    t.FetchedAt,
	}, nil
}

// ToDomainRateTable converts a model RateSnapshot to a domain RateTable.
func ToDomainRateTable(m models.RateSnapshot) (domain.RateTable, error) {
	rates := make(map[string]decimal.Decimal)
	if err := json.Unmarshal(m.Rates, &rates); err != nil {
		return domain.RateTable{}, fmt.Errorf("failed to unmarshal rate table: %w", err)
	}
	return domain.RateTable{
		BaseCurrency: m.BaseCurrency,
		Rates:        rates,
		FetchedAt:    m.FetchedAt,
	}, nil
}
