package providers

import (
	"context"

	"github.com/swiftremit/money_transfer_app/internal/core/domain"
)

// RateProvider fetches a fresh exchange-rate table from an external source.
// Implementations do not retry; the fallback policy lives in the FX service.
// A failed fetch is reported as apperrors.ErrRateFetch.
type RateProvider interface {
	FetchRates(ctx context.Context, baseCurrency string) (domain.RateTable, error)
}
