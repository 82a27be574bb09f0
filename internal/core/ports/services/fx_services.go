package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
)

// FXReaderSvc defines the pricing operations of the FX engine.
type FXReaderSvc interface {
	// GetCurrentRates returns the rate table for the base currency. It never
	// fails: a fresh cached table, a freshly fetched one, a stale cached one,
	// a persisted snapshot, or the built-in fallback table is returned, in
	// that order of preference.
	GetCurrentRates(ctx context.Context, baseCurrency string) domain.RateTable

	// GetExchangeRate returns the multiplier from one currency to another.
	// The same-currency rate is exactly 1 and involves no table lookup.
	// A target currency absent from every obtainable table yields
	// apperrors.ErrRateUnavailable.
	GetExchangeRate(ctx context.Context, from, to string) (decimal.Decimal, error)

	// ConvertAmount converts amount from one currency to another, rounded to
	// 2 decimal places.
	ConvertAmount(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)

	// CalculateFees computes the fee schedule for a transfer amount. Pure.
	CalculateFees(amount decimal.Decimal) domain.FeeQuote

	// Quote produces the full conversion result (rate, amounts, fees) for a
	// prospective transfer.
	Quote(ctx context.Context, amount decimal.Decimal, from, to string) (domain.ConversionResult, error)
}

// FXSvcFacade combines the FX engine interfaces.
type FXSvcFacade interface {
	FXReaderSvc
}
