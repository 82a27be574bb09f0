package services

import (
	"github.com/shopspring/decimal"

	"github.com/swiftremit/money_transfer_app/internal/core/domain"
)

// builtinUSDRates is the last-resort rate table, used only when the provider,
// the in-memory cache and the persisted snapshots are all unavailable. Values
// are indicative, not live market rates.
var builtinUSDRates = map[string]decimal.Decimal{
	"EUR": decimal.RequireFromString("0.92"),
	"GBP": decimal.RequireFromString("0.79"),
	"JPY": decimal.RequireFromString("148.50"),
	"CAD": decimal.RequireFromString("1.36"),
	"AUD": decimal.RequireFromString("1.52"),
	"INR": decimal.RequireFromString("83.10"),
	"NGN": decimal.RequireFromString("1540.00"),
	"PHP": decimal.RequireFromString("56.40"),
	"MXN": decimal.RequireFromString("17.05"),
	"CHF": decimal.RequireFromString("0.88"),
}

// builtinFallbackTable derives a rate table for the requested base currency
// from the hardcoded USD table. For a non-USD base the cross rates are
// computed through USD; a base absent from the USD table yields an empty
// table, so lookups against it fail with a rate-unavailable error.
func builtinFallbackTable(baseCurrency string) domain.RateTable {
	table := domain.RateTable{
		BaseCurrency: baseCurrency,
		Rates:        make(map[string]decimal.Decimal),
	}
	if baseCurrency == "USD" {
		for currency, rate := range builtinUSDRates {
			table.Rates[currency] = rate
		}
		return table
	}
	baseRate, ok := builtinUSDRates[baseCurrency]
	if !ok || !baseRate.IsPositive() {
		return table
	}
	table.Rates["USD"] = decimal.NewFromInt(1).DivRound(baseRate, 8)
	for currency, rate := range builtinUSDRates {
		if currency == baseCurrency {
			continue
		}
		table.Rates[currency] = rate.DivRound(baseRate, 8)
	}
	return table
}
