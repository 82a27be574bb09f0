package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTable is one fetched exchange-rate table for a base currency. Keys are
// 3-letter uppercase ISO-4217 codes and values are strictly positive
// multipliers; the base currency itself is implicitly 1 and never present as
// an entry. A table is replaced wholesale on each successful fetch, never
// partially updated.
type RateTable struct {
	BaseCurrency string                     `json:"baseCurrency"`
	Rates        map[string]decimal.Decimal `json:"rates"`
	FetchedAt    time.Time                  `json:"fetchedAt"`
}

// Lookup returns the multiplier for target, or false when target is absent.
// The base currency lookup intentionally stays absent; same-currency
// conversion is the identity and is short-circuited before any table read.
func (t RateTable) Lookup(target string) (decimal.Decimal, bool) {
	rate, ok := t.Rates[target]
	return rate, ok
}

// FreshWithin reports whether the table was fetched less than window ago.
func (t RateTable) FreshWithin(now time.Time, window time.Duration) bool {
	return now.Sub(t.FetchedAt) < window
}

// FeeQuote is the fee breakdown for a transfer amount. It is a pure
// computation result and is only persisted embedded in a Transaction.
type FeeQuote struct {
	BaseFee     decimal.Decimal `json:"baseFee"`
	ExchangeFee decimal.Decimal `json:"exchangeFee"`
	TotalFee    decimal.Decimal `json:"totalFee"`
}

// ConversionResult is the ephemeral pricing snapshot computed per request.
// It becomes authoritative once copied into a Transaction at creation.
type ConversionResult struct {
	SourceAmount   decimal.Decimal `json:"sourceAmount"`
	SourceCurrency string          `json:"sourceCurrency"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	TargetCurrency string          `json:"targetCurrency"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	Fees           FeeQuote        `json:"fees"`
	TotalCost      decimal.Decimal `json:"totalCost"`
}
