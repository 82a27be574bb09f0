package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	"github.com/swiftremit/money_transfer_app/internal/core/services"
)

func eurTable(fetchedAt time.Time) domain.RateTable {
	return domain.RateTable{
		BaseCurrency: "EUR",
		Rates:        map[string]decimal.Decimal{"USD": decimal.RequireFromString("1.09")},
		FetchedAt:    fetchedAt,
	}
}

func TestRateCache_FreshWithinWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := services.NewRateCacheWithClock(15*time.Minute, func() time.Time { return now })

	cache.Put(eurTable(now))

	got, ok := cache.GetFresh("EUR")
	assert.True(t, ok)
	assert.Equal(t, "EUR", got.BaseCurrency)
}

func TestRateCache_StaleAfterWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := services.NewRateCacheWithClock(15*time.Minute, func() time.Time { return now })

	cache.Put(eurTable(now.Add(-15 * time.Minute)))

	_, ok := cache.GetFresh("EUR")
	assert.False(t, ok)

	// stale entries remain readable for fallback
	got, ok := cache.GetAny("EUR")
	assert.True(t, ok)
	assert.Equal(t, "EUR", got.BaseCurrency)
}

func TestRateCache_MissingBase(t *testing.T) {
	cache := services.NewRateCache(15 * time.Minute)

	_, ok := cache.GetFresh("GBP")
	assert.False(t, ok)
	_, ok = cache.GetAny("GBP")
	assert.False(t, ok)
}

func TestRateCache_PutReplacesWholesale(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := services.NewRateCacheWithClock(15*time.Minute, func() time.Time { return now })

	cache.Put(eurTable(now.Add(-10 * time.Minute)))
	replacement := domain.RateTable{
		BaseCurrency: "EUR",
		Rates:        map[string]decimal.Decimal{"GBP": decimal.RequireFromString("0.86")},
		FetchedAt:    now,
	}
	cache.Put(replacement)

	got, ok := cache.GetFresh("EUR")
	assert.True(t, ok)
	assert.Equal(t, replacement, got)
	_, hasUSD := got.Rates["USD"]
	assert.False(t, hasUSD)
}

func TestRateCache_CaseInsensitiveBase(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := services.NewRateCacheWithClock(15*time.Minute, func() time.Time { return now })

	cache.Put(eurTable(now))

	_, ok := cache.GetFresh("eur")
	assert.True(t, ok)
}
