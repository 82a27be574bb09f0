package services

import (
	"strings"
	"sync"
	"time"

	"github.com/swiftremit/money_transfer_app/internal/core/domain"
)

// RateCache keeps the most recently fetched rate table per base currency in
// memory. A table is considered fresh while its FetchedAt timestamp is within
// the configured freshness window; stale tables are retained and remain
// readable via GetAny so callers can fall back to them when a live fetch
// fails.
type RateCache struct {
	mu     sync.RWMutex
	tables map[string]domain.RateTable
	window time.Duration
	now    func() time.Time
}

// NewRateCache creates an empty cache with the given freshness window.
func NewRateCache(window time.Duration) *RateCache {
	return NewRateCacheWithClock(window, time.Now)
}

// NewRateCacheWithClock creates a cache with an injectable clock. Used by
// tests to control freshness expiry deterministically.
func NewRateCacheWithClock(window time.Duration, now func() time.Time) *RateCache {
	return &RateCache{
		tables: make(map[string]domain.RateTable),
		window: window,
		now:    now,
	}
}

// GetFresh returns the cached table for the base currency if one exists and
// is still within the freshness window.
func (c *RateCache) GetFresh(baseCurrency string) (domain.RateTable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	table, ok := c.tables[strings.ToUpper(baseCurrency)]
	if !ok || !table.FreshWithin(c.now(), c.window) {
		return domain.RateTable{}, false
	}
	return table, true
}

// GetAny returns the cached table for the base currency regardless of
// staleness.
func (c *RateCache) GetAny(baseCurrency string) (domain.RateTable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	table, ok := c.tables[strings.ToUpper(baseCurrency)]
	return table, ok
}

// Put replaces the cached table for the table's base currency.
func (c *RateCache) Put(table domain.RateTable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[strings.ToUpper(table.BaseCurrency)] = table
}
