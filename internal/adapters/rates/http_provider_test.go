package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftremit/money_transfer_app/internal/apperrors"
)

func TestFetchRates_ParsesTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base": "USD", "rates": {"EUR": 0.85, "GBP": 0.79, "usd": 1}}`))
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL, 0)
	table, err := provider.FetchRates(context.Background(), "usd")

	require.NoError(t, err)
	assert.Equal(t, "USD", table.BaseCurrency)
	assert.False(t, table.FetchedAt.IsZero())

	rate, ok := table.Lookup("EUR")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.85")))

	// The base currency never appears as its own entry.
	_, ok = table.Lookup("USD")
	assert.False(t, ok)
}

func TestFetchRates_DropsNonPositiveRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base": "USD", "rates": {"EUR": 0.85, "XXX": 0, "YYY": -1}}`))
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL, 0)
	table, err := provider.FetchRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.Len(t, table.Rates, 1)
	_, ok := table.Lookup("XXX")
	assert.False(t, ok)
}

func TestFetchRates_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL, 0)
	_, err := provider.FetchRates(context.Background(), "USD")

	assert.ErrorIs(t, err, apperrors.ErrRateFetch)
}

func TestFetchRates_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base": "USD", "rates":`))
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL, 0)
	_, err := provider.FetchRates(context.Background(), "USD")

	assert.ErrorIs(t, err, apperrors.ErrRateFetch)
}

func TestFetchRates_EmptyRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base": "USD", "rates": {}}`))
	}))
	defer server.Close()

	provider := NewHTTPProvider(server.URL, 0)
	_, err := provider.FetchRates(context.Background(), "USD")

	assert.ErrorIs(t, err, apperrors.ErrRateFetch)
}

func TestFetchRates_UnreachableSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	provider := NewHTTPProvider(server.URL, 0)
	_, err := provider.FetchRates(context.Background(), "USD")

	assert.ErrorIs(t, err, apperrors.ErrRateFetch)
}
