// Package rates provides the adapter that fetches exchange-rate tables from
// an external HTTP rate source.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/swiftremit/money_transfer_app/internal/apperrors"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	"github.com/swiftremit/money_transfer_app/internal/core/ports/providers"
)

// HTTPProvider fetches rate tables from an exchangerate-api style endpoint:
// GET {baseURL}/latest/{BASE} returning {"base": "...", "rates": {...}}.
// It performs a single attempt per call with a bounded timeout; retry and
// fallback policy belong to the FX service.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider creates a provider for the given endpoint. A zero timeout
// falls back to 5 seconds so a stalled rate source cannot hold requests open.
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type ratesPayload struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRates fetches the rate table for the base currency. Any transport,
// status or payload problem is reported as apperrors.ErrRateFetch.
func (p *HTTPProvider) FetchRates(ctx context.Context, baseCurrency string) (domain.RateTable, error) {
	base := strings.ToUpper(strings.TrimSpace(baseCurrency))
	url := fmt.Sprintf("%s/latest/%s", p.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: building request: %v", apperrors.ErrRateFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: %v", apperrors.ErrRateFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.RateTable{}, fmt.Errorf("%w: rate source returned %s", apperrors.ErrRateFetch, resp.Status)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: decoding response: %v", apperrors.ErrRateFetch, err)
	}
	if len(payload.Rates) == 0 {
		return domain.RateTable{}, fmt.Errorf("%w: response has no rates", apperrors.ErrRateFetch)
	}

	table := domain.RateTable{
		BaseCurrency: base,
		Rates:        make(map[string]decimal.Decimal, len(payload.Rates)),
		FetchedAt:    time.Now(),
	}
	for currency, rate := range payload.Rates {
		currency = strings.ToUpper(currency)
		// The base maps to itself implicitly; non-positive rates are junk.
		if currency == base || !rate.IsPositive() {
			continue
		}
		table.Rates[currency] = rate
	}
	if len(table.Rates) == 0 {
		return domain.RateTable{}, fmt.Errorf("%w: response has no usable rates", apperrors.ErrRateFetch)
	}
	return table, nil
}

var _ providers.RateProvider = (*HTTPProvider)(nil)
