package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/swiftremit/money_transfer_app/internal/apperrors"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	"github.com/swiftremit/money_transfer_app/internal/core/ports/providers"
	portrepo "github.com/swiftremit/money_transfer_app/internal/core/ports/repositories"
	"github.com/swiftremit/money_transfer_app/internal/utils"
)

var (
	// baseTransferFee is the flat fee charged on every transfer.
	baseTransferFee = decimal.RequireFromString("4.99")
	// exchangeFeeRate is the proportional fee applied to the source amount.
	exchangeFeeRate = decimal.RequireFromString("0.005")
)

// FXService prices transfers. Rate tables move through a tiered lookup:
// fresh cache, live provider fetch, stale cache, persisted snapshot, and
// finally the built-in fallback table, so pricing stays available even when
// the external rate source is down.
type FXService struct {
	BaseService
	cache    *RateCache
	provider providers.RateProvider
	rateRepo portrepo.RateSnapshotRepositoryFacade
}

// NewFXService creates a new FXService.
func NewFXService(cache *RateCache, provider providers.RateProvider, rateRepo portrepo.RateSnapshotRepositoryFacade) *FXService {
	return &FXService{
		cache:    cache,
		provider: provider,
		rateRepo: rateRepo,
	}
}

// GetCurrentRates returns the best obtainable rate table for the base
// currency. It never fails; when every live and persisted source is
// exhausted it falls back to the built-in table.
func (s *FXService) GetCurrentRates(ctx context.Context, baseCurrency string) domain.RateTable {
	base := strings.ToUpper(strings.TrimSpace(baseCurrency))
	if base == "" {
		base = "USD"
	}

	if table, ok := s.cache.GetFresh(base); ok {
		return table
	}

	table, err := s.provider.FetchRates(ctx, base)
	if err == nil {
		s.cache.Put(table)
		if saveErr := s.rateRepo.SaveRateSnapshot(ctx, table); saveErr != nil {
			// Snapshot persistence is best-effort; pricing continues on the
			// freshly fetched table.
			s.LogError(ctx, saveErr, "failed to persist rate snapshot", "baseCurrency", base)
		}
		return table
	}
	s.LogWarn(ctx, "rate provider fetch failed, falling back", "baseCurrency", base, "error", err.Error())

	if table, ok := s.cache.GetAny(base); ok {
		return table
	}

	snapshot, repoErr := s.rateRepo.FindLatestRateSnapshot(ctx, base)
	if repoErr == nil && snapshot != nil {
		s.cache.Put(*snapshot)
		return *snapshot
	}

	s.LogWarn(ctx, "no cached or persisted rates, using built-in fallback table", "baseCurrency", base)
	return builtinFallbackTable(base)
}

// GetExchangeRate returns the multiplier from one currency to another. The
// same-currency rate is exactly 1 and short-circuits before any table read.
func (s *FXService) GetExchangeRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if len(from) != 3 || len(to) != 3 {
		return decimal.Zero, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	table := s.GetCurrentRates(ctx, from)
	rate, ok := table.Lookup(to)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no rate from %s to %s", apperrors.ErrRateUnavailable, from, to)
	}
	return rate, nil
}

// ConvertAmount converts amount from one currency to another, rounded
// half-up to 2 decimal places.
func (s *FXService) ConvertAmount(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	rate, err := s.GetExchangeRate(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return utils.RoundMoney(amount.Mul(rate)), nil
}

// CalculateFees computes the fee schedule for a transfer amount: a flat base
// fee plus a proportional exchange fee, each rounded to 2 decimal places.
func (s *FXService) CalculateFees(amount decimal.Decimal) domain.FeeQuote {
	exchangeFee := utils.RoundMoney(amount.Mul(exchangeFeeRate))
	return domain.FeeQuote{
		BaseFee:     baseTransferFee,
		ExchangeFee: exchangeFee,
		TotalFee:    baseTransferFee.Add(exchangeFee),
	}
}

// Quote prices a prospective transfer end to end.
func (s *FXService) Quote(ctx context.Context, amount decimal.Decimal, from, to string) (domain.ConversionResult, error) {
	if !amount.IsPositive() {
		return domain.ConversionResult{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	rate, err := s.GetExchangeRate(ctx, from, to)
	if err != nil {
		return domain.ConversionResult{}, err
	}

	fees := s.CalculateFees(amount)
	return domain.ConversionResult{
		SourceAmount:   amount,
		SourceCurrency: strings.ToUpper(strings.TrimSpace(from)),
		TargetAmount:   utils.RoundMoney(amount.Mul(rate)),
		TargetCurrency: strings.ToUpper(strings.TrimSpace(to)),
		ExchangeRate:   rate,
		Fees:           fees,
		TotalCost:      amount.Add(fees.TotalFee),
	}, nil
}
