package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/swiftremit/money_transfer_app/internal/apperrors"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	"github.com/swiftremit/money_transfer_app/internal/core/services"
)

type FXServiceTestSuite struct {
	suite.Suite
	mockProvider *MockRateProvider
	mockRateRepo *MockRateSnapshotRepository
	cache        *services.RateCache
	service      *services.FXService
	now          time.Time
}

func (suite *FXServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockRateProvider)
	suite.mockRateRepo = new(MockRateSnapshotRepository)
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.cache = services.NewRateCacheWithClock(15*time.Minute, func() time.Time { return suite.now })
	suite.service = services.NewFXService(suite.cache, suite.mockProvider, suite.mockRateRepo)
}

func (suite *FXServiceTestSuite) usdTable(fetchedAt time.Time) domain.RateTable {
	return domain.RateTable{
		BaseCurrency: "USD",
		Rates: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("0.85"),
			"GBP": decimal.RequireFromString("0.79"),
		},
		FetchedAt: fetchedAt,
	}
}

func (suite *FXServiceTestSuite) TestCalculateFees() {
	fees := suite.service.CalculateFees(decimal.RequireFromString("1000"))
	suite.True(fees.BaseFee.Equal(decimal.RequireFromString("4.99")))
	suite.True(fees.ExchangeFee.Equal(decimal.RequireFromString("5.00")))
	suite.True(fees.TotalFee.Equal(decimal.RequireFromString("9.99")))
}

func (suite *FXServiceTestSuite) TestCalculateFees_RoundsExchangeFee() {
	// 123.45 * 0.005 = 0.61725 -> 0.62
	fees := suite.service.CalculateFees(decimal.RequireFromString("123.45"))
	suite.True(fees.ExchangeFee.Equal(decimal.RequireFromString("0.62")))
	suite.True(fees.TotalFee.Equal(decimal.RequireFromString("5.61")))
}

func (suite *FXServiceTestSuite) TestGetExchangeRate_SameCurrency() {
	ctx := context.Background()
	rate, err := suite.service.GetExchangeRate(ctx, "USD", "USD")
	suite.NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(1)))
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchRates", mock.Anything, mock.Anything)
}

func (suite *FXServiceTestSuite) TestGetCurrentRates_FetchesAndCaches() {
	ctx := context.Background()
	table := suite.usdTable(suite.now)
	suite.mockProvider.On("FetchRates", ctx, "USD").Return(table, nil).Once()
	suite.mockRateRepo.On("SaveRateSnapshot", ctx, table).Return(nil).Once()

	first := suite.service.GetCurrentRates(ctx, "USD")
	second := suite.service.GetCurrentRates(ctx, "USD")

	suite.Equal(table, first)
	suite.Equal(table, second)
	suite.mockProvider.AssertNumberOfCalls(suite.T(), "FetchRates", 1)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *FXServiceTestSuite) TestGetCurrentRates_RefetchesAfterWindow() {
	ctx := context.Background()
	table := suite.usdTable(suite.now)
	suite.mockProvider.On("FetchRates", ctx, "USD").Return(table, nil)
	suite.mockRateRepo.On("SaveRateSnapshot", ctx, mock.Anything).Return(nil)

	suite.service.GetCurrentRates(ctx, "USD")
	suite.now = suite.now.Add(16 * time.Minute)
	suite.service.GetCurrentRates(ctx, "USD")

	suite.mockProvider.AssertNumberOfCalls(suite.T(), "FetchRates", 2)
}

func (suite *FXServiceTestSuite) TestGetCurrentRates_StaleCacheOnFetchFailure() {
	ctx := context.Background()
	stale := suite.usdTable(suite.now.Add(-2 * time.Hour))
	suite.cache.Put(stale)
	suite.mockProvider.On("FetchRates", ctx, "USD").Return(domain.RateTable{}, apperrors.ErrRateFetch)

	got := suite.service.GetCurrentRates(ctx, "USD")

	suite.Equal(stale, got)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindLatestRateSnapshot", mock.Anything, mock.Anything)
}

func (suite *FXServiceTestSuite) TestGetCurrentRates_SnapshotFallback() {
	ctx := context.Background()
	snapshot := suite.usdTable(suite.now.Add(-24 * time.Hour))
	suite.mockProvider.On("FetchRates", ctx, "USD").Return(domain.RateTable{}, apperrors.ErrRateFetch)
	suite.mockRateRepo.On("FindLatestRateSnapshot", ctx, "USD").Return(&snapshot, nil).Once()

	got := suite.service.GetCurrentRates(ctx, "USD")

	suite.Equal(snapshot, got)
}

func (suite *FXServiceTestSuite) TestGetCurrentRates_BuiltinFallback() {
	ctx := context.Background()
	suite.mockProvider.On("FetchRates", ctx, "USD").Return(domain.RateTable{}, apperrors.ErrRateFetch)
	suite.mockRateRepo.On("FindLatestRateSnapshot", ctx, "USD").Return(nil, apperrors.ErrNotFound)

	got := suite.service.GetCurrentRates(ctx, "USD")

	suite.Equal("USD", got.BaseCurrency)
	suite.NotEmpty(got.Rates)
	for _, currency := range []string{"EUR", "GBP", "JPY"} {
		_, ok := got.Rates[currency]
		suite.True(ok, "built-in table should quote %s", currency)
	}
}

func (suite *FXServiceTestSuite) TestGetExchangeRate_Unavailable() {
	ctx := context.Background()
	suite.cache.Put(suite.usdTable(suite.now))

	_, err := suite.service.GetExchangeRate(ctx, "USD", "ZZZ")

	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func (suite *FXServiceTestSuite) TestConvertAmount() {
	ctx := context.Background()
	suite.cache.Put(suite.usdTable(suite.now))

	converted, err := suite.service.ConvertAmount(ctx, decimal.RequireFromString("200"), "USD", "EUR")

	suite.NoError(err)
	suite.True(converted.Equal(decimal.RequireFromString("170.00")))
}

func (suite *FXServiceTestSuite) TestConvertAmount_RoundsHalfUp() {
	ctx := context.Background()
	suite.cache.Put(domain.RateTable{
		BaseCurrency: "USD",
		Rates:        map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.8455")},
		FetchedAt:    suite.now,
	})

	// 10 * 0.8455 = 8.455 -> 8.46
	converted, err := suite.service.ConvertAmount(ctx, decimal.RequireFromString("10"), "USD", "EUR")

	suite.NoError(err)
	suite.True(converted.Equal(decimal.RequireFromString("8.46")))
}

func (suite *FXServiceTestSuite) TestConvertAmount_RoundTrip() {
	ctx := context.Background()
	usdToEur := decimal.RequireFromString("0.85")
	suite.cache.Put(domain.RateTable{
		BaseCurrency: "USD",
		Rates:        map[string]decimal.Decimal{"EUR": usdToEur},
		FetchedAt:    suite.now,
	})
	suite.cache.Put(domain.RateTable{
		BaseCurrency: "EUR",
		Rates:        map[string]decimal.Decimal{"USD": decimal.NewFromInt(1).Div(usdToEur)},
		FetchedAt:    suite.now,
	})

	there, err := suite.service.ConvertAmount(ctx, decimal.RequireFromString("100"), "USD", "EUR")
	suite.Require().NoError(err)
	suite.True(there.Equal(decimal.RequireFromString("85.00")))

	back, err := suite.service.ConvertAmount(ctx, there, "EUR", "USD")
	suite.Require().NoError(err)

	// With exact-inverse rates the only drift is the 2dp rounding per leg.
	drift := back.Sub(decimal.RequireFromString("100")).Abs()
	suite.True(drift.LessThanOrEqual(decimal.RequireFromString("0.01")), "round trip drifted by %s", drift)
}

func (suite *FXServiceTestSuite) TestQuote() {
	ctx := context.Background()
	suite.cache.Put(suite.usdTable(suite.now))

	result, err := suite.service.Quote(ctx, decimal.RequireFromString("200"), "USD", "EUR")

	suite.NoError(err)
	suite.True(result.TargetAmount.Equal(decimal.RequireFromString("170.00")))
	suite.True(result.ExchangeRate.Equal(decimal.RequireFromString("0.85")))
	suite.True(result.Fees.TotalFee.Equal(decimal.RequireFromString("5.99")))
	suite.True(result.TotalCost.Equal(decimal.RequireFromString("205.99")))
}

func (suite *FXServiceTestSuite) TestQuote_RejectsNonPositiveAmount() {
	ctx := context.Background()
	_, err := suite.service.Quote(ctx, decimal.Zero, "USD", "EUR")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestFXServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FXServiceTestSuite))
}
