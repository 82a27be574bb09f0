package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
)

// RatesParams defines query parameters for fetching a rate table.
type RatesParams struct {
	Base string `form:"base,default=USD" binding:"omitempty,currencycode"`
}

// RatesResponse defines the structure for API responses containing a rate table.
type RatesResponse struct {
	Base        string                     `json:"base"`
	Rates       map[string]decimal.Decimal `json:"rates"`
	LastUpdated time.Time                  `json:"lastUpdated"`
}

// ToRatesResponse converts a domain.RateTable to RatesResponse DTO
func ToRatesResponse(table domain.RateTable) RatesResponse {
	return RatesResponse{
		Base:        table.BaseCurrency,
		Rates:       table.Rates,
		LastUpdated: table.FetchedAt,
	}
}

// ConvertParams defines query parameters for a conversion quote.
type ConvertParams struct {
	Amount decimal.Decimal `form:"amount" binding:"required"`
	From   string          `form:"from" binding:"required,currencycode"`
	To     string          `form:"to" binding:"required,currencycode"`
}

// ConversionResponse defines the structure for API responses containing a quote.
type ConversionResponse struct {
	SourceAmount   decimal.Decimal `json:"sourceAmount"`
	SourceCurrency string          `json:"sourceCurrency"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	TargetCurrency string          `json:"targetCurrency"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	BaseFee        decimal.Decimal `json:"baseFee"`
	ExchangeFee    decimal.Decimal `json:"exchangeFee"`
	TotalFee       decimal.Decimal `json:"totalFee"`
	TotalCost      decimal.Decimal `json:"totalCost"`
}

// ToConversionResponse converts a domain.ConversionResult to ConversionResponse DTO
func ToConversionResponse(r domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		SourceAmount:   r.SourceAmount,
		SourceCurrency: r.SourceCurrency,
		TargetAmount:   r.TargetAmount,
		TargetCurrency: r.TargetCurrency,
		ExchangeRate:   r.ExchangeRate,
		BaseFee:        r.Fees.BaseFee,
		ExchangeFee:    r.Fees.ExchangeFee,
		TotalFee:       r.Fees.TotalFee,
		TotalCost:      r.TotalCost,
	}
}
