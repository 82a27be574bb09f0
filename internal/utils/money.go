package utils

import "github.com/shopspring/decimal"

// RoundMoney rounds an amount to 2 decimal places, half away from zero.
// For the positive amounts this system deals in that is round-half-up,
// matching currency display conventions.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
