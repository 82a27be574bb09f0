package domain

import "github.com/shopspring/decimal"

// AdminStats is the aggregate view served to administrators: platform-wide
// counts, the sum of completed transfer volume (in nominal source-currency
// units), and the transactions held for manual review.
type AdminStats struct {
	UserCount            int             `json:"userCount"`
	TransactionCount     int             `json:"transactionCount"`
	TotalVolume          decimal.Decimal `json:"totalVolume"`
	HighRiskTransactions []Transaction   `json:"highRiskTransactions"`
}
