package dto

import (
	"github.com/shopspring/decimal"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
)

// AdminStatsResponse defines the structure for the admin stats endpoint.
type AdminStatsResponse struct {
	UserCount            int                   `json:"userCount"`
	TransactionCount     int                   `json:"transactionCount"`
	TotalVolume          decimal.Decimal       `json:"totalVolume"`
	HighRiskTransactions []TransactionResponse `json:"highRiskTransactions"`
}

// ToAdminStatsResponse converts a domain.AdminStats to AdminStatsResponse DTO
func ToAdminStatsResponse(stats *domain.AdminStats) AdminStatsResponse {
	highRisk := make([]TransactionResponse, len(stats.HighRiskTransactions))
	for i := range stats.HighRiskTransactions {
		highRisk[i] = ToTransactionResponse(&stats.HighRiskTransactions[i])
	}
	return AdminStatsResponse{
		UserCount:            stats.UserCount,
		TransactionCount:     stats.TransactionCount,
		TotalVolume:          stats.TotalVolume,
		HighRiskTransactions: highRisk,
	}
}
