package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
)

// CreateTransactionRequest defines the payload for a new transfer.
type CreateTransactionRequest struct {
	BeneficiaryID  string          `json:"beneficiaryID" binding:"required"`
	SourceAmount   decimal.Decimal `json:"sourceAmount" binding:"required"`
	SourceCurrency string          `json:"sourceCurrency" binding:"required,currencycode"`
	Purpose        string          `json:"purpose" binding:"required"`
}

// UpdateTransactionStatusRequest defines the payload for an admin status change.
type UpdateTransactionStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"adminNotes"`
}

// ListTransactionsParams defines query parameters for listing a user's transactions.
type ListTransactionsParams struct {
	Search    string `form:"search"`
	DateRange string `form:"dateRange" binding:"omitempty,oneof=30days 90days year"`
	Limit     int    `form:"limit,default=50"`
}

// ListAllTransactionsParams defines query parameters for the admin listing.
type ListAllTransactionsParams struct {
	Limit int `form:"limit,default=100"`
}

// TransactionResponse defines the structure for API responses containing transaction details.
type TransactionResponse struct {
	TransactionID  string          `json:"transactionID"`
	BeneficiaryID  string          `json:"beneficiaryID"`
	SourceAmount   decimal.Decimal `json:"sourceAmount"`
	SourceCurrency string          `json:"sourceCurrency"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	TargetCurrency string          `json:"targetCurrency"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
	BaseFee        decimal.Decimal `json:"baseFee"`
	ExchangeFee    decimal.Decimal `json:"exchangeFee"`
	TotalFee       decimal.Decimal `json:"totalFee"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	Purpose        string          `json:"purpose"`
	Status         string          `json:"status"`
	IsHighRisk     bool            `json:"isHighRisk"`
	AdminNotes     string          `json:"adminNotes,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  t.TransactionID,
		BeneficiaryID:  t.BeneficiaryID,
		SourceAmount:   t.SourceAmount,
		SourceCurrency: t.SourceCurrency,
		TargetAmount:   t.TargetAmount,
		TargetCurrency: t.TargetCurrency,
		ExchangeRate:   t.ExchangeRate,
		BaseFee:        t.BaseFee,
		ExchangeFee:    t.ExchangeFee,
		TotalFee:       t.TotalFee,
		TotalCost:      t.TotalCost(),
		Purpose:        t.Purpose,
		Status:         string(t.Status),
		IsHighRisk:     t.IsHighRisk,
		AdminNotes:     t.AdminNotes,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// ListTransactionsResponse wraps a list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of domain.Transaction to ListTransactionsResponse DTO
func ToListTransactionsResponse(items []domain.Transaction) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(items))
	for i := range items {
		responses[i] = ToTransactionResponse(&items[i])
	}
	return ListTransactionsResponse{Transactions: responses}
}
