package services

import (
	"context"

	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	"github.com/swiftremit/money_transfer_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransaction retrieves a transaction visible to the caller: its owner,
	// or any admin.
	GetTransaction(ctx context.Context, transactionID, callerUserID string, callerIsAdmin bool) (*domain.Transaction, error)

	// ListTransactions retrieves the caller's transactions, newest first,
	// optionally filtered by beneficiary-name search and a relative date range.
	ListTransactions(ctx context.Context, callerUserID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)

	// ListAllTransactions retrieves transactions across all users (admin only
	// at the handler layer), newest first.
	ListAllTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines lifecycle operations for transactions
type TransactionWriterSvc interface {
	// CreateTransaction prices and persists a new transfer. The pricing
	// snapshot, risk flag and initial status are frozen at creation.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, callerUserID string) (*domain.Transaction, error)

	// UpdateStatus transitions a transaction to a new status with optional
	// admin notes. Terminal statuses cannot be left.
	UpdateStatus(ctx context.Context, transactionID string, req dto.UpdateTransactionStatusRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
