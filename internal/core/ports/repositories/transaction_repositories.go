package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
)

// TransactionListFilter narrows an owner-scoped transaction listing.
// Search matches against the referenced beneficiary's name; Since, when set,
// excludes transactions created before it. Limit <= 0 means no limit.
type TransactionListFilter struct {
	Search string
	Since  *time.Time
	Limit  int
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByOwner retrieves a user's transactions, newest first.
	ListTransactionsByOwner(ctx context.Context, ownerUserID string, filter TransactionListFilter) ([]domain.Transaction, error)

	// ListAllTransactions retrieves transactions across all users, newest
	// first. Limit <= 0 means no limit.
	ListAllTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)

	// ListHighRiskTransactions retrieves all high-risk transactions, newest first.
	ListHighRiskTransactions(ctx context.Context) ([]domain.Transaction, error)

	// CountTransactions returns the total number of transactions.
	CountTransactions(ctx context.Context) (int, error)

	// CountTransactionsForBeneficiary returns how many transactions reference
	// the given beneficiary.
	CountTransactionsForBeneficiary(ctx context.Context, beneficiaryID string) (int, error)

	// SumCompletedVolume returns the sum of source amounts over completed
	// transactions.
	SumCompletedVolume(ctx context.Context) (decimal.Decimal, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction with its frozen pricing snapshot.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionStatus overwrites status, admin notes and updatedAt for
	// an existing transaction. No other column may change after creation.
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, adminNotes string, updatedAt time.Time) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
