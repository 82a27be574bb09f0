package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/swiftremit/money_transfer_app/internal/apperrors"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	portrepo "github.com/swiftremit/money_transfer_app/internal/core/ports/repositories"
	portsvc "github.com/swiftremit/money_transfer_app/internal/core/ports/services"
	"github.com/swiftremit/money_transfer_app/internal/dto"
)

// highRiskThreshold is the nominal source amount above which a transfer is
// flagged for manual review. Compared against the raw source amount without
// currency normalization.
var highRiskThreshold = decimal.NewFromInt(10000)

// TransactionService manages the transfer lifecycle: creation with a frozen
// pricing snapshot, admin status transitions, and the owner-scoped query
// surface.
type TransactionService struct {
	BaseService
	txnRepo         portrepo.TransactionRepositoryFacade
	beneficiaryRepo portrepo.BeneficiaryRepositoryFacade
	fxService       portsvc.FXSvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portrepo.TransactionRepositoryFacade, beneficiaryRepo portrepo.BeneficiaryRepositoryFacade, fxService portsvc.FXSvcFacade) *TransactionService {
	return &TransactionService{
		txnRepo:         txnRepo,
		beneficiaryRepo: beneficiaryRepo,
		fxService:       fxService,
	}
}

// CreateTransaction prices and persists a new transfer for the caller.
// The beneficiary must exist and belong to the caller; a foreign or unknown
// beneficiary is reported uniformly as not found. Pricing (rate, target
// amount, fees), the risk flag and the initial status are all frozen here.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, callerUserID string) (*domain.Transaction, error) {
	if !req.SourceAmount.IsPositive() {
		return nil, fmt.Errorf("%w: source amount must be positive", apperrors.ErrValidation)
	}

	beneficiary, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, req.BeneficiaryID)
	if err != nil {
		s.LogWarn(ctx, "transaction creation against unknown beneficiary", "beneficiaryID", req.BeneficiaryID)
		return nil, fmt.Errorf("%w: beneficiary %s not found", apperrors.ErrNotFound, req.BeneficiaryID)
	}
	if beneficiary.OwnerUserID != callerUserID {
		// Ownership mismatch is indistinguishable from absence.
		return nil, fmt.Errorf("%w: beneficiary %s not found", apperrors.ErrNotFound, req.BeneficiaryID)
	}

	rate, err := s.fxService.GetExchangeRate(ctx, req.SourceCurrency, beneficiary.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to price transaction: %w", err)
	}
	targetAmount, err := s.fxService.ConvertAmount(ctx, req.SourceAmount, req.SourceCurrency, beneficiary.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to price transaction: %w", err)
	}
	fees := s.fxService.CalculateFees(req.SourceAmount)

	isHighRisk := req.SourceAmount.GreaterThan(highRiskThreshold)
	status := domain.StatusCompleted
	if isHighRisk {
		status = domain.StatusPending
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		OwnerUserID:    callerUserID,
		BeneficiaryID:  beneficiary.BeneficiaryID,
		SourceAmount:   req.SourceAmount,
		SourceCurrency: req.SourceCurrency,
		TargetAmount:   targetAmount,
		TargetCurrency: beneficiary.Currency,
		ExchangeRate:   rate,
		BaseFee:        fees.BaseFee,
		ExchangeFee:    fees.ExchangeFee,
		TotalFee:       fees.TotalFee,
		Purpose:        req.Purpose,
		Status:         status,
		IsHighRisk:     isHighRisk,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to save transaction", "transactionID", txn.TransactionID)
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction created",
		"transactionID", txn.TransactionID,
		"status", string(txn.Status),
		"isHighRisk", txn.IsHighRisk,
	)
	return &txn, nil
}

// UpdateStatus transitions a transaction to a new status, recording optional
// admin notes. Unknown statuses and transitions out of a terminal status are
// rejected.
func (s *TransactionService) UpdateStatus(ctx context.Context, transactionID string, req dto.UpdateTransactionStatusRequest) (*domain.Transaction, error) {
	newStatus := domain.TransactionStatus(req.Status)
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidStatus, req.Status)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: transaction %s is already %s", apperrors.ErrInvalidStatus, transactionID, txn.Status)
	}

	now := time.Now()
	if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, newStatus, req.AdminNotes, now); err != nil {
		s.LogError(ctx, err, "failed to update transaction status", "transactionID", transactionID)
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	s.LogInfo(ctx, "transaction status updated",
		"transactionID", transactionID,
		"from", string(txn.Status),
		"to", string(newStatus),
	)
	txn.Status = newStatus
	txn.AdminNotes = req.AdminNotes
	txn.UpdatedAt = now
	return txn, nil
}

// GetTransaction retrieves a transaction visible to the caller. Non-admin
// callers can only see their own transactions; anything else reads as not
// found.
func (s *TransactionService) GetTransaction(ctx context.Context, transactionID, callerUserID string, callerIsAdmin bool) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if !callerIsAdmin && txn.OwnerUserID != callerUserID {
		return nil, fmt.Errorf("%w: transaction %s not found", apperrors.ErrNotFound, transactionID)
	}
	return txn, nil
}

// ListTransactions retrieves the caller's transactions, newest first,
// optionally narrowed by beneficiary-name search and a relative date range.
func (s *TransactionService) ListTransactions(ctx context.Context, callerUserID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portrepo.TransactionListFilter{
		Search: params.Search,
		Since:  dateRangeToSince(params.DateRange, time.Now()),
		Limit:  params.Limit,
	}
	txns, err := s.txnRepo.ListTransactionsByOwner(ctx, callerUserID, filter)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions", "ownerUserID", callerUserID)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// ListAllTransactions retrieves transactions across all users, newest first.
func (s *TransactionService) ListAllTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListAllTransactions(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "failed to list all transactions")
		return nil, fmt.Errorf("failed to list all transactions: %w", err)
	}
	return txns, nil
}

// dateRangeToSince maps a relative date-range token to an absolute lower
// bound. An empty or unknown token means no bound.
func dateRangeToSince(dateRange string, now time.Time) *time.Time {
	var since time.Time
	switch dateRange {
	case "30days":
		since = now.AddDate(0, 0, -30)
	case "90days":
		since = now.AddDate(0, 0, -90)
	case "year":
		since = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &since
}
