package services

import (
	"context"
	"fmt"

	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	portrepo "github.com/swiftremit/money_transfer_app/internal/core/ports/repositories"
)

// ReportingService serves aggregate views for the admin surface.
type ReportingService struct {
	BaseService
	userRepo portrepo.UserRepositoryFacade
	txnRepo  portrepo.TransactionRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(userRepo portrepo.UserRepositoryFacade, txnRepo portrepo.TransactionRepositoryFacade) *ReportingService {
	return &ReportingService{
		userRepo: userRepo,
		txnRepo:  txnRepo,
	}
}

// GetAdminStats returns platform-wide counts, completed transfer volume and
// the transactions currently flagged for review.
func (s *ReportingService) GetAdminStats(ctx context.Context) (*domain.AdminStats, error) {
	userCount, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	txnCount, err := s.txnRepo.CountTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	totalVolume, err := s.txnRepo.SumCompletedVolume(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum completed volume: %w", err)
	}

	highRisk, err := s.txnRepo.ListHighRiskTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list high-risk transactions: %w", err)
	}

	return &domain.AdminStats{
		UserCount:            userCount,
		TransactionCount:     txnCount,
		TotalVolume:          totalVolume,
		HighRiskTransactions: highRisk,
	}, nil
}
