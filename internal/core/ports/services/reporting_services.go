package services

import (
	"context"

	"github.com/swiftremit/money_transfer_app/internal/core/domain"
)

// ReportingSvcFacade serves aggregate views to administrators.
type ReportingSvcFacade interface {
	// GetAdminStats returns platform-wide counts, completed transfer volume
	// and the transactions held for review.
	GetAdminStats(ctx context.Context) (*domain.AdminStats, error)
}
