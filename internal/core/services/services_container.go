package services

import (
	"github.com/swiftremit/money_transfer_app/internal/core/ports/providers"
	portrepo "github.com/swiftremit/money_transfer_app/internal/core/ports/repositories"
	portsvc "github.com/swiftremit/money_transfer_app/internal/core/ports/services"
	"github.com/swiftremit/money_transfer_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portrepo.RepositoryProvider, rateProvider providers.RateProvider) *portsvc.ServiceContainer {
	container := &portsvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	// The FX engine owns the in-memory rate cache; everything downstream
	// prices through it.
	rateCache := NewRateCache(cfg.RateFreshnessWindow)
	container.FX = NewFXService(rateCache, rateProvider, repos.RateSnapshotRepo)

	container.Beneficiary = NewBeneficiaryService(repos.BeneficiaryRepo, repos.TransactionRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.BeneficiaryRepo, container.FX)
	container.Reporting = NewReportingService(repos.UserRepo, repos.TransactionRepo)

	return container
}

// Compile-time interface implementation checks
var (
	_ portsvc.UserSvcFacade        = (*UserService)(nil)
	_ portsvc.FXSvcFacade          = (*FXService)(nil)
	_ portsvc.BeneficiarySvcFacade = (*BeneficiaryService)(nil)
	_ portsvc.TransactionSvcFacade = (*TransactionService)(nil)
	_ portsvc.ReportingSvcFacade   = (*ReportingService)(nil)
)
