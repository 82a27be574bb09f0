package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/swiftremit/money_transfer_app/internal/apperrors"
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	portrepo "github.com/swiftremit/money_transfer_app/internal/core/ports/repositories"
	"github.com/swiftremit/money_transfer_app/internal/dto"
)

// BeneficiaryService manages the owner-scoped beneficiary registry. A
// beneficiary owned by someone else is reported as not found, never as
// forbidden, so the API does not leak which IDs exist.
type BeneficiaryService struct {
	BaseService
	beneficiaryRepo portrepo.BeneficiaryRepositoryFacade
	txnRepo         portrepo.TransactionRepositoryFacade
}

// NewBeneficiaryService creates a new BeneficiaryService.
func NewBeneficiaryService(beneficiaryRepo portrepo.BeneficiaryRepositoryFacade, txnRepo portrepo.TransactionRepositoryFacade) *BeneficiaryService {
	return &BeneficiaryService{
		beneficiaryRepo: beneficiaryRepo,
		txnRepo:         txnRepo,
	}
}

// getOwned fetches a beneficiary and verifies caller ownership, collapsing
// both absence and foreign ownership into ErrNotFound.
func (s *BeneficiaryService) getOwned(ctx context.Context, beneficiaryID, callerUserID string) (*domain.Beneficiary, error) {
	beneficiary, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, beneficiaryID)
	if err != nil {
		return nil, fmt.Errorf("%w: beneficiary %s not found", apperrors.ErrNotFound, beneficiaryID)
	}
	if beneficiary.OwnerUserID != callerUserID {
		return nil, fmt.Errorf("%w: beneficiary %s not found", apperrors.ErrNotFound, beneficiaryID)
	}
	return beneficiary, nil
}

// GetBeneficiary retrieves a beneficiary owned by the caller.
func (s *BeneficiaryService) GetBeneficiary(ctx context.Context, beneficiaryID, callerUserID string) (*domain.Beneficiary, error) {
	return s.getOwned(ctx, beneficiaryID, callerUserID)
}

// ListBeneficiaries retrieves all of the caller's beneficiaries, newest first.
func (s *BeneficiaryService) ListBeneficiaries(ctx context.Context, callerUserID string) ([]domain.Beneficiary, error) {
	items, err := s.beneficiaryRepo.ListBeneficiariesByOwner(ctx, callerUserID)
	if err != nil {
		s.LogError(ctx, err, "failed to list beneficiaries", "ownerUserID", callerUserID)
		return nil, fmt.Errorf("failed to list beneficiaries: %w", err)
	}
	return items, nil
}

// CreateBeneficiary persists a new beneficiary owned by the caller.
func (s *BeneficiaryService) CreateBeneficiary(ctx context.Context, req dto.CreateBeneficiaryRequest, callerUserID string) (*domain.Beneficiary, error) {
	now := time.Now()
	beneficiary := domain.Beneficiary{
		BeneficiaryID: uuid.NewString(),
		OwnerUserID:   callerUserID,
		Name:          strings.TrimSpace(req.Name),
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		Country:       strings.ToUpper(req.Country),
		Currency:      strings.ToUpper(req.Currency),
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if beneficiary.Name == "" {
		return nil, fmt.Errorf("%w: beneficiary name cannot be blank", apperrors.ErrValidation)
	}

	if err := s.beneficiaryRepo.SaveBeneficiary(ctx, beneficiary); err != nil {
		s.LogError(ctx, err, "failed to save beneficiary", "ownerUserID", callerUserID)
		return nil, fmt.Errorf("failed to save beneficiary: %w", err)
	}
	s.LogInfo(ctx, "beneficiary created", "beneficiaryID", beneficiary.BeneficiaryID)
	return &beneficiary, nil
}

// UpdateBeneficiary changes a beneficiary the caller owns. Only fields
// present in the request are modified.
func (s *BeneficiaryService) UpdateBeneficiary(ctx context.Context, beneficiaryID string, req dto.UpdateBeneficiaryRequest, callerUserID string) (*domain.Beneficiary, error) {
	beneficiary, err := s.getOwned(ctx, beneficiaryID, callerUserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: beneficiary name cannot be blank", apperrors.ErrValidation)
		}
		beneficiary.Name = name
	}
	if req.AccountNumber != nil {
		beneficiary.AccountNumber = strings.TrimSpace(*req.AccountNumber)
	}
	if req.Country != nil {
		beneficiary.Country = strings.ToUpper(*req.Country)
	}
	if req.Currency != nil {
		beneficiary.Currency = strings.ToUpper(*req.Currency)
	}
	beneficiary.UpdatedAt = time.Now()

	if err := s.beneficiaryRepo.UpdateBeneficiary(ctx, *beneficiary); err != nil {
		s.LogError(ctx, err, "failed to update beneficiary", "beneficiaryID", beneficiaryID)
		return nil, fmt.Errorf("failed to update beneficiary: %w", err)
	}
	return beneficiary, nil
}

// DeleteBeneficiary removes a beneficiary the caller owns. Beneficiaries
// referenced by any transaction cannot be deleted, keeping historical
// transfers resolvable.
func (s *BeneficiaryService) DeleteBeneficiary(ctx context.Context, beneficiaryID, callerUserID string) error {
	if _, err := s.getOwned(ctx, beneficiaryID, callerUserID); err != nil {
		return err
	}

	count, err := s.txnRepo.CountTransactionsForBeneficiary(ctx, beneficiaryID)
	if err != nil {
		s.LogError(ctx, err, "failed to count transactions for beneficiary", "beneficiaryID", beneficiaryID)
		return fmt.Errorf("failed to check beneficiary references: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: beneficiary is referenced by %d transaction(s)", apperrors.ErrValidation, count)
	}

	if err := s.beneficiaryRepo.DeleteBeneficiary(ctx, beneficiaryID); err != nil {
		s.LogError(ctx, err, "failed to delete beneficiary", "beneficiaryID", beneficiaryID)
		return fmt.Errorf("failed to delete beneficiary: %w", err)
	}
	s.LogInfo(ctx, "beneficiary deleted", "beneficiaryID", beneficiaryID)
	return nil
}
