package services

import (
	"context"

	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	"github.com/swiftremit/money_transfer_app/internal/dto"
)

// BeneficiaryReaderSvc defines read operations for beneficiary data.
// Every operation is scoped to the calling user: a beneficiary owned by
// someone else is indistinguishable from one that does not exist.
type BeneficiaryReaderSvc interface {
	// GetBeneficiary retrieves a beneficiary owned by the caller.
	GetBeneficiary(ctx context.Context, beneficiaryID, callerUserID string) (*domain.Beneficiary, error)

	// ListBeneficiaries retrieves all of the caller's beneficiaries.
	ListBeneficiaries(ctx context.Context, callerUserID string) ([]domain.Beneficiary, error)
}

// BeneficiaryWriterSvc defines write operations for beneficiary data
type BeneficiaryWriterSvc interface {
	// CreateBeneficiary persists a new beneficiary owned by the caller.
	CreateBeneficiary(ctx context.Context, req dto.CreateBeneficiaryRequest, callerUserID string) (*domain.Beneficiary, error)

	// UpdateBeneficiary changes a beneficiary the caller owns.
	UpdateBeneficiary(ctx context.Context, beneficiaryID string, req dto.UpdateBeneficiaryRequest, callerUserID string) (*domain.Beneficiary, error)

	// DeleteBeneficiary removes a beneficiary the caller owns, provided no
	// transaction references it.
	DeleteBeneficiary(ctx context.Context, beneficiaryID, callerUserID string) error
}

// BeneficiarySvcFacade combines all beneficiary-related service interfaces
type BeneficiarySvcFacade interface {
	BeneficiaryReaderSvc
	BeneficiaryWriterSvc
}
