package repositories

import (
	"context"

	"github.com/swiftremit/money_transfer_app/internal/core/domain"
)

// BeneficiaryReader defines read operations for beneficiary data
type BeneficiaryReader interface {
	// FindBeneficiaryByID retrieves a beneficiary by its ID.
	FindBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error)

	// ListBeneficiariesByOwner retrieves all beneficiaries owned by a user,
	// newest first.
	ListBeneficiariesByOwner(ctx context.Context, ownerUserID string) ([]domain.Beneficiary, error)
}

// BeneficiaryWriter defines write operations for beneficiary data
type BeneficiaryWriter interface {
	// SaveBeneficiary persists a new beneficiary.
	SaveBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error

	// UpdateBeneficiary overwrites the mutable fields of an existing beneficiary.
	UpdateBeneficiary(ctx context.Context, beneficiary domain.Beneficiary) error

	// DeleteBeneficiary removes a beneficiary row.
	DeleteBeneficiary(ctx context.Context, beneficiaryID string) error
}

// BeneficiaryRepositoryFacade combines all beneficiary-related repository interfaces
type BeneficiaryRepositoryFacade interface {
	BeneficiaryReader
	BeneficiaryWriter
}
