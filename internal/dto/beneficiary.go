package dto

import (
	"time"

	"github.com/swiftremit/money_transfer_app/internal/core/domain"
)

// CreateBeneficiaryRequest defines the payload for adding a beneficiary.
type CreateBeneficiaryRequest struct {
	Name          string `json:"name" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	Country       string `json:"country" binding:"required,len=2,uppercase"`
	Currency      string `json:"currency" binding:"required,currencycode"`
}

// UpdateBeneficiaryRequest defines the fields allowed to change on a
// beneficiary. Pointers distinguish omitted fields from zero values.
type UpdateBeneficiaryRequest struct {
	Name          *string `json:"name"`
	AccountNumber *string `json:"accountNumber"`
	Country       *string `json:"country" binding:"omitempty,len=2,uppercase"`
	Currency      *string `json:"currency" binding:"omitempty,currencycode"`
}

// BeneficiaryResponse defines the structure for API responses containing beneficiary details.
type BeneficiaryResponse struct {
	BeneficiaryID string    `json:"beneficiaryID"`
	Name          string    `json:"name"`
	AccountNumber string    `json:"accountNumber"`
	Country       string    `json:"country"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToBeneficiaryResponse converts a domain.Beneficiary to BeneficiaryResponse DTO
func ToBeneficiaryResponse(b *domain.Beneficiary) BeneficiaryResponse {
	return BeneficiaryResponse{
		BeneficiaryID: b.BeneficiaryID,
		Name:          b.Name,
		AccountNumber: b.AccountNumber,
		Country:       b.Country,
		Currency:      b.Currency,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// ListBeneficiariesResponse wraps the list of beneficiaries.
type ListBeneficiariesResponse struct {
	Beneficiaries []BeneficiaryResponse `json:"beneficiaries"`
}

// ToListBeneficiariesResponse converts a slice of domain.Beneficiary to ListBeneficiariesResponse DTO
func ToListBeneficiariesResponse(items []domain.Beneficiary) ListBeneficiariesResponse {
	responses := make([]BeneficiaryResponse, len(items))
	for i := range items {
		responses[i] = ToBeneficiaryResponse(&items[i])
	}
	return ListBeneficiariesResponse{Beneficiaries: responses}
}
