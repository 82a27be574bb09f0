package mapping

import (
	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	"github.com/swiftremit/money_transfer_app/internal/models"
)

// ToModelBeneficiary converts a domain Beneficiary to a model Beneficiary
func ToModelBeneficiary(d domain.Beneficiary) models.Beneficiary {
	return models.Beneficiary{
		BeneficiaryID: d.BeneficiaryID,
		OwnerUserID:   d.OwnerUserID,
		Name:          d.Name,
		AccountNumber: d.AccountNumber,
		Country:       d.Country,
		Currency:      d.Currency,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBeneficiary converts a model Beneficiary to a domain Beneficiary
func ToDomainBeneficiary(m models.Beneficiary) domain.Beneficiary {
	return domain.Beneficiary{
		BeneficiaryID: m.BeneficiaryID,
		OwnerUserID:   m.OwnerUserID,
		Name:          m.Name,
		AccountNumber: m.AccountNumber,
		Country:       m.Country,
		Currency:      m.Currency,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBeneficiarySlice converts a slice of model Beneficiaries to domain Beneficiaries
func ToDomainBeneficiarySlice(ms []models.Beneficiary) []domain.Beneficiary {
	ds := make([]domain.Beneficiary, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBeneficiary(m)
	}
	return ds
}
