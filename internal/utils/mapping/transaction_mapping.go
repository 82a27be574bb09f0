package mapping

import (
	"database/sql"

	"github.com/swiftremit/money_transfer_app/internal/core/domain"
	"github.com/swiftremit/money_transfer_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:  d.TransactionID,
		OwnerUserID:    d.OwnerUserID,
		BeneficiaryID:  d.BeneficiaryID,
		SourceAmount:   d.SourceAmount,
		SourceCurrency: d.SourceCurrency,
		TargetAmount:   d.TargetAmount,
		TargetCurrency: d.TargetCurrency,
		ExchangeRate:   d.ExchangeRate,
		BaseFee:        d.BaseFee,
		ExchangeFee:    d.ExchangeFee,
		TotalFee:       d.TotalFee,
		Purpose:        d.Purpose,
		Status:         string(d.Status),
		IsHighRisk:     d.IsHighRisk,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.AdminNotes != "" {
		m.AdminNotes = sql.NullString{String: d.AdminNotes, Valid: true}
	}
	return m
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:  m.TransactionID,
		OwnerUserID:    m.OwnerUserID,
		BeneficiaryID:  m.BeneficiaryID,
		SourceAmount:   m.SourceAmount,
		SourceCurrency: m.SourceCurrency,
		TargetAmount:   m.TargetAmount,
		TargetCurrency: m.TargetCurrency,
		ExchangeRate:   m.ExchangeRate,
		BaseFee:        m.BaseFee,
		ExchangeFee:    m.ExchangeFee,
		TotalFee:       m.TotalFee,
		Purpose:        m.Purpose,
		Status:         domain.TransactionStatus(m.Status),
		IsHighRisk:     m.IsHighRisk,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.AdminNotes.Valid {
		d.AdminNotes = m.AdminNotes.String
	}
	return d
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
