package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of the transactions table.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	OwnerUserID    string          `db:"owner_user_id"`
	BeneficiaryID  string          `db:"beneficiary_id"`
	SourceAmount   decimal.Decimal `db:"source_amount"`
	SourceCurrency string          `db:"source_currency"`
	TargetAmount   decimal.Decimal `db:"target_amount"`
	TargetCurrency string          `db:"target_currency"`
	ExchangeRate   decimal.Decimal `db:"exchange_rate"`
	BaseFee        decimal.Decimal `db:"base_fee"`
	ExchangeFee    decimal.Decimal `db:"exchange_fee"`
	TotalFee       decimal.Decimal `db:"total_fee"`
	Purpose        string          `db:"purpose"`
	Status         string          `db:"status"`
	IsHighRisk     bool            `db:"is_high_risk"`
	AdminNotes     sql.NullString  `db:"admin_notes"`
	AuditFields
}
