package models

// Beneficiary mirrors a row of the beneficiaries table.
type Beneficiary struct {
	BeneficiaryID string `db:"beneficiary_id"`
	OwnerUserID   string `db:"owner_user_id"`
	Name          string `db:"name"`
	AccountNumber string `db:"account_number"`
	Country       string `db:"country"`
	Currency      string `db:"currency"`
	AuditFields
}
