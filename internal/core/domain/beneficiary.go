package domain

// Beneficiary is a named payee owned by exactly one user. Transactions
// reference beneficiaries by ID but never own them.
type Beneficiary struct {
	BeneficiaryID string `json:"beneficiaryID"`
	OwnerUserID   string `json:"ownerUserID"`
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	Country       string `json:"country"`  // ISO-3166 alpha-2
	Currency      string `json:"currency"` // ISO-4217
	AuditFields
}
