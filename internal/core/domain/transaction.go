package domain

import "github.com/shopspring/decimal"

// TransactionStatus is the lifecycle state of a transfer transaction.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "pending"
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
)

// IsValid reports whether s is one of the four known statuses.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Transaction is a money-transfer record. The pricing snapshot (target
// amount, rate, fees) is frozen at creation; only Status, AdminNotes and
// UpdatedAt mutate afterwards, and only through the transaction service.
// Transactions are never physically deleted.
type Transaction struct {
	TransactionID  string            `json:"transactionID"`
	OwnerUserID    string            `json:"ownerUserID"`
	BeneficiaryID  string            `json:"beneficiaryID"`
	SourceAmount   decimal.Decimal   `json:"sourceAmount"`
	SourceCurrency string            `json:"sourceCurrency"`
	TargetAmount   decimal.Decimal   `json:"targetAmount"`
	TargetCurrency string            `json:"targetCurrency"`
	ExchangeRate   decimal.Decimal   `json:"exchangeRate"`
	BaseFee        decimal.Decimal   `json:"baseFee"`
	ExchangeFee    decimal.Decimal   `json:"exchangeFee"`
	TotalFee       decimal.Decimal   `json:"totalFee"`
	Purpose        string            `json:"purpose"`
	Status         TransactionStatus `json:"status"`
	IsHighRisk     bool              `json:"isHighRisk"`
	AdminNotes     string            `json:"adminNotes,omitempty"`
	AuditFields
}

// TotalCost is the amount the sender pays: source amount plus all fees.
func (t Transaction) TotalCost() decimal.Decimal {
	return t.SourceAmount.Add(t.TotalFee)
}
