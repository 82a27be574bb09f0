package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionStatus_IsValid(t *testing.T) {
	testCases := []struct {
		status TransactionStatus
		valid  bool
	}{
		{StatusPending, true},
		{StatusProcessing, true},
		{StatusCompleted, true},
		{StatusFailed, true},
		{TransactionStatus("cancelled"), false},
		{TransactionStatus("PENDING"), false},
		{TransactionStatus(""), false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.valid, tc.status.IsValid(), "status %q", tc.status)
	}
}

func TestTransactionStatus_IsTerminal(t *testing.T) {
	testCases := []struct {
		status   TransactionStatus
		terminal bool
	}{
		{StatusPending, false},
		{StatusProcessing, false},
		{StatusCompleted, true},
		{StatusFailed, true},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.terminal, tc.status.IsTerminal(), "status %q", tc.status)
	}
}

func TestTransaction_TotalCost(t *testing.T) {
	txn := Transaction{
		SourceAmount: decimal.RequireFromString("200.00"),
		TotalFee:     decimal.RequireFromString("5.99"),
	}
	assert.True(t, txn.TotalCost().Equal(decimal.RequireFromString("205.99")))
}
