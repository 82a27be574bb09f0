package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"8.455", "8.46"},
		{"8.454", "8.45"},
		{"8.445", "8.45"},
		{"170", "170"},
		{"0.005", "0.01"},
		{"123.456789", "123.46"},
	}
	for _, tc := range testCases {
		got := RoundMoney(decimal.RequireFromString(tc.in))
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "RoundMoney(%s) = %s, want %s", tc.in, got, tc.want)
	}
}
