package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateWithdrawal(t *testing.T) {
	balance := decimal.RequireFromString("100")

	testCases := []struct {
		name     string
		amount   string
		expected error
	}{
		{
			name:   "valid amount within balance",
			amount: "50",
		},
		{
			name:   "exactly the balance is allowed",
			amount: "100",
		},
		{
			name:     "amount exceeds balance",
			amount:   "100.01",
			expected: ErrInsufficientFunds,
		},
		{
			name:     "zero amount",
			amount:   "0",
			expected: ErrAmountNotPositive,
		},
		{
			name:     "negative amount",
			amount:   "-5",
			expected: ErrAmountNotPositive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateWithdrawal(decimal.RequireFromString(tc.amount), balance)
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected error %v but got %v", tc.expected, err)
			}
		})
	}
}

func TestValidateTransfer(t *testing.T) {
	balance := decimal.RequireFromString("100")
	ownEmail := "user@example.com"

	testCases := []struct {
		name      string
		amount    string
		recipient string
		expected  error
	}{
		{
			name:      "valid transfer",
			amount:    "10",
			recipient: "friend@example.com",
		},
		{
			name:      "missing recipient",
			amount:    "10",
			recipient: "   ",
			expected:  ErrMissingRecipient,
		},
		{
			name:      "self transfer is rejected",
			amount:    "10",
			recipient: "user@example.com",
			expected:  ErrSelfTransfer,
		},
		{
			name:      "self transfer is case-insensitive and trimmed",
			amount:    "10",
			recipient: "  USER@Example.COM  ",
			expected:  ErrSelfTransfer,
		},
		{
			name:      "amount exceeds balance",
			amount:    "200",
			recipient: "friend@example.com",
			expected:  ErrInsufficientFunds,
		},
		{
			name:      "non-positive amount",
			amount:    "0",
			recipient: "friend@example.com",
			expected:  ErrAmountNotPositive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransfer(decimal.RequireFromString(tc.amount), balance, tc.recipient, ownEmail)
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected error %v but got %v", tc.expected, err)
			}
		})
	}
}

func TestProfile_FullName(t *testing.T) {
	p := Profile{FirstName: "Ada", LastName: "Lovelace"}
	if got := p.FullName(); got != "Ada Lovelace" {
		t.Errorf("Expected 'Ada Lovelace' but got %q", got)
	}

	p = Profile{FirstName: "Ada"}
	if got := p.FullName(); got != "Ada" {
		t.Errorf("Expected 'Ada' but got %q", got)
	}
}
