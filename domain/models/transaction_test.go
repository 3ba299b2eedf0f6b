package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseFilterKey(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    FilterKey
		expectError bool
	}{
		{
			name:     "empty input maps to the all sentinel",
			input:    "",
			expected: FilterAll,
		},
		{
			name:     "explicit all",
			input:    "all",
			expected: FilterAll,
		},
		{
			name:     "withdrawal",
			input:    "withdrawal",
			expected: FilterWithdrawal,
		},
		{
			name:     "deposit",
			input:    "deposit",
			expected: FilterDeposit,
		},
		{
			name:     "transfer",
			input:    "transfer",
			expected: FilterTransfer,
		},
		{
			name:        "unknown filter is rejected",
			input:       "refund",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := ParseFilterKey(tc.input)
			if tc.expectError {
				if err == nil {
					t.Errorf("Expected error for input %q but got nil", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}
			if key != tc.expected {
				t.Errorf("Expected filter %q but got %q", tc.expected, key)
			}
		})
	}
}

func TestFilterKey_Query(t *testing.T) {
	if q := FilterAll.Query(); q != "" {
		t.Errorf("Expected empty query for the all sentinel but got %q", q)
	}
	if q := FilterDeposit.Query(); q != "deposit" {
		t.Errorf("Expected query 'deposit' but got %q", q)
	}
}

func TestTransaction_DisplayAmount(t *testing.T) {
	positive := true
	negative := false

	testCases := []struct {
		name       string
		amount     string
		isPositive *bool
		expected   string
	}{
		{
			name:     "no sign hint renders unsigned",
			amount:   "25.50",
			expected: "25.5",
		},
		{
			name:       "positive hint",
			amount:     "100",
			isPositive: &positive,
			expected:   "+100",
		},
		{
			name:       "negative hint",
			amount:     "3.10",
			isPositive: &negative,
			expected:   "-3.1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := Transaction{
				Amount:     decimal.RequireFromString(tc.amount),
				IsPositive: tc.isPositive,
			}
			if got := tx.DisplayAmount(); got != tc.expected {
				t.Errorf("Expected display amount %q but got %q", tc.expected, got)
			}
		})
	}
}
