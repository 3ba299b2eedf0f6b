package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines the type of transaction
type TransactionType string

const (
	// TransactionTypeWithdrawal represents money leaving the account
	TransactionTypeWithdrawal TransactionType = "withdrawal"

	// TransactionTypeDeposit represents money entering the account
	TransactionTypeDeposit TransactionType = "deposit"

	// TransactionTypeTransfer represents money moved between two accounts
	TransactionTypeTransfer TransactionType = "transfer"
)

// FilterKey selects which subset of transaction history is displayed and cached.
// "all" is the sentinel for no filter.
type FilterKey string

const (
	FilterAll        FilterKey = "all"
	FilterWithdrawal FilterKey = "withdrawal"
	FilterDeposit    FilterKey = "deposit"
	FilterTransfer   FilterKey = "transfer"
)

// FilterKeys lists every valid filter key.
var FilterKeys = []FilterKey{FilterAll, FilterWithdrawal, FilterDeposit, FilterTransfer}

// ParseFilterKey maps user input to a filter key. Empty input means no filter.
func ParseFilterKey(s string) (FilterKey, error) {
	switch FilterKey(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterWithdrawal:
		return FilterWithdrawal, nil
	case FilterDeposit:
		return FilterDeposit, nil
	case FilterTransfer:
		return FilterTransfer, nil
	}
	return "", ErrInvalidFilter
}

// Query returns the value for the backend's `type` query parameter.
// The "all" sentinel maps to no parameter at all.
func (k FilterKey) Query() string {
	if k == FilterAll {
		return ""
	}
	return string(k)
}

// Transaction represents one ledger entry as returned by the backend.
// The client never mutates, reorders or merges these entries; a cached list
// is exactly the backend's answer for its filter at the time of last fetch.
type Transaction struct {
	ID             string          `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	Type           TransactionType `json:"type"`
	CreatedAt      time.Time       `json:"created_at"`
	SenderEmail    string          `json:"senderEmail,omitempty"`
	RecipientEmail string          `json:"recipientEmail,omitempty"`
	IsPositive     *bool           `json:"isPositive,omitempty"`
}

// DisplayAmount renders the amount with the backend's sign hint. When the
// hint is absent the amount is rendered unsigned.
func (t Transaction) DisplayAmount() string {
	if t.IsPositive == nil {
		return t.Amount.String()
	}
	if *t.IsPositive {
		return "+" + t.Amount.String()
	}
	return "-" + t.Amount.String()
}

// IsTransfer reports whether the entry carries sender/recipient emails.
func (t Transaction) IsTransfer() bool {
	return t.Type == TransactionTypeTransfer
}
