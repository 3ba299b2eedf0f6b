package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Profile represents the signed-in user as returned by the backend.
type Profile struct {
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Balance   decimal.Decimal `json:"balance"`
}

// FullName returns the user's display name.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ValidateAmount checks that an action amount is strictly positive.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrAmountNotPositive
	}
	return nil
}

// ValidateWithdrawal checks a withdrawal before any network call is made.
func ValidateWithdrawal(amount, balance decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// ValidateTransfer checks a transfer before any network call is made.
// Recipient comparison is case-insensitive and ignores surrounding whitespace.
func ValidateTransfer(amount, balance decimal.Decimal, recipient, ownEmail string) error {
	if err := ValidateWithdrawal(amount, balance); err != nil {
		return err
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return ErrMissingRecipient
	}
	if strings.EqualFold(recipient, strings.TrimSpace(ownEmail)) {
		return ErrSelfTransfer
	}
	return nil
}
