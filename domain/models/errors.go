package models

import (
	"errors"
)

// Domain error types
var (
	// ErrInvalidFilter is returned when a transaction type filter is not one
	// of withdrawal, deposit or transfer
	ErrInvalidFilter = errors.New("filter must be one of withdrawal, deposit or transfer")

	// ErrAmountNotPositive is returned when an action amount is zero or negative
	ErrAmountNotPositive = errors.New("amount must be greater than 0")

	// ErrInsufficientFunds is returned when an action amount exceeds the current balance
	ErrInsufficientFunds = errors.New("amount exceeds current balance")

	// ErrMissingRecipient is returned when a transfer has no recipient email
	ErrMissingRecipient = errors.New("transfer must have a recipient email")

	// ErrSelfTransfer is returned when a transfer recipient is the account's own email
	ErrSelfTransfer = errors.New("cannot transfer to your own account")
)
