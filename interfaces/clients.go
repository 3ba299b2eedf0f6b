package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vaultline/vaultline-go/domain/models"
)

// ErrorType represents different types of client errors
type ErrorType string

const (
	// ErrorTypeNetwork covers transport failures and unparsable responses;
	// callers show a generic message for these
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeAuth marks a 401 from any authenticated call; the session is
	// already cleared when this is returned
	ErrorTypeAuth ErrorType = "auth"

	// ErrorTypeInvalid carries a backend-reported validation message, shown verbatim
	ErrorTypeInvalid ErrorType = "invalid"

	ErrorTypeNotFound ErrorType = "not_found"
)

// ClientError represents an error from a client
type ClientError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError creates a new client error
func NewClientError(errorType ErrorType, message string, err error) error {
	return &ClientError{
		Type:    errorType,
		Message: message,
		Err:     err,
	}
}

// IsAuthError reports whether err is a session-expiry signal from the backend.
func IsAuthError(err error) bool {
	ce, ok := err.(*ClientError)
	if !ok {
		return false
	}
	return ce.Type == ErrorTypeAuth
}

// TokenPair holds the two token strings issued by the backend.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BackendClient defines the interface to the banking backend
type BackendClient interface {
	// SignIn exchanges credentials for a token pair and stores it in the session
	SignIn(ctx context.Context, email, password string) (*TokenPair, error)

	// SignUp registers a new account and stores the issued token pair
	SignUp(ctx context.Context, email, password, firstName, lastName string) (*TokenPair, error)

	// SignOut revokes the refresh token and clears the session
	SignOut(ctx context.Context) error

	// Profile fetches the signed-in user's profile and balance
	Profile(ctx context.Context) (*models.Profile, error)

	// TransactionHistory fetches the ledger entries matching the filter key
	TransactionHistory(ctx context.Context, filter models.FilterKey) ([]models.Transaction, error)

	// Withdraw removes the amount from the account balance
	Withdraw(ctx context.Context, amount decimal.Decimal) error

	// Deposit adds the amount to the account balance
	Deposit(ctx context.Context, amount decimal.Decimal) error

	// Transfer moves the amount to the recipient's account
	Transfer(ctx context.Context, amount decimal.Decimal, recipientEmail string) error
}

// SessionStore persists the token pair between runs, the way a browser keeps
// it in local storage. Implementations are cleared on sign-out and on 401.
type SessionStore interface {
	// SetTokens stores the token pair
	SetTokens(access, refresh string) error

	// Tokens returns the stored pair; both strings are empty when signed out
	Tokens() (access, refresh string, err error)

	// Clear removes any stored tokens
	Clear() error

	// Close releases the underlying storage
	Close() error
}
