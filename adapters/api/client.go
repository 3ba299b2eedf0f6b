package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vaultline/vaultline-go/domain/models"
	"github.com/vaultline/vaultline-go/interfaces"
	"github.com/vaultline/vaultline-go/internal"
)

const (
	// DefaultBaseURL is the backend API root used when none is configured
	DefaultBaseURL = "http://localhost:3000"
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// ComponentName for logging
	ComponentName internal.Component = "API"
)

// HTTPClient interface for dependency injection and testing
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the banking backend over HTTP. It implements
// interfaces.BackendClient. Bearer tokens come from the session store; any
// authenticated call that returns 401 clears the store before reporting the
// expiry, so the caller only has to send the user back to login.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	session    interfaces.SessionStore
	logger     *internal.Logger
	timeout    time.Duration
}

// Config holds the configuration for the backend client
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient HTTPClient
	Session    interfaces.SessionStore
	Logger     *internal.Logger
}

// NewClient creates a new backend client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := config.Logger
	if logger == nil {
		logger = internal.GetLogger()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		session:    config.Session,
		logger:     logger,
		timeout:    timeout,
	}
}

// errorBody is the shape of a backend validation failure.
type errorBody struct {
	Message string `json:"message"`
}

// doRequest builds and executes one request. There is no retry and no
// backoff: a request either succeeds, fails with the backend's message, or
// fails with a generic network error.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload any, authed bool) (*http.Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, interfaces.NewClientError(interfaces.ErrorTypeNetwork, "failed to encode request", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, interfaces.NewClientError(interfaces.ErrorTypeNetwork, "failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())

	if authed {
		access, _, err := c.session.Tokens()
		if err != nil {
			return nil, interfaces.NewClientError(interfaces.ErrorTypeAuth, "no stored session", err)
		}
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, interfaces.NewClientError(interfaces.ErrorTypeNetwork, "request failed", err)
	}

	// Session expiry is handled uniformly for every authenticated call:
	// drop the stored tokens, then report it as an auth error.
	if authed && resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		if err := c.session.Clear(); err != nil {
			c.logger.Warn(ComponentName, "Failed to clear session after 401: %v", err)
		}
		c.logger.Info(ComponentName, "Session expired on %s %s", method, path)
		return nil, interfaces.NewClientError(interfaces.ErrorTypeAuth, "session expired", nil)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		var apiErr errorBody
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			if resp.StatusCode == http.StatusNotFound {
				return nil, interfaces.NewClientError(interfaces.ErrorTypeNotFound, apiErr.Message, nil)
			}
			return nil, interfaces.NewClientError(interfaces.ErrorTypeInvalid, apiErr.Message, nil)
		}
		return nil, interfaces.NewClientError(interfaces.ErrorTypeNetwork,
			fmt.Sprintf("request failed with status %d", resp.StatusCode), nil)
	}

	return resp, nil
}

// decodeInto drains the response body into dst.
func decodeInto(resp *http.Response, dst any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return interfaces.NewClientError(interfaces.ErrorTypeNetwork, "failed to decode response", err)
	}
	return nil
}

// SignIn exchanges credentials for a token pair and stores it in the session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*interfaces.TokenPair, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/sign-in", nil, map[string]string{
		"email":    email,
		"password": password,
	}, false)
	if err != nil {
		return nil, err
	}

	var pair interfaces.TokenPair
	if err := decodeInto(resp, &pair); err != nil {
		return nil, err
	}

	if err := c.session.SetTokens(pair.AccessToken, pair.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	c.logger.Info(ComponentName, "Signed in as %s", email)
	return &pair, nil
}

// SignUp registers a new account and stores the issued token pair.
func (c *Client) SignUp(ctx context.Context, email, password, firstName, lastName string) (*interfaces.TokenPair, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/auth/sign-up", nil, map[string]string{
		"email":     email,
		"password":  password,
		"firstName": firstName,
		"lastName":  lastName,
	}, false)
	if err != nil {
		return nil, err
	}

	var pair interfaces.TokenPair
	if err := decodeInto(resp, &pair); err != nil {
		return nil, err
	}

	if err := c.session.SetTokens(pair.AccessToken, pair.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	c.logger.Info(ComponentName, "Signed up as %s", email)
	return &pair, nil
}

// SignOut revokes the refresh token and clears the session. The local tokens
// are dropped even if the revoke call fails.
func (c *Client) SignOut(ctx context.Context) error {
	_, refresh, err := c.session.Tokens()
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	resp, reqErr := c.doRequest(ctx, http.MethodPost, "/auth/sign-out", nil, map[string]string{
		"refreshToken": refresh,
	}, true)
	if reqErr == nil {
		resp.Body.Close()
	}

	if err := c.session.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	if reqErr != nil && !interfaces.IsAuthError(reqErr) {
		return reqErr
	}

	c.logger.Info(ComponentName, "Signed out")
	return nil
}

// Profile fetches the signed-in user's profile and balance.
func (c *Client) Profile(ctx context.Context) (*models.Profile, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/user", nil, nil, true)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := decodeInto(resp, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// TransactionHistory fetches the ledger entries matching the filter key.
// The "all" sentinel sends no type parameter.
func (c *Client) TransactionHistory(ctx context.Context, filter models.FilterKey) ([]models.Transaction, error) {
	query := url.Values{}
	if t := filter.Query(); t != "" {
		query.Set("type", t)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/user/transaction-history", query, nil, true)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := decodeInto(resp, &transactions); err != nil {
		return nil, err
	}

	c.logger.Debug(ComponentName, "Fetched %d transaction(s) for filter %s", len(transactions), filter)
	return transactions, nil
}

// Withdraw removes the amount from the account balance.
func (c *Client) Withdraw(ctx context.Context, amount decimal.Decimal) error {
	return c.mutateBalance(ctx, "/user/withdraw-balance", map[string]any{
		"amount": amount,
	})
}

// Deposit adds the amount to the account balance.
func (c *Client) Deposit(ctx context.Context, amount decimal.Decimal) error {
	return c.mutateBalance(ctx, "/user/deposit-balance", map[string]any{
		"amount": amount,
	})
}

// Transfer moves the amount to the recipient's account.
func (c *Client) Transfer(ctx context.Context, amount decimal.Decimal, recipientEmail string) error {
	return c.mutateBalance(ctx, "/user/transfer-balance", map[string]any{
		"amount":         amount,
		"recipientEmail": recipientEmail,
	})
}

func (c *Client) mutateBalance(ctx context.Context, path string, payload map[string]any) error {
	resp, err := c.doRequest(ctx, http.MethodPost, path, nil, payload, true)
	if err != nil {
		return err
	}
	resp.Body.Close()
	c.logger.Info(ComponentName, "Balance action %s succeeded", path)
	return nil
}
