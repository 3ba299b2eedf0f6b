package services

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/vaultline/vaultline-go/domain/models"
	"github.com/vaultline/vaultline-go/interfaces"
	"github.com/vaultline/vaultline-go/internal"
)

// DashboardComponent for logging
const DashboardComponent internal.Component = "Dashboard"

// Dashboard is the session-scoped view over the signed-in account: balance,
// filtered transaction history through the view cache, and the three
// balance-mutating actions. Local validation runs before any network call;
// a successful mutation invalidates the whole cache and refreshes the
// profile plus the currently visible filter.
type Dashboard struct {
	client interfaces.BackendClient
	cache  *TransactionCache
	logger *internal.Logger

	mu      sync.Mutex
	profile *models.Profile
	visible models.FilterKey
}

// NewDashboard creates a dashboard over the given backend client. The cache's
// lifetime is tied to the dashboard: a new dashboard starts cold.
func NewDashboard(client interfaces.BackendClient, logger *internal.Logger) *Dashboard {
	if logger == nil {
		logger = internal.GetLogger()
	}
	d := &Dashboard{
		client:  client,
		logger:  logger,
		visible: models.FilterAll,
	}
	d.cache = NewTransactionCache(client.TransactionHistory, logger)
	return d
}

// Cache exposes the underlying view cache.
func (d *Dashboard) Cache() *TransactionCache {
	return d.cache
}

// Profile fetches the profile and remembers it for local validation.
func (d *Dashboard) Profile(ctx context.Context) (*models.Profile, error) {
	profile, err := d.client.Profile(ctx)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	d.profile = profile
	d.mu.Unlock()
	return profile, nil
}

// balance returns the last known balance, fetching the profile on first use.
func (d *Dashboard) balance(ctx context.Context) (decimal.Decimal, string, error) {
	d.mu.Lock()
	profile := d.profile
	d.mu.Unlock()

	if profile == nil {
		var err error
		profile, err = d.Profile(ctx)
		if err != nil {
			return decimal.Decimal{}, "", err
		}
	}
	return profile.Balance, profile.Email, nil
}

// History returns the transaction list for the filter, served from the view
// cache. ok=false means a joined fetch failed and the caller should keep
// whatever it currently displays.
func (d *Dashboard) History(ctx context.Context, filter models.FilterKey, refresh bool) ([]models.Transaction, bool, error) {
	d.mu.Lock()
	d.visible = filter
	d.mu.Unlock()
	return d.cache.Get(ctx, filter, refresh)
}

// Withdraw removes amount from the balance. Insufficient funds and
// non-positive amounts are rejected locally, before any network call.
func (d *Dashboard) Withdraw(ctx context.Context, amount decimal.Decimal) error {
	balance, _, err := d.balance(ctx)
	if err != nil {
		return err
	}
	if err := models.ValidateWithdrawal(amount, balance); err != nil {
		return err
	}
	if err := d.client.Withdraw(ctx, amount); err != nil {
		return err
	}
	return d.afterMutation(ctx, "withdraw")
}

// Deposit adds amount to the balance.
func (d *Dashboard) Deposit(ctx context.Context, amount decimal.Decimal) error {
	if err := models.ValidateAmount(amount); err != nil {
		return err
	}
	if err := d.client.Deposit(ctx, amount); err != nil {
		return err
	}
	return d.afterMutation(ctx, "deposit")
}

// Transfer moves amount to the recipient. Missing recipient, self-transfer,
// insufficient funds and non-positive amounts are rejected locally.
func (d *Dashboard) Transfer(ctx context.Context, amount decimal.Decimal, recipientEmail string) error {
	balance, ownEmail, err := d.balance(ctx)
	if err != nil {
		return err
	}
	if err := models.ValidateTransfer(amount, balance, recipientEmail, ownEmail); err != nil {
		return err
	}
	if err := d.client.Transfer(ctx, amount, recipientEmail); err != nil {
		return err
	}
	return d.afterMutation(ctx, "transfer")
}

// afterMutation invalidates every cached filter, then force-refreshes the
// profile and the currently visible filter so stale lists are never shown.
func (d *Dashboard) afterMutation(ctx context.Context, action string) error {
	d.cache.InvalidateAll()
	d.logger.Info(DashboardComponent, "Balance action %s succeeded, cache invalidated", action)

	if _, err := d.Profile(ctx); err != nil {
		return err
	}

	d.mu.Lock()
	visible := d.visible
	d.mu.Unlock()

	if _, _, err := d.cache.Get(ctx, visible, true); err != nil {
		return err
	}
	return nil
}

// Warm prefetches the profile and every filter key concurrently. Distinct
// filter keys are independent, so they may fetch in parallel.
func (d *Dashboard) Warm(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := d.Profile(ctx)
		return err
	})

	for _, key := range models.FilterKeys {
		key := key
		g.Go(func() error {
			_, _, err := d.cache.Get(ctx, key, false)
			return err
		})
	}

	return g.Wait()
}
