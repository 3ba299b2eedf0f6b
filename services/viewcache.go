package services

import (
	"context"
	"sync"

	"github.com/vaultline/vaultline-go/domain/models"
	"github.com/vaultline/vaultline-go/internal"
)

// CacheComponent for logging
const CacheComponent internal.Component = "Cache"

// FetchFunc loads the transaction list for a filter key from the backend.
type FetchFunc func(ctx context.Context, key models.FilterKey) ([]models.Transaction, error)

// flight is one in-progress fetch, shared by every caller that asks for the
// same filter key while it is outstanding. done is closed exactly once, after
// txs/err are set, so late joiners read a consistent result.
type flight struct {
	done chan struct{}
	txs  []models.Transaction
	err  error
}

// TransactionCache keeps the last fetched transaction list per filter key and
// de-duplicates concurrent fetches for the same key. Cardinality is bounded
// by the four filter keys, so there is no eviction, capacity bound or TTL.
// Lifetime is the dashboard view's lifetime; nothing is persisted.
type TransactionCache struct {
	fetch  FetchFunc
	logger *internal.Logger

	mu      sync.Mutex
	entries map[models.FilterKey][]models.Transaction
	pending map[models.FilterKey]*flight
}

// NewTransactionCache creates an empty cache over the given fetch function.
func NewTransactionCache(fetch FetchFunc, logger *internal.Logger) *TransactionCache {
	if logger == nil {
		logger = internal.GetLogger()
	}
	return &TransactionCache{
		fetch:   fetch,
		logger:  logger,
		entries: make(map[models.FilterKey][]models.Transaction),
		pending: make(map[models.FilterKey]*flight),
	}
}

// Get returns the transaction list for key.
//
// Without force, a cached list is returned synchronously, and a fetch already
// in flight for key is joined rather than duplicated: the joiner waits for
// the shared result, and if that shared fetch fails the joiner receives no
// update and no error (ok=false), leaving whatever it currently displays
// unchanged. Otherwise a new fetch is started and registered as the in-flight
// operation for key for its duration, so exactly one network call is issued
// per (key, fetch generation). On success the result replaces the cached
// entry; on failure the cached entry is left untouched and the error is
// surfaced to the initiating caller only.
func (c *TransactionCache) Get(ctx context.Context, key models.FilterKey, force bool) (txs []models.Transaction, ok bool, err error) {
	c.mu.Lock()
	if !force {
		if cached, hit := c.entries[key]; hit {
			c.mu.Unlock()
			return cached, true, nil
		}
		if fl, inFlight := c.pending[key]; inFlight {
			c.mu.Unlock()
			return c.join(ctx, key, fl)
		}
	}

	fl := &flight{done: make(chan struct{})}
	c.pending[key] = fl
	c.mu.Unlock()

	c.logger.Debug(CacheComponent, "Fetching filter %s (force=%t)", key, force)
	result, fetchErr := c.fetch(ctx, key)

	c.mu.Lock()
	if c.pending[key] == fl {
		delete(c.pending, key)
	}
	fl.txs, fl.err = result, fetchErr
	if fetchErr == nil {
		// A fetch started before an InvalidateAll still lands here; the UI
		// only invalidates right before force-refreshing the visible filter,
		// so the repopulation race is accepted.
		c.entries[key] = result
	}
	c.mu.Unlock()
	close(fl.done)

	if fetchErr != nil {
		c.logger.Warn(CacheComponent, "Fetch for filter %s failed: %v", key, fetchErr)
		return nil, false, fetchErr
	}
	return result, true, nil
}

// join waits on a fetch another caller already started. Failures of the
// shared fetch are deliberately not surfaced to joiners.
func (c *TransactionCache) join(ctx context.Context, key models.FilterKey, fl *flight) ([]models.Transaction, bool, error) {
	select {
	case <-fl.done:
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
	if fl.err != nil {
		c.logger.Debug(CacheComponent, "Joined fetch for filter %s failed silently", key)
		return nil, false, nil
	}
	return fl.txs, true, nil
}

// InvalidateAll clears every cached entry wholesale. In-flight fetches are
// not cancelled and still populate the cleared map when they resolve.
// Called after any successful balance-mutating action.
func (c *TransactionCache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[models.FilterKey][]models.Transaction)
	c.mu.Unlock()
	c.logger.Debug(CacheComponent, "Invalidated all cached filters")
}

// Cached reports whether a list is cached for key, without fetching.
func (c *TransactionCache) Cached(key models.FilterKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, hit := c.entries[key]
	return hit
}
