package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultline/vaultline-go/domain/models"
)

// countingFetch counts backend calls per filter key and returns a canned list.
type countingFetch struct {
	mu    sync.Mutex
	calls map[models.FilterKey]int
	lists map[models.FilterKey][]models.Transaction
	err   error
}

func newCountingFetch() *countingFetch {
	return &countingFetch{
		calls: make(map[models.FilterKey]int),
		lists: make(map[models.FilterKey][]models.Transaction),
	}
}

func (f *countingFetch) fetch(ctx context.Context, key models.FilterKey) ([]models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[key]++
	if f.err != nil {
		return nil, f.err
	}
	return f.lists[key], nil
}

func (f *countingFetch) callCount(key models.FilterKey) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *countingFetch) setError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func txList(ids ...string) []models.Transaction {
	list := make([]models.Transaction, 0, len(ids))
	for _, id := range ids {
		list = append(list, models.Transaction{
			ID:     id,
			Amount: decimal.New(10, 0),
			Type:   models.TransactionTypeDeposit,
		})
	}
	return list
}

func TestGet_SecondCallIsServedFromCache(t *testing.T) {
	fetcher := newCountingFetch()
	fetcher.lists[models.FilterAll] = txList("tx-1", "tx-2")
	cache := NewTransactionCache(fetcher.fetch, nil)

	first, ok, err := cache.Get(context.Background(), models.FilterAll, false)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, first, 2)

	second, ok, err := cache.Get(context.Background(), models.FilterAll, false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetcher.callCount(models.FilterAll), "second call must not hit the backend")
}

func TestGet_ConcurrentCallersShareOneFetch(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	var enteredOnce sync.Once

	fetch := func(ctx context.Context, key models.FilterKey) ([]models.Transaction, error) {
		calls.Add(1)
		enteredOnce.Do(func() { close(entered) })
		<-release
		return txList("tx-shared"), nil
	}
	cache := NewTransactionCache(fetch, nil)

	type result struct {
		txs []models.Transaction
		ok  bool
		err error
	}
	results := make(chan result, 2)

	go func() {
		txs, ok, err := cache.Get(context.Background(), models.FilterDeposit, false)
		results <- result{txs, ok, err}
	}()
	<-entered

	go func() {
		txs, ok, err := cache.Get(context.Background(), models.FilterDeposit, false)
		results <- result{txs, ok, err}
	}()

	// Give the joiner a moment to register before releasing the fetch.
	time.Sleep(20 * time.Millisecond)
	close(release)

	a := <-results
	b := <-results
	require.NoError(t, a.err)
	require.NoError(t, b.err)
	assert.True(t, a.ok)
	assert.True(t, b.ok)
	assert.Equal(t, a.txs, b.txs, "both callers observe the same resolved list")
	assert.Equal(t, int32(1), calls.Load(), "exactly one network call for the key")
}

func TestInvalidateAll_ForcesRefetch(t *testing.T) {
	fetcher := newCountingFetch()
	fetcher.lists[models.FilterTransfer] = txList("tx-t1")
	cache := NewTransactionCache(fetcher.fetch, nil)

	_, _, err := cache.Get(context.Background(), models.FilterTransfer, false)
	require.NoError(t, err)
	require.Equal(t, 1, fetcher.callCount(models.FilterTransfer))

	cache.InvalidateAll()
	assert.False(t, cache.Cached(models.FilterTransfer))

	_, ok, err := cache.Get(context.Background(), models.FilterTransfer, false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, fetcher.callCount(models.FilterTransfer), "invalidated key must hit the backend again")
}

func TestGet_FailureLeavesEntriesUntouched(t *testing.T) {
	fetcher := newCountingFetch()
	fetcher.lists[models.FilterAll] = txList("tx-1")
	cache := NewTransactionCache(fetcher.fetch, nil)

	cached, _, err := cache.Get(context.Background(), models.FilterAll, false)
	require.NoError(t, err)

	fetcher.setError(errors.New("backend down"))

	_, ok, err := cache.Get(context.Background(), models.FilterAll, true)
	require.Error(t, err)
	assert.False(t, ok)

	// The previously cached list is still served.
	fetcher.setError(nil)
	after, ok, err := cache.Get(context.Background(), models.FilterAll, false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, cached, after)
	assert.Equal(t, 2, fetcher.callCount(models.FilterAll))
}

func TestGet_FirstEverFailureLeavesKeyAbsent(t *testing.T) {
	fetcher := newCountingFetch()
	fetcher.setError(errors.New("backend down"))
	cache := NewTransactionCache(fetcher.fetch, nil)

	_, ok, err := cache.Get(context.Background(), models.FilterWithdrawal, false)
	require.Error(t, err)
	assert.False(t, ok)
	assert.False(t, cache.Cached(models.FilterWithdrawal))
}

func TestGet_TabSwitchScenario(t *testing.T) {
	// all -> withdrawal -> all with no mutation in between: the return to
	// "all" is served from cache.
	fetcher := newCountingFetch()
	fetcher.lists[models.FilterAll] = txList("tx-1", "tx-2", "tx-3")
	fetcher.lists[models.FilterWithdrawal] = txList("tx-2")
	cache := NewTransactionCache(fetcher.fetch, nil)

	_, _, err := cache.Get(context.Background(), models.FilterAll, false)
	require.NoError(t, err)
	_, _, err = cache.Get(context.Background(), models.FilterWithdrawal, false)
	require.NoError(t, err)
	back, ok, err := cache.Get(context.Background(), models.FilterAll, false)
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Len(t, back, 3)
	assert.Equal(t, 1, fetcher.callCount(models.FilterAll))
	assert.Equal(t, 1, fetcher.callCount(models.FilterWithdrawal))
}

func TestJoiner_SilentOnSharedFailure(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var enteredOnce sync.Once

	fetch := func(ctx context.Context, key models.FilterKey) ([]models.Transaction, error) {
		enteredOnce.Do(func() { close(entered) })
		<-release
		return nil, errors.New("backend down")
	}
	cache := NewTransactionCache(fetch, nil)

	initiatorErr := make(chan error, 1)
	go func() {
		_, _, err := cache.Get(context.Background(), models.FilterAll, false)
		initiatorErr <- err
	}()
	<-entered

	joinerDone := make(chan struct{})
	var joinerOK bool
	var joinerErr error
	go func() {
		defer close(joinerDone)
		_, joinerOK, joinerErr = cache.Get(context.Background(), models.FilterAll, false)
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)

	require.Error(t, <-initiatorErr, "the initiating caller sees the failure")
	<-joinerDone
	assert.NoError(t, joinerErr, "the joiner is not surfaced an error")
	assert.False(t, joinerOK, "the joiner receives no update")
}

func TestInvalidateAll_DoesNotDetachInflightFetch(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	fetch := func(ctx context.Context, key models.FilterKey) ([]models.Transaction, error) {
		close(entered)
		<-release
		return txList("tx-late"), nil
	}
	cache := NewTransactionCache(fetch, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		cache.Get(context.Background(), models.FilterAll, false)
	}()
	<-entered

	// Invalidation while the fetch is outstanding: the fetch is not
	// cancelled and still populates the cleared map when it resolves.
	cache.InvalidateAll()
	close(release)
	<-done

	assert.True(t, cache.Cached(models.FilterAll))
}

func TestJoiner_ContextCancellation(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	fetch := func(ctx context.Context, key models.FilterKey) ([]models.Transaction, error) {
		close(entered)
		<-release
		return nil, nil
	}
	cache := NewTransactionCache(fetch, nil)

	go cache.Get(context.Background(), models.FilterAll, false)
	<-entered

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := cache.Get(ctx, models.FilterAll, false)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}
