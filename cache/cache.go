package cache

import (
	"context"
	"sync"
	"time"

	"github.com/commercekit/commercekit/errors"
	"github.com/commercekit/commercekit/logger"
	"github.com/commercekit/commercekit/observability"
	"github.com/commercekit/commercekit/resilience"
)

// Fetcher loads the value for a fingerprint from the backend.
type Fetcher func(ctx context.Context) (any, error)

// Option customizes a Cache.
type Option func(*Cache)

// WithLogger sets the cache logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Cache) { c.log = l }
}

// WithClock overrides the time source. Tests use this to age entries.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithRefreshRetry sets the retry policy for background refreshes. Only
// network failures are retried; upstream rejections are not.
func WithRefreshRetry(cfg resilience.RetryConfig) Option {
	return func(c *Cache) { c.retry = cfg }
}

// WithMetrics records read outcomes and refresh results on the given
// instruments. Nil disables recording.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Cache) { c.metrics = m }
}

// Cache is the request cache. The entry table is the only shared mutable
// state in the library; every transition happens under the cache mutex.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	policy  Policy
	retry   resilience.RetryConfig
	log     *logger.Logger
	metrics *observability.Metrics
	now     func() time.Time
}

// New creates a cache with the given staleness policy.
func New(policy Policy, opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]*entry),
		policy:  policy,
		retry: resilience.RetryConfig{
			MaxAttempts:    2,
			InitialBackoff: 250 * time.Millisecond,
			RetryIf:        errors.IsNetwork,
		},
		log: logger.Get("cache"),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Read returns the cached value for fp, fetching it if necessary.
//
//   - Fresh entry: returned immediately, no fetch.
//   - Stale entry: the stale value is returned immediately and one background
//     refresh is scheduled.
//   - Absent or errored entry: a Pending entry is created and fetched; other
//     readers arriving meanwhile attach to the same fetch.
//
// Canceling ctx abandons the wait, not the fetch: the result is still
// committed for future reads.
func (c *Cache) Read(ctx context.Context, fp Fingerprint, fetcher Fetcher) (any, error) {
	key := fp.String()

	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok || e.state == StateError {
		e = &entry{fp: fp, state: StatePending, done: make(chan struct{})}
		c.entries[key] = e
		c.mu.Unlock()
		c.recordRead(ctx, fp, "miss")
		return c.await(ctx, e, c.startFetch(ctx, e, fetcher))
	}

	if e.state == StatePending {
		c.mu.Unlock()
		c.recordRead(ctx, fp, "miss")
		return c.await(ctx, e, e.done)
	}

	// Settled with data.
	data := e.data
	stale := c.staleLocked(e)
	if stale && !e.refreshing {
		e.refreshing = true
		go c.refresh(context.WithoutCancel(ctx), e, fetcher)
	}
	c.mu.Unlock()
	if stale {
		c.recordRead(ctx, fp, "stale")
	} else {
		c.recordRead(ctx, fp, "fresh")
	}
	return data, nil
}

func (c *Cache) recordRead(ctx context.Context, fp Fingerprint, result string) {
	if c.metrics != nil {
		c.metrics.RecordCacheRead(ctx, string(fp.Operation), result)
	}
}

// ReadAs is Read with a typed result.
func ReadAs[T any](ctx context.Context, c *Cache, fp Fingerprint, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	data, err := c.Read(ctx, fp, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	v, ok := data.(T)
	if !ok {
		return zero, errors.Validation("cached value has unexpected type").
			WithDetail("fingerprint", fp.String())
	}
	return v, nil
}

// Invalidate marks every settled entry matching the predicate stale. The
// stale value keeps serving until the next read refreshes it.
func (c *Cache) Invalidate(pred Predicate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.settled() && pred(e.fp) {
			e.stale = true
		}
	}
}

// Drop removes matching entries entirely. Used when stale data must not be
// served again, e.g. customer state after logout.
func (c *Cache) Drop(pred Predicate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if pred(e.fp) && e.state != StatePending {
			delete(c.entries, key)
		}
	}
}

// InvalidateAll marks every settled entry stale. Used on reconnect.
func (c *Cache) InvalidateAll() {
	c.Invalidate(All())
}

// RevalidateOnFocus marks the policy's focus-sensitive classes stale.
func (c *Cache) RevalidateOnFocus() {
	if len(c.policy.RevalidateOnFocus) == 0 {
		return
	}
	c.Invalidate(ByClass(c.policy.RevalidateOnFocus...))
}

// State reports the effective state of the entry for fp.
func (c *Cache) State(fp Fingerprint) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[fp.String()]
	if !ok {
		return StateAbsent
	}
	if e.state == StateFresh && c.staleLocked(e) {
		return StateStale
	}
	return e.state
}

// Len returns the number of entries in the table.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// startFetch launches the single fetch backing a Pending entry and returns
// the settlement channel. The fetch runs detached from the caller's
// cancellation so an abandoned read still commits its result.
func (c *Cache) startFetch(ctx context.Context, e *entry, fetcher Fetcher) <-chan struct{} {
	fetchCtx := context.WithoutCancel(ctx)
	go func() {
		data, err := fetcher(fetchCtx)

		c.mu.Lock()
		if err != nil {
			e.state = StateError
			e.err = err
		} else {
			e.state = StateFresh
			e.data = data
			e.err = nil
			e.fetchedAt = c.now()
		}
		close(e.done)
		c.mu.Unlock()

		if err != nil {
			c.log.Warn("fetch failed", logger.Fields(
				logger.FieldFingerprint, e.fp.String(),
				logger.FieldError, err.Error(),
			))
		}
	}()
	return e.done
}

// await blocks until the entry settles or the caller gives up.
func (c *Cache) await(ctx context.Context, e *entry, done <-chan struct{}) (any, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e.err != nil && e.state == StateError {
		return nil, e.err
	}
	return e.data, nil
}

// refresh re-fetches a stale entry in the background. Failures keep the stale
// value and never surface to unrelated callers; network failures are retried
// per the refresh retry policy.
func (c *Cache) refresh(ctx context.Context, e *entry, fetcher Fetcher) {
	data, err := resilience.Retry(ctx, c.retry, func() (any, error) {
		return fetcher(ctx)
	})

	c.mu.Lock()
	e.refreshing = false
	if err == nil {
		e.data = data
		e.err = nil
		e.stale = false
		e.state = StateFresh
		e.fetchedAt = c.now()
	} else {
		e.err = err
	}
	c.mu.Unlock()

	if c.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		c.metrics.RecordCacheRefresh(ctx, string(e.fp.Operation), status)
	}
	if err != nil {
		c.log.Warn("background refresh failed, serving stale value", logger.Fields(
			logger.FieldFingerprint, e.fp.String(),
			logger.FieldError, err.Error(),
		))
	}
}

// staleLocked reports whether a settled entry's value is past its TTL or was
// explicitly invalidated. Caller holds the mutex.
func (c *Cache) staleLocked(e *entry) bool {
	if e.state != StateFresh {
		return false
	}
	if e.stale {
		return true
	}
	return c.now().Sub(e.fetchedAt) >= c.policy.TTLFor(e.fp.Class())
}
