package ratelimiter

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	defaultCleanupInterval = 5 * time.Minute
	defaultStaleAfter      = time.Hour
)

// bucket is the state of one key.
type bucket struct {
	tokens     int
	lastRefill time.Time
	lastSeen   time.Time
}

// refill adds the tokens earned since the last refill, capped at capacity.
// Whole intervals only, so a partial interval is never lost.
func (b *bucket) refill(now time.Time, cfg Config) {
	intervals := now.Sub(b.lastRefill) / cfg.RefillInterval
	if intervals <= 0 {
		return
	}
	// Enough intervals to fill the bucket from empty; more would only risk overflow.
	full := time.Duration(cfg.Capacity/cfg.RefillRate + 1)
	b.tokens = min(b.tokens+int(min(intervals, full))*cfg.RefillRate, cfg.Capacity)
	b.lastRefill = now
}

// MemoryStore keeps buckets in process memory. One bucket per key, so a
// checker throttled per domain holds one entry per domain seen. Buckets idle
// for longer than the stale period are dropped by a background sweep.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	cleanupInterval time.Duration
	staleAfter      time.Duration
	done            chan struct{}
	closeOnce       sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often stale buckets are swept. Zero disables
// the sweep.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// WithStaleAfter sets how long a bucket may stay unused before the sweep
// drops it.
func WithStaleAfter(d time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if d > 0 {
			ms.staleAfter = d
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		buckets:         make(map[string]*bucket),
		cleanupInterval: defaultCleanupInterval,
		staleAfter:      defaultStaleAfter,
		done:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.sweepLoop()
	}
	return ms
}

// ConsumeTokens refills the bucket for the elapsed time and takes tokens
// when enough are available.
func (ms *MemoryStore) ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return 0, time.Time{}, fmt.Errorf("%w: %w", ErrContextCancelled, err)
	}

	now := time.Now()

	ms.mu.Lock()
	defer ms.mu.Unlock()

	b, ok := ms.buckets[key]
	if !ok {
		b = &bucket{tokens: cfg.Capacity, lastRefill: now}
		ms.buckets[key] = b
	}
	b.refill(now, cfg)
	b.lastSeen = now

	resetAt := b.lastRefill.Add(cfg.RefillInterval)
	if b.tokens < tokens {
		return b.tokens - tokens, resetAt, nil
	}
	b.tokens -= tokens
	return b.tokens, resetAt, nil
}

func (ms *MemoryStore) Reset(_ context.Context, key string) error {
	ms.mu.Lock()
	delete(ms.buckets, key)
	ms.mu.Unlock()
	return nil
}

// Close stops the background sweep. Safe to call multiple times.
func (ms *MemoryStore) Close() {
	ms.closeOnce.Do(func() { close(ms.done) })
}

func (ms *MemoryStore) sweepLoop() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			ms.sweep(now)
		case <-ms.done:
			return
		}
	}
}

func (ms *MemoryStore) sweep(now time.Time) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for key, b := range ms.buckets {
		if now.Sub(b.lastSeen) > ms.staleAfter {
			delete(ms.buckets, key)
		}
	}
}
