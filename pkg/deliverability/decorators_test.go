package deliverability_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/emailguess"
	"github.com/dmitrymomot/emailguess/pkg/deliverability"
	"github.com/dmitrymomot/emailguess/pkg/ratelimiter"
)

var errUnavailable = errors.Join(emailguess.ErrCheckUnavailable, errors.New("rate limited"))

func fixed(ok bool, err error) (emailguess.Checker, *atomic.Int32) {
	calls := &atomic.Int32{}
	return emailguess.CheckerFunc(func(context.Context, string) (bool, error) {
		calls.Add(1)
		return ok, err
	}), calls
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	slow := emailguess.CheckerFunc(func(ctx context.Context, _ string) (bool, error) {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(time.Second):
			return true, nil
		}
	})

	t.Run("deadline becomes unavailable", func(t *testing.T) {
		t.Parallel()
		_, err := deliverability.WithTimeout(slow, 10*time.Millisecond).Check(context.Background(), "jd@corp.io")
		assert.ErrorIs(t, err, emailguess.ErrCheckUnavailable)
	})

	t.Run("caller cancellation passes through", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := deliverability.WithTimeout(slow, time.Minute).Check(ctx, "jd@corp.io")
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, emailguess.ErrCheckUnavailable)
	})

	t.Run("fast call untouched", func(t *testing.T) {
		t.Parallel()
		c, _ := fixed(true, nil)
		ok, err := deliverability.WithTimeout(c, time.Second).Check(context.Background(), "jd@corp.io")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("zero timeout disables", func(t *testing.T) {
		t.Parallel()
		c, _ := fixed(true, nil)
		ok, err := deliverability.WithTimeout(c, 0).Check(context.Background(), "jd@corp.io")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestFallback(t *testing.T) {
	t.Parallel()

	t.Run("uses secondary when primary unavailable", func(t *testing.T) {
		primary, _ := fixed(false, errUnavailable)
		secondary, calls := fixed(true, nil)

		ok, err := deliverability.Fallback(primary, secondary).Check(context.Background(), "jd@corp.io")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("keeps conclusive primary answer", func(t *testing.T) {
		primary, _ := fixed(false, nil)
		secondary, calls := fixed(true, nil)

		ok, err := deliverability.Fallback(primary, secondary).Check(context.Background(), "jd@corp.io")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, calls.Load())
	})

	t.Run("other errors are not masked", func(t *testing.T) {
		boom := errors.New("boom")
		primary, _ := fixed(false, boom)
		secondary, calls := fixed(true, nil)

		_, err := deliverability.Fallback(primary, secondary).Check(context.Background(), "jd@corp.io")
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, calls.Load())
	})
}

func TestThrottle(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore()
	t.Cleanup(store.Close)
	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       1,
		RefillRate:     1,
		RefillInterval: time.Hour,
	})
	require.NoError(t, err)

	inner, calls := fixed(true, nil)
	c := deliverability.Throttle(inner, bucket)

	ok, err := c.Check(context.Background(), "jd@corp.io")
	require.NoError(t, err)
	assert.True(t, ok)

	// Another domain has its own bucket.
	_, err = c.Check(context.Background(), "jd@other.io")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Check(ctx, "john.doe@corp.io")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(2), calls.Load())
}
