package deliverability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/emailguess"
	"github.com/dmitrymomot/emailguess/pkg/ratelimiter"
	"github.com/dmitrymomot/emailguess/pkg/sanitizer"
)

// WithTimeout bounds every call to c. A call cut short by d is reported as
// unavailable; cancellation of the caller's context is passed through.
func WithTimeout(c emailguess.Checker, d time.Duration) emailguess.Checker {
	if d <= 0 {
		return c
	}
	return emailguess.CheckerFunc(func(ctx context.Context, address string) (bool, error) {
		tctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		ok, err := c.Check(tctx, address)
		if err != nil && ctx.Err() == nil && errors.Is(tctx.Err(), context.DeadlineExceeded) {
			return false, unavailable(fmt.Errorf("check timed out after %s: %w", d, err))
		}
		return ok, err
	})
}

// Fallback asks secondary whenever primary is unavailable.
func Fallback(primary, secondary emailguess.Checker) emailguess.Checker {
	return emailguess.CheckerFunc(func(ctx context.Context, address string) (bool, error) {
		ok, err := primary.Check(ctx, address)
		if err == nil || !errors.Is(err, emailguess.ErrCheckUnavailable) {
			return ok, err
		}
		return secondary.Check(ctx, address)
	})
}

// Throttle waits for a token from bucket, keyed by the address domain,
// before each call to c. It blocks until a token frees up or ctx ends.
func Throttle(c emailguess.Checker, bucket *ratelimiter.Bucket) emailguess.Checker {
	return emailguess.CheckerFunc(func(ctx context.Context, address string) (bool, error) {
		if err := bucket.Wait(ctx, sanitizer.ExtractEmailDomain(address)); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return false, ctxErr
			}
			return false, unavailable(err)
		}
		return c.Check(ctx, address)
	})
}
