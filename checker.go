package emailguess

import "context"

// Checker reports whether an address is plausible or deliverable.
// Inconclusive results are returned as errors wrapping ErrCheckUnavailable.
type Checker interface {
	Check(ctx context.Context, address string) (bool, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context, address string) (bool, error)

func (f CheckerFunc) Check(ctx context.Context, address string) (bool, error) {
	return f(ctx, address)
}
