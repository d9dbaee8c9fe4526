package emailguess

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the parent of every input error. Input errors are
	// always surfaced, never replaced with a default candidate.
	ErrInvalidInput = errors.New("emailguess: invalid input")

	ErrEmptyName        = fmt.Errorf("%w: empty name", ErrInvalidInput)
	ErrMissingFirstName = fmt.Errorf("%w: name has no first name", ErrInvalidInput)
	ErrMissingLastName  = fmt.Errorf("%w: name has no last name", ErrInvalidInput)
	ErrEmptyDomain      = fmt.Errorf("%w: empty domain", ErrInvalidInput)
	ErrUnknownStyle     = fmt.Errorf("%w: unknown style", ErrInvalidInput)

	// ErrCheckUnavailable means a deliverability check was inconclusive
	// (timeout, rate limit, transport failure). Callers pick the fallback.
	ErrCheckUnavailable = errors.New("emailguess: deliverability check unavailable")

	// ErrCheckFailed wraps a conclusive checker error, such as a rejected
	// API key. It aborts a Finder run whatever the UnavailablePolicy.
	ErrCheckFailed = errors.New("emailguess: deliverability check failed")
)

// NameError locates a failure inside a batch of names.
type NameError struct {
	Index int
	Name  string
	Err   error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("name #%d %q: %v", e.Index+1, e.Name, e.Err)
}

func (e *NameError) Unwrap() error { return e.Err }
