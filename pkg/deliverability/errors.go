package deliverability

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/emailguess"
)

var (
	ErrInvalidConfig = errors.New("deliverability: invalid configuration")

	// ErrRejected means the verification service refused the request
	// (bad credentials, malformed query). Retrying will not help.
	ErrRejected = errors.New("deliverability: request rejected by verification service")

	ErrUnexpectedResponse = errors.New("deliverability: unexpected response")
)

// unavailable marks err as inconclusive for the caller's fallback policy.
func unavailable(err error) error {
	if err == nil || errors.Is(err, emailguess.ErrCheckUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", emailguess.ErrCheckUnavailable, err)
}
