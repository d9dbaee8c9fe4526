package ratelimiter

import "errors"

var (
	ErrInvalidConfig     = errors.New("ratelimiter: invalid configuration")
	ErrInvalidTokenCount = errors.New("ratelimiter: invalid token count")

	// ErrContextCancelled wraps the context error when Wait gives up.
	ErrContextCancelled = errors.New("ratelimiter: context cancelled")
)
