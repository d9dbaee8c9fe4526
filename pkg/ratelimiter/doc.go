// Package ratelimiter provides a token bucket limiter with an in-memory store.
//
// It throttles outbound deliverability lookups per domain and inbound API
// requests per client.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     5,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	// Block until a token for the domain is free.
//	if err := bucket.Wait(ctx, "acme.com"); err != nil {
//		return err
//	}
//
// Allow and AllowN never block; a denied Result carries RetryAfter.
// Denied requests do not consume tokens.
//
// Middleware applies a bucket to HTTP handlers and sets X-RateLimit-Limit,
// X-RateLimit-Remaining, X-RateLimit-Reset and Retry-After headers.
package ratelimiter
