// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
//	c := cache.NewLRU[string, bool](10_000)
//	c.PutWithTTL("jdoe@acme.com", true, time.Hour)
//
//	if ok, found := c.Get("jdoe@acme.com"); found {
//		// use ok
//	}
//
// Get, Put and Remove are O(1). Expired entries are dropped lazily on Get or
// when they fall off the end of the eviction list.
package cache
