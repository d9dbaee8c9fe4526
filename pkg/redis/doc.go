// Package redis connects to Redis and exposes a small namespaced key-value
// Storage used as a shared deliverability cache.
//
//	cfg := redis.Config{ConnectionURL: "redis://localhost:6379/0", KeyPrefix: "emailguess:"}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := redis.NewStorage(client, cfg)
//	_ = store.Set(ctx, "check:jdoe@acme.com", []byte("1"), time.Hour)
//
// Healthcheck returns a probe usable by the HTTP readiness endpoint.
// Errors are joined with the package sentinels (ErrRedisNotReady,
// ErrStorage, ...) so callers can match them with errors.Is.
package redis
