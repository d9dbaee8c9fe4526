package deliverability

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/emailguess"
	"github.com/dmitrymomot/emailguess/pkg/cache"
	"github.com/dmitrymomot/emailguess/pkg/logger"
	"github.com/dmitrymomot/emailguess/pkg/redis"
	"github.com/dmitrymomot/emailguess/pkg/sanitizer"
)

// Store keeps conclusive check results.
type Store interface {
	Get(ctx context.Context, address string) (deliverable, found bool, err error)
	Set(ctx context.Context, address string, deliverable bool, ttl time.Duration) error
}

// Cached remembers conclusive answers of c in store for ttl, keyed by the
// normalized address. Errors are never cached. A failing store is logged and
// bypassed.
func Cached(c emailguess.Checker, store Store, ttl time.Duration, log *slog.Logger) emailguess.Checker {
	if log == nil {
		log = logger.Discard()
	}
	return emailguess.CheckerFunc(func(ctx context.Context, address string) (bool, error) {
		key := sanitizer.NormalizeEmail(address)
		if ok, found, err := store.Get(ctx, key); err != nil {
			log.WarnContext(ctx, "cache read failed", logger.Address(address), logger.Error(err))
		} else if found {
			return ok, nil
		}

		ok, err := c.Check(ctx, address)
		if err != nil {
			return false, err
		}

		if err := store.Set(ctx, key, ok, ttl); err != nil {
			log.WarnContext(ctx, "cache write failed", logger.Address(address), logger.Error(err))
		}
		return ok, nil
	})
}

// LRUStore is an in-process Store.
type LRUStore struct {
	lru *cache.LRU[string, bool]
}

func NewLRUStore(size int, opts ...cache.Option) *LRUStore {
	return &LRUStore{lru: cache.NewLRU[string, bool](max(size, 1), opts...)}
}

func (s *LRUStore) Get(_ context.Context, address string) (bool, bool, error) {
	ok, found := s.lru.Get(address)
	return ok, found, nil
}

func (s *LRUStore) Set(_ context.Context, address string, deliverable bool, ttl time.Duration) error {
	s.lru.PutWithTTL(address, deliverable, ttl)
	return nil
}

const redisKeyPrefix = "check:"

// RedisStore shares results between processes. Keys are
// "<storage prefix>check:<address>" and values "1" or "0".
type RedisStore struct {
	storage *redis.Storage
}

func NewRedisStore(storage *redis.Storage) *RedisStore {
	return &RedisStore{storage: storage}
}

func (s *RedisStore) Get(ctx context.Context, address string) (bool, bool, error) {
	val, found, err := s.storage.Get(ctx, redisKeyPrefix+address)
	if err != nil || !found {
		return false, false, err
	}
	return string(val) == "1", true, nil
}

func (s *RedisStore) Set(ctx context.Context, address string, deliverable bool, ttl time.Duration) error {
	val := []byte("0")
	if deliverable {
		val = []byte("1")
	}
	return s.storage.Set(ctx, redisKeyPrefix+address, val, ttl)
}
