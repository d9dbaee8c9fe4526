package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage is a namespaced key-value store on top of a go-redis client.
// Every key is stored as prefix + key, so Reset only touches its own keys.
type Storage struct {
	db            redis.UniversalClient
	prefix        string
	scanBatchSize int64
}

// NewStorage wraps client using cfg.KeyPrefix and cfg.ScanBatchSize.
func NewStorage(client redis.UniversalClient, cfg Config) *Storage {
	batch := int64(cfg.ScanBatchSize)
	if batch <= 0 {
		batch = 1000
	}
	return &Storage{
		db:            client,
		prefix:        cfg.KeyPrefix,
		scanBatchSize: batch,
	}
}

// Get returns the stored value. found is false for missing keys.
func (s *Storage) Get(ctx context.Context, key string) (val []byte, found bool, err error) {
	if key == "" {
		return nil, false, nil
	}

	val, err = s.db.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrStorage, err)
	}
	return val, true, nil
}

// Set stores val under key. A zero ttl means no expiration.
func (s *Storage) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	if err := s.db.Set(ctx, s.prefix+key, val, ttl).Err(); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.db.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}

// Reset deletes every key under the storage prefix using SCAN, so the rest
// of the database is left alone.
func (s *Storage) Reset(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.db.Scan(ctx, cursor, s.prefix+"*", s.scanBatchSize).Result()
		if err != nil {
			return errors.Join(ErrStorage, err)
		}
		if len(keys) > 0 {
			if err := s.db.Del(ctx, keys...).Err(); err != nil {
				return errors.Join(ErrStorage, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Conn returns the underlying client.
func (s *Storage) Conn() redis.UniversalClient {
	return s.db
}
