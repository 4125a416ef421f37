package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists entries as plain Redis string values without
// expiration.  It is the default backend.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an already-connected client.  The caller owns the
// client's lifecycle.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
