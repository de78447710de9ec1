package kvstore

import (
	"context"
	"errors"
	"time"

	"movecar/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the expiring store with a Redis instance. Per-key TTL
// maps directly onto Redis expiry.
type RedisStore struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedisStore(cfg config.StoreConfig) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisStore{client: client, timeout: cfg.Timeout}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	if err := s.client.Ping(ctx).Err(); err != nil {
		return WrapStoreErr(KindStoreFailure, "failed to ping redis", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, WrapStoreErr(KindStoreFailure, "failed to get key", err)
	}
	return val, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return WrapStoreErr(KindStoreFailure, "failed to put key", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return WrapStoreErr(KindStoreFailure, "failed to delete key", err)
	}
	return nil
}

func (s *RedisStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
