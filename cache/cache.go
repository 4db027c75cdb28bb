package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL applies to every cached read view.
const DefaultTTL = 3600 * time.Second

// ErrMiss reports that a key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is the key-value surface the read views use. The production
// implementation is redis; tests use an in-memory fake.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	SetEx(ctx context.Context, key, value string, ttl time.Duration) error
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrMiss
	}
	return value, err
}

func (s *RedisStore) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.SetEx(ctx, key, value, ttl).Err()
}

// GetOrCompute serves key from the store, or on a miss runs compute,
// caches the result for ttl, and returns it. The cache is never the
// system of record: a store failure degrades to computing every time.
func GetOrCompute(ctx context.Context, s Store, key string, ttl time.Duration, compute func() (string, error)) (string, error) {
	value, err := s.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrMiss) {
		log.Errorln("cache get error for", key, ":", err)
	}

	value, err = compute()
	if err != nil {
		return "", err
	}

	if err := s.SetEx(ctx, key, value, ttl); err != nil {
		log.Errorln("cache set error for", key, ":", err)
	}
	return value, nil
}
