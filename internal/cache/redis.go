package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wayfare/internal/config"
	"wayfare/internal/port"
)

// NewRedis creates a Redis client from config.
func NewRedis(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

type redisLocker struct {
	rdb *redis.Client
}

// NewRedisLocker creates a Redis-backed Locker using SET NX with a TTL.
// The TTL guards against a lock leaking if the process dies mid-request.
func NewRedisLocker(rdb *redis.Client) port.Locker {
	return &redisLocker{rdb: rdb}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redisLocker.Acquire: %w", err)
	}
	return ok, nil
}

func (l *redisLocker) Release(ctx context.Context, key string) error {
	if err := l.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redisLocker.Release: %w", err)
	}
	return nil
}
