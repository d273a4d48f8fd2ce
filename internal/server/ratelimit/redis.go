package ratelimit

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Redis shares the budget between server instances. Every attempt renews
// the key's expiry, so the window restarts after each attempt.
type Redis struct {
	client *redis.Client
	cfg    Config
	prefix string
}

func NewRedis(client *redis.Client, cfg Config, prefix string) *Redis {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &Redis{client: client, cfg: cfg, prefix: prefix}
}

// Allow fails open: on a Redis error the attempt is allowed and the error
// returned for logging.
func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	if r.cfg.Requests <= 0 {
		return true, nil
	}
	redisKey := fmt.Sprintf("%s:%s", r.prefix, key)

	pipe := r.client.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, r.cfg.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, fmt.Errorf("redis error: %w", err)
	}
	return incr.Val() <= int64(r.cfg.Requests), nil
}

// Reset clears the counter for key.
func (r *Redis) Reset(ctx context.Context, key string) error {
	return r.client.Del(ctx, fmt.Sprintf("%s:%s", r.prefix, key)).Err()
}
