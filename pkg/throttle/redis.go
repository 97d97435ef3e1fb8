package throttle

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a fixed-window limiter backed by INCR/EXPIRE, for multi-replica
// deployments where an in-process bucket would undercount.
type Redis struct {
	rdb    *redis.Client
	prefix string
	max    int64
	window time.Duration
}

func NewRedis(rdb *redis.Client, max int64, window time.Duration) *Redis {
	return &Redis{rdb: rdb, prefix: "throttle:login", max: max, window: window}
}

// Allow fails open: a Redis outage must not lock everyone out of login.
func (r *Redis) Allow(ctx context.Context, key string) bool {
	full := r.prefix + ":" + key
	n, err := r.rdb.Incr(ctx, full).Result()
	if err != nil {
		slog.Warn("throttle redis unavailable, allowing request", "error", err)
		return true
	}
	if n == 1 {
		if err := r.rdb.Expire(ctx, full, r.window).Err(); err != nil {
			slog.Warn("throttle redis expire failed", "key", full, "error", err)
		}
	}
	return n <= r.max
}
