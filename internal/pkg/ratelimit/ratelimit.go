// internal/pkg/ratelimit/ratelimit.go
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a redis-backed fixed-window counter keyed per client IP.
type Limiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

func NewLimiter(client *redis.Client, max int64, window time.Duration) *Limiter {
	if max <= 0 {
		max = 100
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &Limiter{client: client, max: max, window: window}
}

// Allow increments the window counter for ip and reports whether the request
// is within the configured budget.
func (l *Limiter) Allow(ctx context.Context, ip string) (bool, error) {
	key := fmt.Sprintf("ratelimit:api:%s", ip)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit: %w", err)
	}

	// Set expiration on first hit in the window
	if count == 1 {
		l.client.Expire(ctx, key, l.window)
	}

	return count <= l.max, nil
}

// Reset clears the window counter for ip.
func (l *Limiter) Reset(ctx context.Context, ip string) error {
	return l.client.Del(ctx, fmt.Sprintf("ratelimit:api:%s", ip)).Err()
}
