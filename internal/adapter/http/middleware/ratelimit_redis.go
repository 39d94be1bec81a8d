package middleware

import (
	"context"
	"log"
	"time"

	"github.com/leandrosouza2gf/ottoautoeletrtica/internal/infrastructure/database"
)

// RedisWindowLimiter is the shared-store variant used when the service runs
// horizontally scaled: one INCR-with-expiry counter per caller per window.
// Redis trouble fails open: the throttle is best-effort and must not take the
// public endpoints down with it.
type RedisWindowLimiter struct {
	client *database.RedisClient
	scope  string
	limit  int
	window time.Duration
}

var _ Limiter = (*RedisWindowLimiter)(nil)

func NewRedisWindowLimiter(client *database.RedisClient, scope string, limit int, window time.Duration) *RedisWindowLimiter {
	return &RedisWindowLimiter{client: client, scope: scope, limit: limit, window: window}
}

func (l *RedisWindowLimiter) Allow(ctx context.Context, id string) bool {
	count, err := l.client.IncrWindow(ctx, "ratelimit:"+l.scope+":"+id, l.window)
	if err != nil {
		log.Printf("[ratelimit][redis] falha ao contar id=%s err=%v", id, err)
		return true
	}
	return count <= int64(l.limit)
}
