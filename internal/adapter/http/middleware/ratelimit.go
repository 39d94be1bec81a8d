package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateWindow is the fixed throttling window shared by both public endpoints.
const RateWindow = 60 * time.Second

// Limiter admits or rejects one request from the given caller identity.
type Limiter interface {
	Allow(ctx context.Context, id string) bool
}

type windowRecord struct {
	count       int
	windowStart time.Time
}

// FixedWindowLimiter is the per-instance throttle: a mutex-guarded counter map
// with a fixed window. State is process-local and not shared across instances;
// that is an accepted limitation of this guard, not a security boundary.
type FixedWindowLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	records map[string]*windowRecord
}

var _ Limiter = (*FixedWindowLimiter)(nil)

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		records: make(map[string]*windowRecord),
	}
}

func (l *FixedWindowLimiter) Allow(_ context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	rec, ok := l.records[id]
	if !ok || now.Sub(rec.windowStart) > l.window {
		l.records[id] = &windowRecord{count: 1, windowStart: now}
		return true
	}
	if rec.count >= l.limit {
		return false
	}
	rec.count++
	return true
}

// ClientIP derives the caller identity for throttling: first entry of
// X-Forwarded-For, then CF-Connecting-IP, then the literal "unknown".
func ClientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if ip := c.GetHeader("CF-Connecting-IP"); ip != "" {
		return ip
	}
	return "unknown"
}

// RateLimit runs before any other work on a public route; a rejected request
// produces no side effects downstream.
func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), ClientIP(c)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Muitas requisições. Aguarde um momento.",
			})
			return
		}
		c.Next()
	}
}
