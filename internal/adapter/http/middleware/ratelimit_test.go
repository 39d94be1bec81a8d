package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestFixedWindowLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("admits up to the ceiling and rejects the next", func(t *testing.T) {
		l := NewFixedWindowLimiter(10, time.Minute)

		for i := 0; i < 10; i++ {
			if !l.Allow(ctx, "1.2.3.4") {
				t.Fatalf("request %d should have been admitted", i+1)
			}
		}
		if l.Allow(ctx, "1.2.3.4") {
			t.Fatalf("request 11 should have been rejected")
		}
	})

	t.Run("a fresh window admits again", func(t *testing.T) {
		l := NewFixedWindowLimiter(1, time.Minute)
		start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		l.now = func() time.Time { return start }

		if !l.Allow(ctx, "1.2.3.4") {
			t.Fatalf("first request should pass")
		}
		if l.Allow(ctx, "1.2.3.4") {
			t.Fatalf("second request in the window should be rejected")
		}

		// Exactly the window width elapsed still counts as the same window.
		l.now = func() time.Time { return start.Add(time.Minute) }
		if l.Allow(ctx, "1.2.3.4") {
			t.Fatalf("window-boundary request should still be rejected")
		}

		l.now = func() time.Time { return start.Add(time.Minute + time.Second) }
		if !l.Allow(ctx, "1.2.3.4") {
			t.Fatalf("request after the window should be admitted")
		}
	})

	t.Run("callers are throttled independently", func(t *testing.T) {
		l := NewFixedWindowLimiter(1, time.Minute)

		if !l.Allow(ctx, "1.2.3.4") {
			t.Fatalf("first caller should pass")
		}
		if !l.Allow(ctx, "5.6.7.8") {
			t.Fatalf("second caller must not share the first caller's window")
		}
	})
}

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(headers map[string]string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		for k, v := range headers {
			c.Request.Header.Set(k, v)
		}
		return c
	}

	t.Run("first forwarded entry wins", func(t *testing.T) {
		c := newCtx(map[string]string{
			"X-Forwarded-For":  " 203.0.113.9 , 10.0.0.1",
			"CF-Connecting-IP": "198.51.100.7",
		})
		if got := ClientIP(c); got != "203.0.113.9" {
			t.Fatalf("expected 203.0.113.9, got %q", got)
		}
	})

	t.Run("falls back to cloudflare header", func(t *testing.T) {
		c := newCtx(map[string]string{"CF-Connecting-IP": "198.51.100.7"})
		if got := ClientIP(c); got != "198.51.100.7" {
			t.Fatalf("expected 198.51.100.7, got %q", got)
		}
	})

	t.Run("unknown when nothing is set", func(t *testing.T) {
		c := newCtx(nil)
		if got := ClientIP(c); got != "unknown" {
			t.Fatalf("expected unknown, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l := NewFixedWindowLimiter(1, time.Minute)
	r := gin.New()
	r.POST("/v1/public/consultar-os", RateLimit(l), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/public/consultar-os", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := do(); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w := do()
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if body := w.Body.String(); body != `{"error":"Muitas requisições. Aguarde um momento."}` {
		t.Fatalf("unexpected body %s", body)
	}
}
