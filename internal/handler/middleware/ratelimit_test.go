//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"runesse/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/limited", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func hit(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter(t *testing.T) {
	t.Run("burst then throttle per client", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 2})
		r := newLimitedRouter(rl)

		assert.Equal(t, http.StatusNoContent, hit(r, "10.0.0.1"))
		assert.Equal(t, http.StatusNoContent, hit(r, "10.0.0.1"))
		assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1"))
		// other clients keep their own bucket
		assert.Equal(t, http.StatusNoContent, hit(r, "10.0.0.2"))
	})

	t.Run("429 uses the failure envelope", func(t *testing.T) {
		rl := NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 1})
		r := newLimitedRouter(rl)
		hit(r, "10.0.0.3")

		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"ok":false,"error":"too many requests"}`, w.Body.String())
	})

	t.Run("idle visitors are pruned", func(t *testing.T) {
		now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		rl := NewRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 1})
		rl.now = func() time.Time { return now }

		rl.limiterFor("a")
		rl.limiterFor("b")
		assert.Len(t, rl.visitors, 2)

		now = now.Add(visitorIdleTTL + time.Second)
		rl.limiterFor("c")
		assert.Len(t, rl.visitors, 1)
		assert.Contains(t, rl.visitors, "c")
	})
}
