package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	// 120 requests per minute is one token every 0.5s
	rl := NewRateLimiter(120, 1)
	defer rl.Close()

	limiter := rl.GetLimiter("192.168.1.1")

	assert.True(t, limiter.Allow(), "First request should be allowed")
	assert.False(t, limiter.Allow(), "Second request should be blocked")

	time.Sleep(600 * time.Millisecond)

	assert.True(t, limiter.Allow(), "Request should be allowed after refill")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	rl := NewRateLimiter(2, 1)
	defer rl.Close()

	limiter1 := rl.GetLimiter("192.168.1.1")
	limiter2 := rl.GetLimiter("192.168.1.2")

	assert.True(t, limiter1.Allow())
	assert.True(t, limiter2.Allow())
	assert.False(t, limiter1.Allow())
	assert.False(t, limiter2.Allow())
	assert.Same(t, limiter1, rl.GetLimiter("192.168.1.1"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, 3)
	defer rl.Close()

	e := echo.New()
	handler := rl.Middleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		rec := httptest.NewRecorder()

		assert.NoError(t, handler(e.NewContext(req, rec)))
		if i < 3 {
			assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
		} else {
			assert.Equal(t, http.StatusTooManyRequests, rec.Code, "request %d", i)
			assert.Contains(t, rec.Body.String(), "rate_limit_exceeded")
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req.Header.Set("X-Real-IP", "10.0.0.2")
	rec := httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code, "another IP has its own bucket")
}

func TestRateLimiter_CloseTwice(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	rl.Close()
	assert.NotPanics(t, rl.Close)
}
