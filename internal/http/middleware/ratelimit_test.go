package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsFullMinuteBudget(t *testing.T) {
	now := time.Now()
	rl := newRateLimiter(3, func() time.Time { return now })

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d within budget", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"), "budget exhausted")
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	now := time.Now()
	rl := newRateLimiter(60, func() time.Time { return now }) // one token per second

	for i := 0; i < 60; i++ {
		assert.True(t, rl.Allow("10.0.0.1"))
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	now = now.Add(2 * time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiterTracksIPsIndependently(t *testing.T) {
	now := time.Now()
	rl := newRateLimiter(1, func() time.Time { return now })

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "second IP has its own bucket")
}

func TestRateLimitMiddlewareRejectsWith429(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := RateLimit(1)(handler)

	req := httptest.NewRequest(http.MethodPost, "/chat/message", nil)
	req.Header.Set("X-Real-Ip", "10.0.0.9")

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
