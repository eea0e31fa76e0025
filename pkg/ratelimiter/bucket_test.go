package ratelimiter_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/statetools/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *clock {
	return &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()

	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1, RefillInterval: 0},
	} {
		_, err := ratelimiter.NewBucket(cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}
}

func TestBucket_Allow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("burst then deny", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		b, err := ratelimiter.NewBucket(ratelimiter.PerMinute(3), ratelimiter.WithClock(clk.Now))
		require.NoError(t, err)

		for i := range 3 {
			res, err := b.Allow(ctx, "k")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, 2-i, res.Remaining)
		}

		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Equal(t, time.Minute, res.RetryAfter(clk.Now()))
	})

	t.Run("refills after interval", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		b, err := ratelimiter.NewBucket(ratelimiter.PerMinute(1), ratelimiter.WithClock(clk.Now))
		require.NoError(t, err)

		res, _ := b.Allow(ctx, "k")
		require.True(t, res.Allowed())
		res, _ = b.Allow(ctx, "k")
		require.False(t, res.Allowed())

		clk.Advance(59 * time.Second)
		res, _ = b.Allow(ctx, "k")
		assert.False(t, res.Allowed())

		clk.Advance(time.Second)
		res, _ = b.Allow(ctx, "k")
		assert.True(t, res.Allowed())
	})

	t.Run("long idle never exceeds capacity", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		b, err := ratelimiter.NewBucket(ratelimiter.PerMinute(2), ratelimiter.WithClock(clk.Now))
		require.NoError(t, err)

		_, _ = b.Allow(ctx, "k")
		clk.Advance(24 * time.Hour)

		res, _ := b.Allow(ctx, "k")
		assert.Equal(t, 1, res.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		b, err := ratelimiter.NewBucket(ratelimiter.PerMinute(1))
		require.NoError(t, err)

		res, _ := b.Allow(ctx, "a")
		assert.True(t, res.Allowed())
		res, _ = b.Allow(ctx, "b")
		assert.True(t, res.Allowed())
		assert.Equal(t, 2, b.Len())
	})

	t.Run("invalid token count", func(t *testing.T) {
		t.Parallel()
		b, err := ratelimiter.NewBucket(ratelimiter.PerMinute(1))
		require.NoError(t, err)

		_, err = b.AllowN(ctx, "k", 0)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})
}

func TestBucket_SweepsIdleKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("idle keys are dropped once the threshold is passed", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		b, err := ratelimiter.NewBucket(ratelimiter.PerMinute(1),
			ratelimiter.WithClock(clk.Now),
			ratelimiter.WithSweepThreshold(8),
		)
		require.NoError(t, err)

		for i := range 20 {
			_, err := b.Allow(ctx, fmt.Sprintf("10.0.0.%d", i))
			require.NoError(t, err)
		}
		assert.Equal(t, 20, b.Len(), "active keys are kept")

		clk.Advance(time.Minute)
		_, err = b.Allow(ctx, "10.0.1.1")
		require.NoError(t, err)
		assert.Equal(t, 1, b.Len())
	})

	t.Run("keys still refilling survive the sweep", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		b, err := ratelimiter.NewBucket(ratelimiter.Config{Capacity: 4, RefillRate: 1, RefillInterval: time.Minute},
			ratelimiter.WithClock(clk.Now),
			ratelimiter.WithSweepThreshold(2),
		)
		require.NoError(t, err)

		for range 4 {
			_, _ = b.Allow(ctx, "busy")
		}
		_, _ = b.Allow(ctx, "other")

		clk.Advance(2 * time.Minute)
		_, _ = b.Allow(ctx, "new")
		assert.Equal(t, 3, b.Len())

		res, err := b.Allow(ctx, "busy")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Remaining, "refill state of busy key is preserved")
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	b, err := ratelimiter.NewBucket(ratelimiter.PerMinute(1))
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := ratelimiter.Middleware(b, func(r *http.Request) string { return r.RemoteAddr }, nil)(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
