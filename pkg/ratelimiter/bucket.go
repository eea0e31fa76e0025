package ratelimiter

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// DefaultSweepThreshold is the number of tracked keys above which new keys
// trigger a sweep of idle ones.
const DefaultSweepThreshold = 1024

// Bucket is an in-memory token bucket limiter keyed by caller.
//
// A key idle for a full refill window is indistinguishable from a new one,
// so such keys are dropped once the key count passes the sweep threshold.
// Sweeps run at most once per refill interval.
type Bucket struct {
	config         Config
	now            func() time.Time
	sweepThreshold int

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// Option configures a Bucket.
type Option func(*Bucket)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(b *Bucket) {
		if now != nil {
			b.now = now
		}
	}
}

// WithSweepThreshold sets the key count above which idle keys are swept.
func WithSweepThreshold(n int) Option {
	return func(b *Bucket) {
		if n > 0 {
			b.sweepThreshold = n
		}
	}
}

// NewBucket creates a token bucket limiter.
func NewBucket(config Config, opts ...Option) (*Bucket, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("%w: %+v", err, config)
	}

	b := &Bucket{
		config:         config,
		now:            time.Now,
		sweepThreshold: DefaultSweepThreshold,
		buckets:        make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Allow consumes one token for key.
func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN consumes n tokens for key. A denied request does not consume tokens.
func (b *Bucket) AllowN(_ context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	st, ok := b.buckets[key]
	if !ok {
		if len(b.buckets) >= b.sweepThreshold && now.Sub(b.lastSweep) >= b.config.RefillInterval {
			b.lastSweep = now
			b.deleteIdle(now, b.refillWindow())
		}
		st = &bucket{tokens: b.config.Capacity, lastRefill: now}
		b.buckets[key] = st
	}
	st.lastAccess = now

	// Cap intervals so a long idle period cannot overflow.
	maxIntervals := int64(b.config.Capacity/b.config.RefillRate + 1)
	intervals := int(min(int64(now.Sub(st.lastRefill)/b.config.RefillInterval), maxIntervals))
	if intervals > 0 {
		st.tokens = min(st.tokens+intervals*b.config.RefillRate, b.config.Capacity)
		st.lastRefill = st.lastRefill.Add(time.Duration(intervals) * b.config.RefillInterval)
		if st.tokens == b.config.Capacity {
			st.lastRefill = now
		}
	}

	res := Result{
		Limit:     b.config.Capacity,
		Remaining: st.tokens - n,
		ResetAt:   st.lastRefill.Add(b.config.RefillInterval),
	}
	if res.Allowed() {
		st.tokens -= n
	}
	return res, nil
}

// Must be called with b.mu held.
func (b *Bucket) deleteIdle(now time.Time, maxIdle time.Duration) int {
	var n int
	for key, st := range b.buckets {
		if now.Sub(st.lastAccess) >= maxIdle {
			delete(b.buckets, key)
			n++
		}
	}
	return n
}

// refillWindow is the time an empty bucket needs to refill completely.
func (b *Bucket) refillWindow() time.Duration {
	intervals := (b.config.Capacity + b.config.RefillRate - 1) / b.config.RefillRate
	return time.Duration(intervals) * b.config.RefillInterval
}

// Len returns the number of tracked keys.
func (b *Bucket) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buckets)
}
