// Package ratelimiter implements an in-memory token bucket limiter and an
// HTTP middleware for it.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.PerMinute(30))
//	r.With(ratelimiter.Middleware(limiter, clientip.FromRequest, nil)).Post("/session", create)
//
// A denied request does not consume tokens. Buckets refill in whole
// intervals. Memory stays bounded by active callers: once more than
// WithSweepThreshold keys are tracked, keys idle for a full refill window are
// dropped when new keys arrive.
package ratelimiter
