package session

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Option is a functional option for configuring the MemoryStore
type Option func(*MemoryStore)

// WithConfig sets custom configuration. Zero fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(m *MemoryStore) {
		if cfg.Capacity > 0 {
			m.config.Capacity = cfg.Capacity
		}
		if cfg.TTL > 0 {
			m.config.TTL = cfg.TTL
		}
		if cfg.CleanupInterval > 0 {
			m.config.CleanupInterval = cfg.CleanupInterval
		}
	}
}

// WithCapacity sets the maximum number of live sessions.
func WithCapacity(capacity int) Option {
	return func(m *MemoryStore) {
		m.config.Capacity = capacity
	}
}

// WithTTL sets the session time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(m *MemoryStore) {
		m.config.TTL = ttl
	}
}

// WithCleanupInterval enables a background sweep of expired sessions.
func WithCleanupInterval(interval time.Duration) Option {
	return func(m *MemoryStore) {
		m.config.CleanupInterval = interval
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(m *MemoryStore) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(m *MemoryStore) {
		if now != nil {
			m.now = now
		}
	}
}

// WithIDGenerator overrides session id generation. Intended for tests.
func WithIDGenerator(fn func() (uuid.UUID, error)) Option {
	return func(m *MemoryStore) {
		if fn != nil {
			m.newID = fn
		}
	}
}
