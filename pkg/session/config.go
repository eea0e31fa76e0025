package session

import "time"

// Config holds session store configuration.
type Config struct {
	// Capacity is the maximum number of live sessions.
	Capacity int `env:"SESSION_CAPACITY" envDefault:"128"`

	// TTL is measured from creation; reads do not extend it.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"1h"`

	// CleanupInterval for expired sessions (0 keeps expiry lazy)
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"0s"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		Capacity: 128,
		TTL:      time.Hour,
	}
}

// NewFromConfig creates a MemoryStore from the provided Config.
// Zero values fall back to the defaults.
func NewFromConfig(cfg Config, opts ...Option) *MemoryStore {
	return NewMemoryStore(append([]Option{WithConfig(cfg)}, opts...)...)
}
