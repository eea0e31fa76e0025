package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/statetools/pkg/cache"
	"github.com/dmitrymomot/statetools/pkg/logger"
)

// maxIDAttempts bounds retries on the (practically impossible) live id collision.
const maxIDAttempts = 3

// MemoryStore implements Store on top of a bounded, expiring LRU cache.
type MemoryStore struct {
	config   Config
	logger   *slog.Logger
	now      func() time.Time
	newID    func() (uuid.UUID, error)
	sessions *cache.LRUCache[string, *Session]

	ticker *time.Ticker
	done   chan struct{}

	// lifecycle orders Create against Close: inserts hold it for reading,
	// Close holds it for writing while it clears the cache.
	lifecycle sync.RWMutex
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewMemoryStore creates a new in-memory session store.
// It panics if the configured capacity or ttl is not positive.
func NewMemoryStore(opts ...Option) *MemoryStore {
	m := &MemoryStore{
		config: DefaultConfig(),
		logger: logger.Discard(),
		now:    time.Now,
		newID:  uuid.NewRandom,
		done:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.config.Capacity <= 0 {
		panic("session: capacity must be positive")
	}
	if m.config.TTL <= 0 {
		panic("session: ttl must be positive")
	}

	m.sessions = cache.NewLRUCache[string, *Session](m.config.Capacity, m.config.TTL, cache.WithClock(m.now))
	m.sessions.SetEvictCallback(m.onEvict)

	if m.config.CleanupInterval > 0 {
		m.ticker = time.NewTicker(m.config.CleanupInterval)
		go m.cleanupLoop()
	}

	return m
}

// Create issues a new session. It may evict the least recently used session
// when the store is full.
func (m *MemoryStore) Create(ctx context.Context, token string) (*Session, error) {
	m.lifecycle.RLock()
	defer m.lifecycle.RUnlock()

	if m.closed.Load() {
		return nil, ErrStoreClosed
	}

	for range maxIDAttempts {
		id, err := m.newID()
		if err != nil {
			return nil, errors.Join(ErrIDGeneration, err)
		}

		sess := newSession(id.String(), token, m.now())
		if !m.sessions.Add(sess.ID, sess) {
			continue
		}

		m.logger.DebugContext(ctx, "session created",
			logger.Component("session_store"),
			logger.SessionID(sess.ID),
			slog.Bool("has_token", sess.HasToken()),
		)
		return sess, nil
	}

	return nil, ErrIDGeneration
}

// Get retrieves a live session by id.
func (m *MemoryStore) Get(_ context.Context, id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	return m.sessions.Get(id)
}

// Len returns the number of stored sessions, including expired ones not yet reclaimed.
func (m *MemoryStore) Len() int {
	return m.sessions.Len()
}

// DeleteExpired reclaims expired sessions and returns how many were removed.
func (m *MemoryStore) DeleteExpired() int {
	return m.sessions.DeleteExpired()
}

// Ping reports whether the store accepts new sessions.
func (m *MemoryStore) Ping(context.Context) error {
	if m.closed.Load() {
		return ErrStoreClosed
	}
	return nil
}

// Close stops the cleanup goroutine and drops all sessions.
func (m *MemoryStore) Close() error {
	m.closeOnce.Do(func() {
		m.lifecycle.Lock()
		m.closed.Store(true)
		m.sessions.Clear()
		m.lifecycle.Unlock()

		if m.ticker != nil {
			m.ticker.Stop()
		}
		close(m.done)
	})
	return nil
}

// cleanupLoop runs periodic cleanup of expired sessions
func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			if n := m.DeleteExpired(); n > 0 {
				m.logger.Debug("expired sessions reclaimed",
					logger.Component("session_store"),
					slog.Int("count", n),
				)
			}
		case <-m.done:
			return
		}
	}
}

// Runs under the cache lock; must not call back into the cache.
func (m *MemoryStore) onEvict(id string, _ *Session, reason cache.EvictReason) {
	if reason == cache.EvictCleared {
		return
	}
	m.logger.Debug("session evicted",
		logger.Component("session_store"),
		logger.SessionID(id),
		slog.String("reason", reason.String()),
	)
}
