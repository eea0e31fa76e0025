package session

import (
	"fmt"
	"sync"
	"time"
)

// Session is one client's interaction window. Its data bag is private and
// reachable only through Update and View, which serialize access per session.
type Session struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	BearerToken string    `json:"-"`

	mu   sync.Mutex
	data map[string]any
}

func newSession(id, token string, now time.Time) *Session {
	return &Session{
		ID:          id,
		CreatedAt:   now.UTC(),
		BearerToken: token,
		data:        make(map[string]any),
	}
}

// HasToken reports whether a credential was presented when the session was created.
func (s *Session) HasToken() bool {
	return s != nil && s.BearerToken != ""
}

// Update runs fn against a working copy of the value stored under key while
// holding the session lock. An absent key starts as the zero value of T. The
// copy is written back only when fn returns nil, so a failing fn leaves the
// bag untouched. Slices and maps are copied one level deep and values
// implementing Cloner are copied with Clone; state behind pointers is shared,
// so fn must not mutate it before failing.
//
// Two Update calls on the same session never overlap; calls on different
// sessions never wait on each other.
func Update[T any](s *Session, key string, fn func(v *T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := lookup[T](s, key)
	if err != nil {
		return err
	}
	current = cloneValue(current)

	if err := fn(&current); err != nil {
		return err
	}

	s.data[key] = current
	return nil
}

// View runs fn with the value stored under key while holding the session lock.
// ok is false when the key has not been initialized yet.
func View[T any](s *Session, key string, fn func(v T, ok bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.data[key]
	current, err := lookup[T](s, key)
	if err != nil {
		return err
	}

	fn(current, ok)
	return nil
}

// Must be called with s.mu held.
func lookup[T any](s *Session, key string) (T, error) {
	var zero T
	raw, ok := s.data[key]
	if !ok {
		return zero, nil
	}
	typed, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T", ErrTypeMismatch, key, raw)
	}
	return typed, nil
}
