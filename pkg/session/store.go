package session

import "context"

// Store defines the session registry used by tool handlers.
//
// Expiry and eviction are modelled as absence: Get never distinguishes an
// expired or evicted id from one that was never issued.
type Store interface {
	// Create issues a fresh id, stores an empty session under it and returns it.
	// token is the optional bearer credential presented by the caller.
	Create(ctx context.Context, token string) (*Session, error)

	// Get returns the live session for id.
	Get(ctx context.Context, id string) (*Session, bool)

	// Len returns the number of stored sessions.
	Len() int

	// Ping returns an error when the store can no longer serve requests.
	Ping(ctx context.Context) error

	// Close releases background resources and drops all sessions.
	Close() error
}
