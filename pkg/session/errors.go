package session

import "errors"

var (
	// ErrSessionNotFound indicates the id was never issued, has expired, or was evicted.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrIDGeneration indicates a session id could not be generated.
	ErrIDGeneration = errors.New("session.id_generation_failed")

	// ErrStoreClosed indicates the store was closed and accepts no new sessions.
	ErrStoreClosed = errors.New("session.store_closed")

	// ErrTypeMismatch indicates a data bag key holds a value of another type.
	ErrTypeMismatch = errors.New("session.type_mismatch")
)
