// Package session issues opaque session identifiers and keeps small,
// per-session state for a bounded time.
//
// A MemoryStore holds at most Config.Capacity sessions. Each session lives for
// Config.TTL from the moment it was created; reading it does not extend that.
// When the store is full, creating a session first reclaims expired entries and
// then evicts the least recently used one. Expired and evicted ids behave
// exactly like ids that were never issued.
//
// # Usage
//
//	store := session.NewFromConfig(cfg, session.WithLogger(log))
//	defer store.Close()
//
//	sess, err := store.Create(ctx, token)
//
//	sess, ok := store.Get(ctx, id)
//	if !ok {
//		return session.ErrSessionNotFound
//	}
//
// # Data bag
//
// Tools keep their state in the session's data bag under their own key.
// Update is a typed read-modify-write that holds the session's lock for the
// duration of the callback and commits only on success:
//
//	err := session.Update(sess, "calculator_history", func(h *[]Record) error {
//		*h = append(*h, rec)
//		return nil
//	})
//
// The store guarantees structural safety of each bag. It does not make
// multi-step tool logic atomic across separate Update calls.
package session
