// Package cache provides a generic, thread-safe LRU (Least Recently Used) cache
// with a fixed per-entry time-to-live.
//
// The cache bounds memory in two ways: it never holds more than its configured
// capacity, and it treats entries older than the time-to-live as absent. Expired
// entries are reclaimed lazily (on read, or when an insert needs room) or
// explicitly through DeleteExpired; there is no background goroutine inside the
// cache.
//
// # Usage
//
//	c := cache.NewLRUCache[string, *Session](128, time.Hour)
//
//	c.Put("abc", sess)
//
//	// Retrieve items (marks as recently used, does not extend the ttl)
//	sess, found := c.Get("abc")
//
// # Expiry
//
// The deadline of an entry is fixed when it is inserted (or replaced with Put).
// Get refreshes recency only, so a frequently read entry still expires on time.
//
// # Capacity Management
//
// When the cache is full and a new key is added:
//
//  1. All expired entries are reclaimed
//  2. If the cache is still full, the least recently used entry is evicted
//  3. The eviction callback, if set, is called with the key, value and reason
//  4. The new entry is added
//
// # Thread Safety
//
// All operations are guarded by a single mutex and never perform I/O.
package cache
