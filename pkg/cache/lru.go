package cache

import (
	"container/list"
	"sync"
	"time"
)

// EvictReason tells an eviction callback why an entry left the cache.
type EvictReason int

const (
	// EvictCapacity means the entry was the least recently used one when a new key needed room.
	EvictCapacity EvictReason = iota + 1
	// EvictExpired means the entry outlived its time-to-live.
	EvictExpired
	// EvictCleared means the whole cache was cleared.
	EvictCleared
)

func (r EvictReason) String() string {
	switch r {
	case EvictCapacity:
		return "capacity"
	case EvictExpired:
		return "expired"
	case EvictCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

type lruEntry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
	recency   *list.Element // position in the recency list
	deadline  *list.Element // position in the expiry list
}

// LRUCache is a thread-safe LRU cache with a fixed per-entry time-to-live.
// When the cache reaches its capacity, expired items are reclaimed first and
// then the least recently used item is evicted.
//
// Reading an entry refreshes its recency but never its expiry.
type LRUCache[K comparable, V any] struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time
	items    map[K]*lruEntry[K, V]
	recency  *list.List // front = most recently used
	expiry   *list.List // front = earliest deadline
	mu       sync.Mutex
	onEvict  func(key K, value V, reason EvictReason)
}

// Option configures an LRUCache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// NewLRUCache creates a new cache with the specified capacity and time-to-live.
// The capacity must be positive, otherwise it panics. A non-positive ttl
// disables expiry.
func NewLRUCache[K comparable, V any](capacity int, ttl time.Duration, opts ...Option) *LRUCache[K, V] {
	if capacity <= 0 {
		panic("LRU cache capacity must be positive")
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &LRUCache[K, V]{
		capacity: capacity,
		ttl:      ttl,
		now:      o.now,
		items:    make(map[K]*lruEntry[K, V], capacity),
		recency:  list.New(),
		expiry:   list.New(),
	}
}

// SetEvictCallback sets a callback function that is called when items are evicted.
// The callback runs with the cache lock held and must not call back into the cache.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V, reason EvictReason)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get retrieves a live value from the cache and marks it as recently used.
// Returns the value and true if found, zero value and false otherwise.
// An expired entry is removed and reported as missing.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	entry, ok := c.items[key]
	if !ok {
		return zero, false
	}

	if c.expired(entry, c.now()) {
		c.removeEntry(entry, EvictExpired)
		return zero, false
	}

	c.recency.MoveToFront(entry.recency)
	return entry.value, true
}

// Put adds or updates a value in the cache and (re)starts its time-to-live.
// If the cache is at capacity, expired items are reclaimed first; if it is
// still full the least recently used item is evicted.
// Returns the previous value if it existed, and a boolean indicating if it existed.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if entry, ok := c.items[key]; ok && !c.expired(entry, now) {
		oldValue := entry.value
		entry.value = value
		entry.expiresAt = c.deadline(now)
		c.recency.MoveToFront(entry.recency)
		c.expiry.MoveToBack(entry.deadline)
		return oldValue, true
	} else if ok {
		c.removeEntry(entry, EvictExpired)
	}

	c.insert(key, value, now)

	var zero V
	return zero, false
}

// Add inserts value only if key holds no live value.
// It reports whether the value was inserted. Capacity is enforced as in Put.
func (c *LRUCache[K, V]) Add(key K, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if entry, ok := c.items[key]; ok {
		if !c.expired(entry, now) {
			return false
		}
		c.removeEntry(entry, EvictExpired)
	}

	c.insert(key, value, now)
	return true
}

// Len returns the number of stored items, including expired items that
// have not been reclaimed yet.
func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// DeleteExpired reclaims every expired item and returns how many were removed.
func (c *LRUCache[K, V]) DeleteExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleteExpired(c.now())
}

// Clear removes all items from the cache.
// If an evict callback is set, it's called for each item.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for _, entry := range c.items {
			c.onEvict(entry.key, entry.value, EvictCleared)
		}
	}

	c.items = make(map[K]*lruEntry[K, V], c.capacity)
	c.recency.Init()
	c.expiry.Init()
}

// Must be called with lock held and key absent.
func (c *LRUCache[K, V]) insert(key K, value V, now time.Time) {
	if len(c.items) >= c.capacity {
		c.deleteExpired(now)
	}
	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	entry := &lruEntry[K, V]{key: key, value: value, expiresAt: c.deadline(now)}
	entry.recency = c.recency.PushFront(entry)
	entry.deadline = c.expiry.PushBack(entry)
	c.items[key] = entry
}

// Must be called with lock held.
func (c *LRUCache[K, V]) deadline(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// Must be called with lock held.
func (c *LRUCache[K, V]) expired(entry *lruEntry[K, V], now time.Time) bool {
	return !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt)
}

// Expiry list is ordered by deadline because the ttl is constant.
// Must be called with lock held.
func (c *LRUCache[K, V]) deleteExpired(now time.Time) int {
	removed := 0
	for elem := c.expiry.Front(); elem != nil; elem = c.expiry.Front() {
		entry := elem.Value.(*lruEntry[K, V])
		if !c.expired(entry, now) {
			break
		}
		c.removeEntry(entry, EvictExpired)
		removed++
	}
	return removed
}

// Must be called with lock held.
func (c *LRUCache[K, V]) evictOldest() {
	elem := c.recency.Back()
	if elem != nil {
		c.removeEntry(elem.Value.(*lruEntry[K, V]), EvictCapacity)
	}
}

// Must be called with lock held.
func (c *LRUCache[K, V]) removeEntry(entry *lruEntry[K, V], reason EvictReason) {
	c.recency.Remove(entry.recency)
	c.expiry.Remove(entry.deadline)
	delete(c.items, entry.key)

	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value, reason)
	}
}
