package cache

import (
	"sync"
	"time"
)

// MaxEntryBytes mirrors the size cap of the cache backend the system was
// originally deployed on. Larger payloads are refused so callers fall back
// to reading the source of truth.
const MaxEntryBytes = 100 * 1024

type entry struct {
	data      []byte
	expiresAt time.Time
}

// Cache is a snapshot cache holding at most one value per key with a fixed
// TTL. It is constructed once per process and passed to whoever needs it.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New returns a cache with the given TTL. now may be nil, in which case
// time.Now is used; tests inject their own clock.
func New(ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the live value under key, or false if absent or expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.data, true
}

// Put stores data under key for the configured TTL. Oversized payloads are
// refused with ErrTooLarge; the caller is expected to log and move on.
func (c *Cache) Put(key string, data []byte) error {
	if len(data) > MaxEntryBytes {
		return ErrTooLarge
	}
	c.mu.Lock()
	c.entries[key] = entry{data: data, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

// Remove drops key. Removing an absent key is not an error.
func (c *Cache) Remove(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
