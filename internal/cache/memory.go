package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	content   string
	writtenAt time.Time
}

// MemoryCache is an in-process Cache backend. Entries are never evicted;
// stale ones are simply reported as misses once their age reaches the TTL.
type MemoryCache struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryCache creates an in-memory cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

// NewMemoryCacheWithClock creates an in-memory cache whose notion of "now"
// comes from the supplied function. Tests use this to step time across the
// expiry boundary.
func NewMemoryCacheWithClock(ttl time.Duration, now func() time.Time) *MemoryCache {
	c := NewMemoryCache(ttl)
	c.now = now
	return c
}

// Get returns the cached content for (text, locale). An entry whose age is
// the TTL or more is a miss.
func (c *MemoryCache) Get(ctx context.Context, text, locale string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[Key(text, locale)]
	if !ok {
		return "", false, nil
	}
	if c.now().Sub(entry.writtenAt) >= c.ttl {
		return "", false, nil
	}
	return entry.content, true, nil
}

// Set stores content for (text, locale), overwriting any previous entry and
// restarting its TTL.
func (c *MemoryCache) Set(ctx context.Context, text, locale, content string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[Key(text, locale)] = memoryEntry{content: content, writtenAt: c.now()}
	return nil
}
