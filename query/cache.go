package query

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// entryState classifies a cache read.
type entryState int

const (
	entryMiss entryState = iota
	entryFresh
	entryStale // past staleAt but not expired; usable as a fallback
)

type cacheEntry struct {
	value     []byte
	staleAt   time.Time
	expiresAt time.Time
}

// Cache is the key-addressed store behind the query layer. Values are kept
// as JSON so cached data can never be mutated through a shared pointer.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]*cacheEntry
	now     func() time.Time
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[Key]*cacheEntry),
		now:     time.Now,
	}
}

func (c *Cache) get(key Key) ([]byte, entryState) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, entryMiss
	}
	now := c.now()
	if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
		return nil, entryMiss
	}
	if !entry.staleAt.IsZero() && now.After(entry.staleAt) {
		return entry.value, entryStale
	}
	return entry.value, entryFresh
}

// set stores value as JSON. A marshal failure only costs a cache entry, so
// it is logged rather than propagated into the query result.
func (c *Cache) set(key Key, value any, staleTime, maxAge time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("failed to cache query result")
		return
	}

	entry := &cacheEntry{value: data}
	now := c.now()
	if staleTime > 0 {
		entry.staleAt = now.Add(staleTime)
	}
	if maxAge > 0 {
		entry.expiresAt = now.Add(maxAge)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry
}

// Invalidate marks an entry stale so the next read refetches. The entry is
// kept until expiry as a stale-while-error fallback.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.entries[key]; ok {
		entry.staleAt = c.now().Add(-time.Second)
	}
}

// InvalidatePrefix invalidates every parameter variant of an operation.
func (c *Cache) InvalidatePrefix(prefix Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stale := c.now().Add(-time.Second)
	for key, entry := range c.entries {
		if key == prefix || strings.HasPrefix(string(key), string(prefix)+"/") {
			entry.staleAt = stale
		}
	}
}

// Evict removes an entry outright, with no stale fallback left behind.
func (c *Cache) Evict(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Seed stores a value obtained from a mutation response, saving the refetch
// the invalidation would otherwise cause.
func (c *Cache) Seed(key Key, value any, staleTime, maxAge time.Duration) {
	c.set(key, value, staleTime, maxAge)
}

// Clear drops everything. Called on logout.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]*cacheEntry)
}

// Len reports the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
