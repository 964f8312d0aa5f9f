package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"pulse-share/internal/domain"
)

// MemoryCache is an in-memory cache with TTL support.
type MemoryCache struct {
	sets sync.Map
	ttl  time.Duration
	stop chan struct{}
	once sync.Once
}

// cacheEntry holds a cached share set with expiration metadata.
type cacheEntry struct {
	set       domain.ShareSet
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory cache with the specified TTL.
// Call Close to stop the cleanup loop.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	cache := &MemoryCache{ttl: ttl, stop: make(chan struct{})}
	go cache.cleanup(time.Minute)
	return cache
}

// NormalizedKey returns the cache key for an item: /{type}/{id}/{fingerprint}.
// The fingerprint changes whenever any content field changes.
func NormalizedKey(ct domain.ContentType, item domain.ContentItem) string {
	fields := domain.FieldsOf(item)
	return fmt.Sprintf("/%s/%s/%s", ct, fields.ID, fingerprint(fields))
}

func fingerprint(fields domain.ContentFields) string {
	data, _ := json.Marshal(fields)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// Get retrieves a share set from the cache.
// Returns a copy of the set and true if found and not expired, otherwise nil and false.
func (c *MemoryCache) Get(_ context.Context, ct domain.ContentType, item domain.ContentItem) (domain.ShareSet, bool) {
	key := NormalizedKey(ct, item)
	value, ok := c.sets.Load(key)
	if !ok {
		return nil, false
	}

	entry := value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.sets.Delete(key)
		return nil, false
	}

	return entry.set.Clone(), true
}

// Set stores a share set in the cache with the configured TTL.
func (c *MemoryCache) Set(_ context.Context, ct domain.ContentType, item domain.ContentItem, set domain.ShareSet) {
	c.sets.Store(NormalizedKey(ct, item), &cacheEntry{
		set:       set.Clone(),
		expiresAt: time.Now().Add(c.ttl),
	})
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	n := 0
	c.sets.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Close stops the cleanup loop. It is safe to call more than once.
func (c *MemoryCache) Close() error {
	c.once.Do(func() { close(c.stop) })
	return nil
}

// cleanup periodically removes expired entries from the cache.
func (c *MemoryCache) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.evictExpired(time.Now())
		}
	}
}

func (c *MemoryCache) evictExpired(now time.Time) {
	c.sets.Range(func(key, value any) bool {
		entry := value.(*cacheEntry)
		if now.After(entry.expiresAt) {
			c.sets.Delete(key)
		}
		return true
	})
}
