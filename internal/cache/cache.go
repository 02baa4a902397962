// Package cache keeps dictionary lookups for a base form in Redis.
package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/storage/redis/v3"

	"yomu/internal/models"
)

// DefaultTTL is used when no TTL is configured.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "entries:"

// Store is the subset of a fiber storage the cache needs.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
}

// NewRedisStorage connects to Redis. The same storage also backs the session store.
func NewRedisStorage(url string) *redis.Storage {
	return redis.New(redis.Config{
		URL:   url,
		Reset: false,
	})
}

// EntryCache stores the candidate entries of a term as JSON.
type EntryCache struct {
	store Store
	ttl   time.Duration
}

// New creates an EntryCache over store. A non-positive ttl uses DefaultTTL.
func New(store Store, ttl time.Duration) *EntryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &EntryCache{store: store, ttl: ttl}
}

func key(term string) string {
	return keyPrefix + term
}

// Get returns the cached entries for term. The second result is false on a miss.
// A cached empty list is a hit: the term is known to have no entries.
func (c *EntryCache) Get(term string) ([]models.Entry, bool, error) {
	data, err := c.store.Get(key(term))
	if err != nil {
		return nil, false, fmt.Errorf("cache get %q: %w", term, err)
	}
	if len(data) == 0 {
		return nil, false, nil
	}

	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false, fmt.Errorf("cache decode %q: %w", term, err)
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, true, nil
}

// Set caches entries for term.
func (c *EntryCache) Set(term string, entries []models.Entry) error {
	if entries == nil {
		entries = []models.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("cache encode %q: %w", term, err)
	}
	if err := c.store.Set(key(term), data, c.ttl); err != nil {
		return fmt.Errorf("cache set %q: %w", term, err)
	}
	return nil
}

// Invalidate drops the cached entries for term.
func (c *EntryCache) Invalidate(term string) error {
	return c.store.Delete(key(term))
}
