// Package cache is a small in-memory TTL cache for query responses, keyed
// by a hash of the query and its result-shaping parameters.
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"docnav/internal/models"
)

// Params are the request knobs that change a cached result.
type Params struct {
	NResults    int
	IncludeCode bool
}

// Stats is the counter snapshot surfaced on /stats.
type Stats struct {
	Enabled       bool          `json:"enabled"`
	TotalEntries  int           `json:"total_entries"`
	ActiveEntries int           `json:"active_entries"`
	TTL           time.Duration `json:"ttl_seconds"`
	Hits          int64         `json:"hits"`
	Misses        int64         `json:"misses"`
}

type entry struct {
	response models.QueryResponse
	storedAt time.Time
}

// Cache holds query responses for a fixed TTL. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	enabled bool

	hits   int64
	misses int64

	now func() time.Time
}

// New creates a cache. A disabled cache accepts all calls and stores
// nothing.
func New(enabled bool, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		enabled: enabled,
		now:     time.Now,
	}
}

func key(query string, params Params) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s:%d:%t", query, params.NResults, params.IncludeCode)))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached response for the query, if present and fresh.
// Expired entries are deleted on access.
func (c *Cache) Get(query string, params Params) (models.QueryResponse, bool) {
	if !c.enabled {
		return models.QueryResponse{}, false
	}

	k := key(query, params)
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[k]
	if !ok {
		c.misses++
		return models.QueryResponse{}, false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, k)
		c.misses++
		return models.QueryResponse{}, false
	}
	c.hits++
	return e.response, true
}

// Set stores a response for the query.
func (c *Cache) Set(query string, params Params, resp models.QueryResponse) {
	if !c.enabled {
		return
	}
	k := key(query, params)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = entry{response: resp, storedAt: c.now()}
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Snapshot returns current cache statistics.
func (c *Cache) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := 0
	now := c.now()
	for _, e := range c.entries {
		if now.Sub(e.storedAt) <= c.ttl {
			active++
		}
	}
	return Stats{
		Enabled:       c.enabled,
		TotalEntries:  len(c.entries),
		ActiveEntries: active,
		TTL:           c.ttl,
		Hits:          c.hits,
		Misses:        c.misses,
	}
}
