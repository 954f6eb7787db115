// Package cache provides the size-bounded TTL cache shared by the
// classifier and scorer.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultSize bounds each cache when the caller does not configure one.
const DefaultSize = 1024

// TTL is an LRU cache whose entries expire after a fixed wall-clock duration.
// Expired entries are dropped lazily on lookup.
type TTL[V any] struct {
	lru  *expirable.LRU[string, V]
	ttl  time.Duration
	size int
}

// NewTTL returns a cache holding at most size entries, each valid for ttl.
// A non-positive size falls back to DefaultSize.
func NewTTL[V any](size int, ttl time.Duration) *TTL[V] {
	if size <= 0 {
		size = DefaultSize
	}
	return &TTL[V]{
		lru:  expirable.NewLRU[string, V](size, nil, ttl),
		ttl:  ttl,
		size: size,
	}
}

// Get returns the cached value for key if present and unexpired.
func (c *TTL[V]) Get(key string) (V, bool) {
	return c.lru.Get(key)
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *TTL[V]) Set(key string, value V) {
	c.lru.Add(key, value)
}

// Len reports the number of live entries.
func (c *TTL[V]) Len() int {
	return c.lru.Len()
}

// Duration reports the configured entry lifetime.
func (c *TTL[V]) Duration() time.Duration {
	return c.ttl
}

// Cap reports the configured entry bound.
func (c *TTL[V]) Cap() int {
	return c.size
}
