// Package regexcache provides a bounded, concurrency-safe memoization
// cache for compiled patterns, keyed by exact pattern text. Once an
// entry is over the fixed capacity the least-recently-used pattern is
// evicted. Concurrent compiles of the same pattern are deduplicated so
// the pattern text is parsed at most once per residence in the cache.
package regexcache

import (
	"container/list"
	"sync"

	"golang.org/x/sync/singleflight"
)

// DefaultCapacity is the entry limit used by callers that do not pick
// their own bound.
const DefaultCapacity = 1024

// CompileFunc produces the cached value for a pattern. It is invoked at
// most once per pattern per cache residence.
type CompileFunc[V any] func(pattern string) (V, error)

// Stats reports cache effectiveness counters.
type Stats struct {
	Hits      uint64 // lookups served from the cache
	Misses    uint64 // lookups that required a compile
	Evictions uint64 // entries removed by the LRU policy
}

// Cache is a bounded LRU memoization cache. The zero value is not
// usable; construct with New.
type Cache[V any] struct {
	mu      sync.Mutex
	ll      *list.List               // front is least recently used
	items   map[string]*list.Element // pattern -> list element
	cap     int
	compile CompileFunc[V]
	group   singleflight.Group
	stats   Stats
}

type entry[V any] struct {
	key   string
	value V
}

// New creates a cache holding at most capacity entries. A capacity of
// zero or below falls back to DefaultCapacity.
func New[V any](capacity int, compile CompileFunc[V]) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[V]{
		ll:      list.New(),
		items:   make(map[string]*list.Element),
		cap:     capacity,
		compile: compile,
	}
}

// Get returns the cached value for pattern without compiling. A hit
// refreshes the entry's recency.
func (c *Cache[V]) Get(pattern string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[pattern]
	if !ok {
		var zero V
		return zero, false
	}
	c.ll.MoveToBack(elem)
	c.stats.Hits++
	return elem.Value.(*entry[V]).value, true
}

// Compile returns the memoized value for pattern, compiling it on first
// use. Compile failures are returned to every concurrent caller and are
// not cached, so a corrected pattern text is never shadowed by an old
// error.
func (c *Cache[V]) Compile(pattern string) (V, error) {
	if v, ok := c.Get(pattern); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(pattern, func() (any, error) {
		// Re-check: another flight may have inserted between the miss
		// and this call.
		if v, ok := c.Get(pattern); ok {
			return v, nil
		}

		compiled, err := c.compile(pattern)
		if err != nil {
			return nil, err
		}
		c.insert(pattern, compiled)
		return compiled, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// insert stores a freshly compiled value and applies the LRU bound.
func (c *Cache[V]) insert(pattern string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Misses++

	if elem, ok := c.items[pattern]; ok {
		c.ll.MoveToBack(elem)
		elem.Value.(*entry[V]).value = value
		return
	}

	elem := c.ll.PushBack(&entry[V]{key: pattern, value: value})
	c.items[pattern] = elem

	for c.ll.Len() > c.cap {
		oldest := c.ll.Front()
		if oldest == nil {
			break
		}
		evicted := c.ll.Remove(oldest).(*entry[V])
		delete(c.items, evicted.key)
		c.stats.Evictions++
	}
}

// Len returns the number of cached patterns.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Capacity returns the cache's entry limit.
func (c *Cache[V]) Capacity() int {
	return c.cap
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
