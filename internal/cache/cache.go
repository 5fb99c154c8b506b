package cache

import (
	"sync"
	"sync/atomic"
)

// CostFunc reports the cost of a value, usually its size in bytes.
type CostFunc[V any] func(V) int64

// Cache is a thread-safe LRU cache bounded by the total cost of its entries.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*cacheEntry[K, V]
	lru     lruList[K]
	cost    CostFunc[V]
	used    int64
	maxCost int64

	// Statistics (atomic for lock-free reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// cacheEntry holds a cached value with its LRU node and cost.
type cacheEntry[K comparable, V any] struct {
	value V
	cost  int64
	node  *lruNode[K]
}

// New creates a cache holding at most maxCost worth of values.
// A nil cost function counts every entry as 1.
func New[K comparable, V any](maxCost int64, cost CostFunc[V]) *Cache[K, V] {
	if cost == nil {
		cost = func(V) int64 { return 1 }
	}
	return &Cache[K, V]{
		entries: make(map[K]*cacheEntry[K, V]),
		cost:    cost,
		maxCost: maxCost,
	}
}

// Get retrieves a value and marks it as most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.lru.MoveToFront(e.node)
	c.hits.Add(1)
	return e.value, true
}

// Set stores a value, replacing any previous value for key, then evicts
// least recently used entries until the budget holds. It reports whether
// the value was stored; values costing more than the whole budget are not.
//
// The value is stored as-is. Callers must not modify it afterwards.
func (c *Cache[K, V]) Set(key K, value V) bool {
	cost := c.cost(value)

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[key]; ok {
		c.remove(old)
	}
	if cost > c.maxCost {
		return false
	}
	for c.used+cost > c.maxCost {
		c.remove(c.entries[c.lru.Oldest().key])
		c.evictions.Add(1)
	}
	c.entries[key] = &cacheEntry[K, V]{
		value: value,
		cost:  cost,
		node:  c.lru.PushFront(key),
	}
	c.used += cost
	return true
}

// Delete removes an entry and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if ok {
		c.remove(e)
	}
	return ok
}

// Clear removes all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[K, V])
	c.lru.Clear()
	c.used = 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Cost returns the summed cost of all entries.
func (c *Cache[K, V]) Cost() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.used
}

// MaxCost returns the budget.
func (c *Cache[K, V]) MaxCost() int64 {
	return c.maxCost
}

// Stats returns current cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	n, used := len(c.entries), c.used
	c.mu.Unlock()

	hits, misses := c.hits.Load(), c.misses.Load()
	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       n,
		Cost:      used,
		MaxCost:   c.maxCost,
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}

// ResetStats zeroes the hit, miss and eviction counters.
func (c *Cache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// remove drops e. Caller must hold c.mu.
func (c *Cache[K, V]) remove(e *cacheEntry[K, V]) {
	c.lru.Remove(e.node)
	delete(c.entries, e.node.key)
	c.used -= e.cost
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Cost is the summed cost of all entries.
	Cost int64
	// MaxCost is the budget.
	MaxCost int64
	// Hits is the number of successful lookups.
	Hits uint64
	// Misses is the number of failed lookups.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before any lookup.
	HitRate float64
	// Evictions is the number of entries dropped to stay within budget.
	Evictions uint64
}
