// Package cache provides a cost-bounded LRU cache.
//
// Each entry carries a cost computed by a caller-supplied function (for
// pixel surfaces, their size in bytes). When the total cost exceeds the
// budget, least recently used entries are evicted until it fits again:
//
//	c := cache.New[uint64, []byte](64<<20, func(b []byte) int64 { return int64(len(b)) })
//	c.Set(key, buf)
//	buf, ok := c.Get(key)
//
// An entry whose own cost exceeds the budget is never stored.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
