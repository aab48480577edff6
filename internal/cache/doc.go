// Package cache provides the soft-limited LRU cache behind stamp snapshot
// caching.
//
//	c := cache.New[key, *pixbuf.Buf](64)
//	c.Set(k, snapshot)
//	v, ok := c.Get(k)
//
// When the cache grows past its soft limit the least recently used quarter
// of the entries is evicted in one batch.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
