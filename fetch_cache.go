// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
)

// DefaultCacheCapacity is the default byte budget for CachingFetcher.
const DefaultCacheCapacity = 8 << 20 // 8 MiB

// CachingFetcher wraps a Fetcher with an in-memory LRU of fetched assets,
// bounded by total byte size. Swapping back to a recently used source
// skips the transport entirely.
//
// Only successful fetches are cached; errors always propagate and leave
// the cache untouched. Callers must treat returned bytes as read-only.
//
// CachingFetcher is safe for concurrent use.
type CachingFetcher struct {
	mu       sync.Mutex
	inner    Fetcher
	capacity int
	size     int
	entries  map[string]*list.Element
	lru      *list.List // front = most recently used

	// Statistics (atomic for zero-allocation reads).
	hits   atomic.Uint64
	misses atomic.Uint64
}

type cacheEntry struct {
	source string
	data   []byte
}

// NewCachingFetcher wraps inner with a cache holding up to capacityBytes
// of asset data. If capacityBytes <= 0, DefaultCacheCapacity is used.
func NewCachingFetcher(inner Fetcher, capacityBytes int) *CachingFetcher {
	if capacityBytes <= 0 {
		capacityBytes = DefaultCacheCapacity
	}
	return &CachingFetcher{
		inner:    inner,
		capacity: capacityBytes,
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
	}
}

// Fetch implements Fetcher.
func (c *CachingFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	c.mu.Lock()
	if el, ok := c.entries[source]; ok {
		c.lru.MoveToFront(el)
		data := el.Value.(*cacheEntry).data
		c.mu.Unlock()
		c.hits.Add(1)
		return data, nil
	}
	c.mu.Unlock()
	c.misses.Add(1)

	data, err := c.inner.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	if len(data) <= c.capacity {
		c.mu.Lock()
		// A concurrent fetch of the same source may have raced us here;
		// keep the existing entry authoritative.
		if _, ok := c.entries[source]; !ok {
			c.entries[source] = c.lru.PushFront(&cacheEntry{source: source, data: data})
			c.size += len(data)
			c.evictLocked()
		}
		c.mu.Unlock()
	}
	return data, nil
}

// evictLocked drops least recently used entries until the byte budget holds.
func (c *CachingFetcher) evictLocked() {
	for c.size > c.capacity {
		el := c.lru.Back()
		if el == nil {
			return
		}
		entry := el.Value.(*cacheEntry)
		c.lru.Remove(el)
		delete(c.entries, entry.source)
		c.size -= len(entry.data)
	}
}

// Invalidate removes one source from the cache, forcing the next Fetch to
// hit the transport.
func (c *CachingFetcher) Invalidate(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[source]; ok {
		c.size -= len(el.Value.(*cacheEntry).data)
		c.lru.Remove(el)
		delete(c.entries, source)
	}
}

// Clear empties the cache. Statistics are preserved.
func (c *CachingFetcher) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.lru.Init()
	c.size = 0
}

// Stats returns the number of cache hits and misses so far.
func (c *CachingFetcher) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Size returns the total bytes currently cached.
func (c *CachingFetcher) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}
