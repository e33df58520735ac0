package store

import "sync"

// Cache keeps recently touched objects in memory so repeated reads skip
// disk and decompression.
type Cache interface {
	Get(id string) ([]byte, bool)
	Add(id string, framed []byte)
	Has(id string) bool
}

// ObjectCache is a bounded map cache.
// TODO: Use a proper LRU implementation like hashicorp/golang-lru
type ObjectCache struct {
	maxSize int
	items   map[string][]byte
	mu      sync.RWMutex
}

func NewObjectCache(maxSize int) *ObjectCache {
	return &ObjectCache{
		maxSize: maxSize,
		items:   make(map[string][]byte),
	}
}

func (c *ObjectCache) Get(id string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	framed, ok := c.items[id]
	return framed, ok
}

func (c *ObjectCache) Add(id string, framed []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Simple eviction: if full, drop an arbitrary entry. Objects are
	// immutable so evicting the wrong one only costs a re-read.
	if len(c.items) >= c.maxSize {
		for k := range c.items {
			delete(c.items, k)
			break
		}
	}

	c.items[id] = framed
}

func (c *ObjectCache) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[id]
	return ok
}
