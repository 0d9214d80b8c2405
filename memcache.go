package rtin

import "sync"

// Cache is a concurrency-safe, process-local cache of preprocessed
// RtinData keyed by source path. It sits in front of Preprocess's on-disk
// side-car cache, avoiding repeated decode-and-deserialize work for
// callers — a batch tool or a long-running server — that request the same
// heightmap more than once in a process lifetime.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*RtinData
}

// NewCache creates an empty in-process cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*RtinData)}
}

// Preprocess returns the cached RtinData for path, computing and storing
// it via Preprocess on first request.
func (c *Cache) Preprocess(path string) (*RtinData, error) {
	c.mu.RLock()
	if data, ok := c.items[path]; ok {
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	data, err := Preprocess(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if existing, ok := c.items[path]; ok {
		c.mu.Unlock()
		return existing, nil
	}
	c.items[path] = data
	c.mu.Unlock()

	return data, nil
}

// Forget evicts path from the cache, forcing the next Preprocess call to
// reconsult the on-disk cache (or recompute).
func (c *Cache) Forget(path string) {
	c.mu.Lock()
	delete(c.items, path)
	c.mu.Unlock()
}
