// Package resource provides the named in-memory asset stores exposed
// through the scene Context (textures, sounds). Loading from disk belongs
// to the host application; scenes only look loaded assets up.
package resource

import "sync"

// Cache is a mutex-guarded name → asset store implementing
// scene.ResourceCache. Safe for lookup from scenes while a background
// loader publishes.
type Cache struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewCache creates an empty resource cache
func NewCache() *Cache {
	return &Cache{items: make(map[string]any)}
}

// Get returns the asset stored under name.
func (c *Cache) Get(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[name]
	return v, ok
}

// Put stores an asset under name, replacing any previous one.
func (c *Cache) Put(name string, resource any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[name] = resource
}

// Len returns the number of stored assets.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
