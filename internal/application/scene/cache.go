package scene

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Factory constructs a scene for the cache. It must not return a nil scene.
type Factory func() (Scene, error)

type cacheEntry struct {
	scene      Scene
	lastAccess time.Time
}

// Cache owns construction, reuse and eviction of scene objects keyed by a
// caller-chosen string. It only ever constructs scenes; activation (OnLoad)
// stays with the Manager, so an expensive scene can be built ahead of time
// on a background goroutine and handed to the stack later without paying the
// construction cost on the main loop.
//
// Eviction is least-recently-used. An evicted scene's OnUnload always runs,
// so falling out of the cache never skips a scene's cleanup. Because of that,
// a scene handed to the Manager must leave the cache first, via Take; while
// an entry is in the table it is the cache's to unload. All entry-table
// mutations are serialized by one mutex; factories and unload hooks run
// outside it.
type Cache struct {
	mu               sync.Mutex
	entries          map[string]*cacheEntry
	inflight         map[string]*PreloadTask
	capacity         int
	logger           *log.Logger
	onScenePreloaded func(PreloadEvent)
}

// NewCache creates a cache holding at most capacity scenes.
func NewCache(capacity int, logger *log.Logger) (*Cache, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Cache{
		entries:  make(map[string]*cacheEntry),
		inflight: make(map[string]*PreloadTask),
		capacity: capacity,
		logger:   logger.With("component", "scene-cache"),
	}, nil
}

// SetOnScenePreloaded installs the hook invoked once per completed background
// preload attempt, success or failure. The hook runs on the preloading
// goroutine. Replacing it while a batch is in flight is safe; attempts that
// finish afterwards see the new hook.
func (c *Cache) SetOnScenePreloaded(fn func(PreloadEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onScenePreloaded = fn
}

// GetOrCreate returns the cached scene for key, refreshing its recency, or
// invokes factory, stores the result and returns it. Inserting at capacity
// evicts the least-recently-used entry first.
func (c *Cache) GetOrCreate(key string, factory Factory) (Scene, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		e.lastAccess = time.Now()
		s := e.scene
		c.mu.Unlock()
		return s, nil
	}
	c.mu.Unlock()

	// The factory may be slow; construct outside the lock.
	s, err := factory()
	if err != nil {
		return nil, fmt.Errorf("construct scene %q: %w", key, err)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: factory for %q returned nothing", ErrNilScene, key)
	}

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		// Another caller published first; keep theirs. The fresh scene was
		// never loaded so it needs no unload.
		c.logger.Debug("discarding duplicate construction", "key", key)
		e.lastAccess = time.Now()
		cached := e.scene
		c.mu.Unlock()
		return cached, nil
	}
	evicted := c.insertLocked(key, s)
	c.mu.Unlock()
	if evicted != nil {
		evicted.OnUnload()
	}
	return s, nil
}

// GetOrCreateAs is GetOrCreate with a typed result. It fails with
// ErrTypeMismatch when the cached scene is not a T.
func GetOrCreateAs[T Scene](c *Cache, key string, factory Factory) (T, error) {
	var zero T
	s, err := c.GetOrCreate(key, factory)
	if err != nil {
		return zero, err
	}
	t, ok := s.(T)
	if !ok {
		return zero, fmt.Errorf("%w: scene %q is %T", ErrTypeMismatch, key, s)
	}
	return t, nil
}

// TryGet returns the cached scene for key, refreshing its recency. The bool
// result is false when the key is absent.
func (c *Cache) TryGet(key string) (Scene, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	e.lastAccess = time.Now()
	return e.scene, true
}

// TryGetAs is TryGet with a typed result; false also covers a cached scene
// of the wrong type.
func TryGetAs[T Scene](c *Cache, key string) (T, bool) {
	var zero T
	s, ok := c.TryGet(key)
	if !ok {
		return zero, false
	}
	t, ok := s.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Take removes and returns the cached scene for key without running its
// OnUnload: ownership moves to the caller. Hand-offs to the Manager go
// through Take, so capacity pressure can never unload a scene that is live
// on the stack. The bool result is false when the key is absent.
func (c *Cache) Take(key string) (Scene, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	delete(c.entries, key)
	c.logger.Debug("scene checked out", "key", key)
	return e.scene, true
}

// Contains reports whether key is cached, without refreshing its recency.
func (c *Cache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of cached scenes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Remove unloads and evicts one entry. Removing an absent key is reported
// and ignored.
func (c *Cache) Remove(key string) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		c.logger.Warn("remove ignored: key not cached", "key", key)
		return
	}
	delete(c.entries, key)
	c.mu.Unlock()

	// Unload outside the lock; the hook may touch the cache.
	e.scene.OnUnload()
	c.logger.Debug("scene removed from cache", "key", key)
}

// Clear unloads and evicts every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	old := c.entries
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()

	for key, e := range old {
		e.scene.OnUnload()
		c.logger.Debug("scene removed from cache", "key", key)
	}
}

// insertLocked evicts if at capacity, then stores the scene. Callers hold mu
// and must run the returned scene's OnUnload after releasing it.
func (c *Cache) insertLocked(key string, s Scene) Scene {
	var evicted Scene
	if len(c.entries) >= c.capacity {
		evicted = c.evictOldestLocked()
	}
	c.entries[key] = &cacheEntry{scene: s, lastAccess: time.Now()}
	c.logger.Debug("scene cached", "key", key, "size", len(c.entries))
	return evicted
}

func (c *Cache) evictOldestLocked() Scene {
	var oldestKey string
	var oldest time.Time
	first := true
	for key, e := range c.entries {
		if first || e.lastAccess.Before(oldest) {
			oldestKey = key
			oldest = e.lastAccess
			first = false
		}
	}
	if first {
		return nil
	}
	e := c.entries[oldestKey]
	delete(c.entries, oldestKey)
	c.logger.Debug("scene evicted", "key", oldestKey)
	return e.scene
}
