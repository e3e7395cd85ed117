package scene

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// PreloadEvent describes one completed preload attempt. A cancelled attempt
// carries the context error, so observers can tell cancellation apart from a
// factory failure with errors.Is.
type PreloadEvent struct {
	Key     string
	Success bool
	Err     error
}

// PreloadRequest names one scene for PreloadMany.
type PreloadRequest struct {
	Key     string
	Factory Factory
}

// PreloadTask is the handle to one in-flight background preload. Concurrent
// PreloadAsync calls for the same key share a task.
type PreloadTask struct {
	Key string
	ID  uuid.UUID

	done chan struct{}
	err  error
}

// Done is closed when the preload attempt has finished.
func (t *PreloadTask) Done() <-chan struct{} { return t.done }

// Wait blocks until the attempt finishes and returns its outcome.
func (t *PreloadTask) Wait() error {
	<-t.done
	return t.err
}

func completedTask(key string, err error) *PreloadTask {
	t := &PreloadTask{Key: key, ID: uuid.New(), done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

// Preload warms the cache for key on the calling goroutine. It is a no-op
// when key is already cached and never activates the constructed scene.
func (c *Cache) Preload(key string, factory Factory) error {
	_, err := c.GetOrCreate(key, factory)
	return err
}

// PreloadAsync warms the cache for key on a background goroutine.
//
// If key is already cached the returned task is already complete; if key is
// already being preloaded the existing task is returned, so two simultaneous
// calls do not necessarily run the factory twice. An already-cancelled ctx
// fails the task immediately without constructing anything or touching the
// cache. Cancellation mid-flight drops the in-flight record so a later retry
// can proceed.
func (c *Cache) PreloadAsync(ctx context.Context, key string, factory Factory) *PreloadTask {
	if err := ctx.Err(); err != nil {
		return completedTask(key, fmt.Errorf("preload %q: %w", key, err))
	}

	c.mu.Lock()
	if _, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return completedTask(key, nil)
	}
	if task, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		return task
	}
	task := &PreloadTask{Key: key, ID: uuid.New(), done: make(chan struct{})}
	c.inflight[key] = task
	c.mu.Unlock()

	c.logger.Debug("preload started", "key", key, "task", task.ID)
	go c.runPreload(ctx, task, factory)
	return task
}

// PreloadMany fans out PreloadAsync for every request and waits for all of
// them to finish. The context is shared, so cancelling it cancels the whole
// batch. The first failure is returned after every task has completed.
func (c *Cache) PreloadMany(ctx context.Context, requests []PreloadRequest) error {
	batch := uuid.New()
	c.logger.Debug("preload batch started", "batch", batch, "count", len(requests))

	g := new(errgroup.Group)
	for _, req := range requests {
		task := c.PreloadAsync(ctx, req.Key, req.Factory)
		g.Go(task.Wait)
	}
	err := g.Wait()
	c.logger.Debug("preload batch finished", "batch", batch, "err", err)
	return err
}

func (c *Cache) runPreload(ctx context.Context, task *PreloadTask, factory Factory) {
	err := c.preloadBody(ctx, task.Key, factory)

	c.mu.Lock()
	delete(c.inflight, task.Key)
	notify := c.onScenePreloaded
	c.mu.Unlock()

	task.err = err
	close(task.done)

	if err != nil {
		c.logger.Warn("preload failed", "key", task.Key, "task", task.ID, "err", err)
	} else {
		c.logger.Debug("preload finished", "key", task.Key, "task", task.ID)
	}
	if notify != nil {
		notify(PreloadEvent{Key: task.Key, Success: err == nil, Err: err})
	}
}

// preloadBody constructs and publishes one scene. It only takes the entry
// lock to publish, never across the factory call.
func (c *Cache) preloadBody(ctx context.Context, key string, factory Factory) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("preload %q: %w", key, err)
	}

	s, err := factory()
	if err != nil {
		return fmt.Errorf("construct scene %q: %w", key, err)
	}
	if s == nil {
		return fmt.Errorf("%w: factory for %q returned nothing", ErrNilScene, key)
	}

	// Cancelled while constructing: don't publish a scene nobody asked for.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("preload %q: %w", key, err)
	}

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		// Raced with a synchronous GetOrCreate; keep the published entry.
		c.logger.Debug("discarding duplicate construction", "key", key)
		e.lastAccess = time.Now()
		c.mu.Unlock()
		return nil
	}
	evicted := c.insertLocked(key, s)
	c.mu.Unlock()
	if evicted != nil {
		evicted.OnUnload()
	}
	return nil
}
