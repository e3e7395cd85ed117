package scene

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, capacity int) *Cache {
	t.Helper()
	c, err := NewCache(capacity, log.New(io.Discard))
	require.NoError(t, err)
	return c
}

func factoryFor(s Scene, calls *int) Factory {
	return func() (Scene, error) {
		*calls++
		return s, nil
	}
}

func TestNewCache_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := NewCache(capacity, log.New(io.Discard))
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	}
}

func TestCache_GetOrCreate_ConstructsOnce(t *testing.T) {
	c := newTestCache(t, 2)
	s := &mockScene{name: "a"}
	calls := 0

	got1, err := c.GetOrCreate("a", factoryFor(s, &calls))
	require.NoError(t, err)
	got2, err := c.GetOrCreate("a", factoryFor(s, &calls))
	require.NoError(t, err)

	assert.Same(t, s, got1)
	assert.Same(t, got1, got2, "same key must return the identical object")
	assert.Equal(t, 1, calls, "factory runs only for the first call")
}

func TestCache_GetOrCreate_NeverActivates(t *testing.T) {
	c := newTestCache(t, 2)
	s := &mockScene{name: "a"}
	calls := 0

	_, err := c.GetOrCreate("a", factoryFor(s, &calls))
	require.NoError(t, err)
	assert.Equal(t, 0, s.loads, "construction must not run OnLoad")
}

func TestCache_GetOrCreate_FactoryError(t *testing.T) {
	c := newTestCache(t, 2)
	boom := errors.New("boom")

	_, err := c.GetOrCreate("a", func() (Scene, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, c.Contains("a"))
}

func TestCache_GetOrCreate_NilFactoryResult(t *testing.T) {
	c := newTestCache(t, 2)

	_, err := c.GetOrCreate("a", func() (Scene, error) { return nil, nil })
	assert.ErrorIs(t, err, ErrNilScene)
	assert.False(t, c.Contains("a"))
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newTestCache(t, 2)
	a := &mockScene{name: "a"}
	b := &mockScene{name: "b"}
	d := &mockScene{name: "d"}
	calls := 0

	_, err := c.GetOrCreate("a", factoryFor(a, &calls))
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = c.GetOrCreate("b", factoryFor(b, &calls))
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	// Touch "a" so "b" becomes the oldest.
	_, ok := c.TryGet("a")
	require.True(t, ok)
	time.Sleep(time.Millisecond)

	_, err = c.GetOrCreate("d", factoryFor(d, &calls))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len(), "cache never exceeds capacity")
	assert.True(t, c.Contains("a"))
	assert.True(t, c.Contains("d"))
	assert.False(t, c.Contains("b"))
	assert.Equal(t, 1, b.unloads, "evicted scene is unloaded exactly once")
	assert.Equal(t, 0, a.unloads)
}

func TestCache_GetOrCreateAs_TypeMismatch(t *testing.T) {
	c := newTestCache(t, 2)
	calls := 0
	_, err := c.GetOrCreate("a", factoryFor(&mockScene{name: "a"}, &calls))
	require.NoError(t, err)

	type otherScene struct{ mockScene }
	_, err = GetOrCreateAs[*otherScene](c, "a", nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	got, err := GetOrCreateAs[*mockScene](c, "a", nil)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name())
}

func TestCache_TryGetAs(t *testing.T) {
	c := newTestCache(t, 2)
	calls := 0
	_, err := c.GetOrCreate("a", factoryFor(&mockScene{name: "a"}, &calls))
	require.NoError(t, err)

	got, ok := TryGetAs[*mockScene](c, "a")
	require.True(t, ok)
	assert.Equal(t, "a", got.Name())

	_, ok = TryGetAs[*mockScene](c, "missing")
	assert.False(t, ok)
}

func TestCache_Remove(t *testing.T) {
	c := newTestCache(t, 2)
	a := &mockScene{name: "a"}
	calls := 0
	_, err := c.GetOrCreate("a", factoryFor(a, &calls))
	require.NoError(t, err)

	c.Remove("a")
	assert.False(t, c.Contains("a"))
	assert.Equal(t, 1, a.unloads)

	// Removing a missing key warns but does not fail.
	c.Remove("missing")
}

// hookedScene runs a callback from OnUnload, on top of the usual counting.
type hookedScene struct {
	mockScene
	onUnload func()
}

func (h *hookedScene) OnUnload() {
	h.mockScene.OnUnload()
	if h.onUnload != nil {
		h.onUnload()
	}
}

func TestCache_Take(t *testing.T) {
	c := newTestCache(t, 2)
	a := &mockScene{name: "a"}
	calls := 0
	_, err := c.GetOrCreate("a", factoryFor(a, &calls))
	require.NoError(t, err)

	got, ok := c.Take("a")
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.False(t, c.Contains("a"))
	assert.Equal(t, 0, a.unloads, "checkout hands ownership over without unloading")

	_, ok = c.Take("a")
	assert.False(t, ok)
}

func TestCache_TakenSceneSurvivesEviction(t *testing.T) {
	c := newTestCache(t, 1)
	m := newTestManager()
	a := &mockScene{name: "a"}
	calls := 0
	_, err := c.GetOrCreate("a", factoryFor(a, &calls))
	require.NoError(t, err)

	home := &mockScene{name: "home"}
	require.NoError(t, m.Push(home, nil))
	m.Update(1.0 / 60.0)

	taken, ok := c.Take("a")
	require.True(t, ok)
	require.NoError(t, m.Push(taken, nil))
	m.Update(1.0 / 60.0)

	// Capacity pressure after the hand-off must not reach the live scene.
	_, err = c.GetOrCreate("b", factoryFor(&mockScene{name: "b"}, &calls))
	require.NoError(t, err)
	assert.True(t, a.IsActive())
	assert.Equal(t, 0, a.unloads, "cache must not unload a scene it no longer owns")

	m.Pop()
	m.Update(1.0 / 60.0)
	assert.Equal(t, 1, a.unloads, "unload runs exactly once, at pop")
}

func TestCache_UnloadHookMayTouchCache(t *testing.T) {
	c := newTestCache(t, 1)
	var lens []int
	hook := func() { lens = append(lens, c.Len()) }
	calls := 0

	_, err := c.GetOrCreate("a", factoryFor(&hookedScene{mockScene: mockScene{name: "a"}, onUnload: hook}, &calls))
	require.NoError(t, err)

	// Evicts "a"; its hook re-enters the cache.
	_, err = c.GetOrCreate("b", factoryFor(&hookedScene{mockScene: mockScene{name: "b"}, onUnload: hook}, &calls))
	require.NoError(t, err)

	c.Remove("b")
	_, err = c.GetOrCreate("d", factoryFor(&hookedScene{mockScene: mockScene{name: "d"}, onUnload: hook}, &calls))
	require.NoError(t, err)
	c.Clear()

	assert.Len(t, lens, 3, "eviction, remove and clear all reach the hook")
}

func TestCache_Clear(t *testing.T) {
	c := newTestCache(t, 3)
	scenes := []*mockScene{{name: "a"}, {name: "b"}, {name: "c"}}
	calls := 0
	for _, s := range scenes {
		_, err := c.GetOrCreate(s.name, factoryFor(s, &calls))
		require.NoError(t, err)
	}

	c.Clear()
	assert.Equal(t, 0, c.Len())
	for _, s := range scenes {
		assert.Equal(t, 1, s.unloads, "clear unloads %s", s.name)
	}
}
