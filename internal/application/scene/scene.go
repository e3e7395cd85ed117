// Package scene is the scene-lifecycle core of the engine: the Scene
// contract, the Manager that owns the active scene stack and drives visual
// transitions between scenes, the Cache that constructs and evicts scene
// objects, and the Params bag used to pass typed values into an activation.
//
// Each game screen (menu, loading, level, settings, etc.) implements the
// Scene interface to handle its own update logic and rendering. The game
// loop delegates Update, FixedUpdate and Draw calls to the Manager, which
// forwards them to whichever scene is current.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen (menu, loading, level, settings, etc.)
//
// A scene is activated (OnLoad) only when it becomes the current stack
// entry, and deactivated (OnUnload) when it is popped, replaced, evicted
// from the cache, or when the engine shuts down. A scene is never torn down
// implicitly; whichever structure currently holds it (a stack slot or a
// cache entry) owns that decision.
//
// Concrete scenes should embed BaseScene, which carries the active flag and
// provides no-op defaults for every lifecycle hook.
type Scene interface {
	// Name returns the scene's stable identity, used for logging and as the
	// default cache key.
	Name() string

	// IsActive reports whether the scene is the current stack entry.
	IsActive() bool

	// OnLoad is called when the scene becomes current. params carries values
	// from the Push/Replace call that activated the scene and may be nil;
	// scenes that take no parameters ignore it.
	OnLoad(ctx *Context, params *Params)

	// OnFixedUpdate advances fixed-step simulation. It is called
	// unconditionally each tick, even while a transition is in flight.
	OnFixedUpdate(dt float64)

	// OnUpdate advances per-frame state. dt is the delta time in seconds.
	OnUpdate(dt float64)

	// OnRender draws the scene to the screen.
	OnRender(screen *ebiten.Image)

	// OnUnload is called when the scene is removed from the stack, evicted
	// from the cache, or the engine shuts down. Use this for cleanup, saving
	// state, or resource release.
	OnUnload()

	// setActive is flipped by the Manager only; embedding BaseScene
	// provides it.
	setActive(active bool)
}

// BaseScene provides the active flag and no-op lifecycle defaults.
// Embed it in every concrete scene and override the hooks you need.
type BaseScene struct {
	active bool
}

// IsActive reports whether the scene is the current stack entry.
func (b *BaseScene) IsActive() bool { return b.active }

func (b *BaseScene) setActive(active bool) { b.active = active }

// OnLoad is a no-op by default.
func (b *BaseScene) OnLoad(ctx *Context, params *Params) {}

// OnFixedUpdate is a no-op by default.
func (b *BaseScene) OnFixedUpdate(dt float64) {}

// OnUpdate is a no-op by default.
func (b *BaseScene) OnUpdate(dt float64) {}

// OnRender is a no-op by default.
func (b *BaseScene) OnRender(screen *ebiten.Image) {}

// OnUnload is a no-op by default.
func (b *BaseScene) OnUnload() {}
