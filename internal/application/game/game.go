// Package game provides the ebiten.Game adapter that drives the scene
// Manager from the main loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/scenekit/internal/application/scene"
)

// Game implements ebiten.Game on top of a scene.Manager. Each ebiten tick
// maps to one variable-step Manager.Update followed by zero or more
// fixed-step Manager.FixedUpdate calls drained from an accumulator, in that
// order, then Draw.
type Game struct {
	manager *scene.Manager
	screenW int
	screenH int
	dt      float64
	fixedDT float64
	acc     float64
}

// New creates a new Game driving the given manager.
func New(manager *scene.Manager, screenW, screenH int) *Game {
	return &Game{
		manager: manager,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		fixedDT: 1.0 / 60.0,
	}
}

// Update advances the manager by one tick.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.manager.Update(g.dt)

	g.acc += g.dt
	for g.acc >= g.fixedDT {
		g.manager.FixedUpdate(g.fixedDT)
		g.acc -= g.fixedDT
	}
	return nil
}

// Draw renders the current scene and any transition overlay.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the variable delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetFixedDT sets the fixed simulation step.
func (g *Game) SetFixedDT(dt float64) {
	g.fixedDT = dt
}
