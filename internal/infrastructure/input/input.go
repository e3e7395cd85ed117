// Package input provides the ebiten-backed implementation of the scene
// Context's input source.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller reads keyboard and mouse state straight from ebiten. It satisfies
// scene.Input.
type Poller struct{}

// NewPoller creates a new input poller
func NewPoller() *Poller {
	return &Poller{}
}

// Pressed reports whether key is held down.
func (p *Poller) Pressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// JustPressed reports whether key went down this tick.
func (p *Poller) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// CursorPosition returns the mouse position in logical screen coordinates.
func (p *Poller) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// MouseClicked reports whether the left button went down this tick.
func (p *Poller) MouseClicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
