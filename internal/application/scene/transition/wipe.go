package transition

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// WipeDirection selects how the wipe boundary sweeps across the screen.
type WipeDirection int

const (
	WipeLeft WipeDirection = iota
	WipeRight
	WipeUp
	WipeDown
	// WipeCenterOut grows a rectangle outward from the screen center.
	WipeCenterOut
	// WipeEdgeIn grows four bands inward from the screen edges.
	WipeEdgeIn
)

func (d WipeDirection) String() string {
	switch d {
	case WipeLeft:
		return "Left"
	case WipeRight:
		return "Right"
	case WipeUp:
		return "Up"
	case WipeDown:
		return "Down"
	case WipeCenterOut:
		return "CenterOut"
	case WipeEdgeIn:
		return "EdgeIn"
	default:
		return "Unknown"
	}
}

// Wipe sweeps a solid boundary across the screen until it is covered.
type Wipe struct {
	clock
	dir WipeDirection
	col color.RGBA
}

// NewWipe creates an opaque black wipe in the given direction.
func NewWipe(duration float64, dir WipeDirection) (*Wipe, error) {
	return NewWipeWithColor(duration, dir, color.RGBA{0, 0, 0, 255})
}

// NewWipeWithColor creates a wipe of the given color.
func NewWipeWithColor(duration float64, dir WipeDirection, col color.RGBA) (*Wipe, error) {
	c, err := newClock(duration)
	if err != nil {
		return nil, err
	}
	return &Wipe{clock: c, dir: dir, col: col}, nil
}

// Draw covers the screen proportionally to the current coverage. The
// cardinal sweeps grow one band from the opposite edge; CenterOut grows a
// centered rectangle; EdgeIn grows four independently sized edge bands.
func (w *Wipe) Draw(screen *ebiten.Image) {
	if !w.visible() {
		return
	}
	b := screen.Bounds()
	sw := float64(b.Dx())
	sh := float64(b.Dy())
	covered := w.coverage()

	switch w.dir {
	case WipeRight:
		ebitenutil.DrawRect(screen, 0, 0, covered*sw, sh, w.col)
	case WipeLeft:
		ebitenutil.DrawRect(screen, (1-covered)*sw, 0, covered*sw, sh, w.col)
	case WipeDown:
		ebitenutil.DrawRect(screen, 0, 0, sw, covered*sh, w.col)
	case WipeUp:
		ebitenutil.DrawRect(screen, 0, (1-covered)*sh, sw, covered*sh, w.col)
	case WipeCenterOut:
		rw := covered * sw
		rh := covered * sh
		ebitenutil.DrawRect(screen, (sw-rw)/2, (sh-rh)/2, rw, rh, w.col)
	case WipeEdgeIn:
		bandW := covered * sw / 2
		bandH := covered * sh / 2
		ebitenutil.DrawRect(screen, 0, 0, bandW, sh, w.col)        // left
		ebitenutil.DrawRect(screen, sw-bandW, 0, bandW, sh, w.col) // right
		ebitenutil.DrawRect(screen, 0, 0, sw, bandH, w.col)        // top
		ebitenutil.DrawRect(screen, 0, sh-bandH, sw, bandH, w.col) // bottom
	}
}
