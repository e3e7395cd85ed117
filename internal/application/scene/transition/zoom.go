package transition

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ZoomMode selects whether the vignette closes like a camera zooming in or
// pulling out.
type ZoomMode int

const (
	// ZoomIn grows the borders linearly while the overlay darkens.
	ZoomIn ZoomMode = iota
	// ZoomOut darkens first and lets the borders lag behind quadratically.
	ZoomOut
)

func (m ZoomMode) String() string {
	switch m {
	case ZoomIn:
		return "In"
	case ZoomOut:
		return "Out"
	default:
		return "Unknown"
	}
}

// Zoom combines an alpha overlay with four border rectangles whose
// thickness follows progress, producing a vignette that closes during the
// fade-out and opens during the fade-in.
type Zoom struct {
	clock
	mode ZoomMode
	col  color.RGBA
}

// NewZoom creates a black zoom vignette in the given mode.
func NewZoom(duration float64, mode ZoomMode) (*Zoom, error) {
	return NewZoomWithColor(duration, mode, color.RGBA{0, 0, 0, 255})
}

// NewZoomWithColor creates a zoom vignette of the given color.
func NewZoomWithColor(duration float64, mode ZoomMode, col color.RGBA) (*Zoom, error) {
	c, err := newClock(duration)
	if err != nil {
		return nil, err
	}
	return &Zoom{clock: c, mode: mode, col: col}, nil
}

// Draw renders the overlay and the four borders. Border thickness tracks
// coverage linearly for ZoomIn and quadratically for ZoomOut, so the two
// modes close and open with a different feel.
func (z *Zoom) Draw(screen *ebiten.Image) {
	if !z.visible() {
		return
	}
	b := screen.Bounds()
	sw := float64(b.Dx())
	sh := float64(b.Dy())
	covered := z.coverage()

	thickness := covered
	if z.mode == ZoomOut {
		thickness = covered * covered
	}

	// Overlay, pre-multiplied alpha
	oc := color.RGBA{
		uint8(float64(z.col.R) * covered),
		uint8(float64(z.col.G) * covered),
		uint8(float64(z.col.B) * covered),
		uint8(float64(z.col.A) * covered),
	}
	ebitenutil.DrawRect(screen, 0, 0, sw, sh, oc)

	borderW := thickness * sw / 2
	borderH := thickness * sh / 2
	ebitenutil.DrawRect(screen, 0, 0, borderW, sh, z.col)
	ebitenutil.DrawRect(screen, sw-borderW, 0, borderW, sh, z.col)
	ebitenutil.DrawRect(screen, 0, 0, sw, borderH, z.col)
	ebitenutil.DrawRect(screen, 0, sh-borderH, sw, borderH, z.col)
}
