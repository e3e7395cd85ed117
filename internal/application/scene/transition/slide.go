package transition

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SlideDirection is the direction the covering panel travels.
type SlideDirection int

const (
	SlideLeft SlideDirection = iota
	SlideRight
	SlideUp
	SlideDown
)

func (d SlideDirection) String() string {
	switch d {
	case SlideLeft:
		return "Left"
	case SlideRight:
		return "Right"
	case SlideUp:
		return "Up"
	case SlideDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Slide covers the screen with a full-screen panel offset along one axis by
// progress times the screen extent. Scene content is not captured; the panel
// stands in for the outgoing/incoming frame.
type Slide struct {
	clock
	dir SlideDirection
	col color.RGBA
}

// NewSlide creates a slide of opaque black panels in the given direction.
func NewSlide(duration float64, dir SlideDirection) (*Slide, error) {
	return NewSlideWithColor(duration, dir, color.RGBA{0, 0, 0, 255})
}

// NewSlideWithColor creates a slide with a panel of the given color.
func NewSlideWithColor(duration float64, dir SlideDirection, col color.RGBA) (*Slide, error) {
	c, err := newClock(duration)
	if err != nil {
		return nil, err
	}
	return &Slide{clock: c, dir: dir, col: col}, nil
}

// Draw positions the panel so the covered fraction of the screen equals the
// current coverage, entering from the side opposite the travel direction.
func (s *Slide) Draw(screen *ebiten.Image) {
	if !s.visible() {
		return
	}
	b := screen.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())
	covered := s.coverage()

	var x, y float64
	switch s.dir {
	case SlideLeft:
		x = (1 - covered) * w
	case SlideRight:
		x = (covered - 1) * w
	case SlideUp:
		y = (1 - covered) * h
	case SlideDown:
		y = (covered - 1) * h
	}
	ebitenutil.DrawRect(screen, x, y, w, h, s.col)
}
