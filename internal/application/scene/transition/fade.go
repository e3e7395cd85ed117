package transition

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Fade obscures the screen behind a full-screen rectangle whose alpha
// follows progress: opaque at the end of the fade-out, transparent at the
// end of the fade-in.
type Fade struct {
	clock
	col color.RGBA
}

// NewFade creates a fade to opaque black.
func NewFade(duration float64) (*Fade, error) {
	return NewFadeWithColor(duration, color.RGBA{0, 0, 0, 255})
}

// NewFadeWithColor creates a fade to the given color.
func NewFadeWithColor(duration float64, col color.RGBA) (*Fade, error) {
	c, err := newClock(duration)
	if err != nil {
		return nil, err
	}
	return &Fade{clock: c, col: col}, nil
}

// Draw fills the screen with the fade color scaled by coverage.
func (f *Fade) Draw(screen *ebiten.Image) {
	if !f.visible() {
		return
	}
	a := f.coverage()
	// Pre-multiplied alpha
	c := color.RGBA{
		uint8(float64(f.col.R) * a),
		uint8(float64(f.col.G) * a),
		uint8(float64(f.col.B) * a),
		uint8(float64(f.col.A) * a),
	}
	b := screen.Bounds()
	ebitenutil.DrawRect(screen, 0, 0, float64(b.Dx()), float64(b.Dy()), c)
}
