// Package menu provides the title menu scene.
package menu

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/scenekit/internal/application/scene"
)

var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorItem     = color.RGBA{160, 160, 180, 255}
	colorSelected = color.RGBA{255, 215, 0, 255}
)

// Menu is the title scene: a vertical list of level entries. It issues
// navigation through the Context's Manager handle via the OnSelect callback
// wired by the host.
type Menu struct {
	scene.BaseScene

	ctx      *scene.Context
	levels   []string
	selected int

	// OnSelect is invoked when the player confirms a level entry.
	OnSelect func(level string)
}

// New creates the menu over the given level names.
func New(levels []string) *Menu {
	return &Menu{levels: levels}
}

// Name implements scene.Scene.
func (m *Menu) Name() string { return "menu" }

// OnLoad stores the context and restores the last selection from the save
// store when one exists.
func (m *Menu) OnLoad(ctx *scene.Context, params *scene.Params) {
	m.ctx = ctx

	var saved struct {
		LastLevel string `json:"lastLevel"`
	}
	if err := ctx.Storage.Load("progress", &saved); err == nil {
		for i, name := range m.levels {
			if name == saved.LastLevel {
				m.selected = i
				break
			}
		}
	}
	ctx.Logger.Info("menu ready", "levels", len(m.levels))
}

// OnUpdate moves the selection and confirms it.
func (m *Menu) OnUpdate(dt float64) {
	if len(m.levels) == 0 {
		return
	}
	in := m.ctx.Input
	if in.JustPressed(ebiten.KeyW) || in.JustPressed(ebiten.KeyUp) {
		m.selected = (m.selected + len(m.levels) - 1) % len(m.levels)
	}
	if in.JustPressed(ebiten.KeyS) || in.JustPressed(ebiten.KeyDown) {
		m.selected = (m.selected + 1) % len(m.levels)
	}
	if in.JustPressed(ebiten.KeyEnter) || in.JustPressed(ebiten.KeySpace) {
		if m.OnSelect != nil {
			m.OnSelect(m.levels[m.selected])
		}
	}
}

// OnRender draws the level list.
func (m *Menu) OnRender(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, "SELECT LEVEL", m.ctx.ScreenW/2-40, 40)

	for i, name := range m.levels {
		y := 80 + i*24
		c := colorItem
		prefix := "  "
		if i == m.selected {
			c = colorSelected
			prefix = "> "
		}
		ebitenutil.DrawRect(screen, float64(m.ctx.ScreenW/2-70), float64(y-2), 140, 16, color.RGBA{c.R / 4, c.G / 4, c.B / 4, 255})
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s%s", prefix, name), m.ctx.ScreenW/2-60, y)
	}

	ebitenutil.DebugPrint(screen, "W/S: Move | Enter: Start")
}
