// Package level provides the playable level scene of the demo.
package level

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/scenekit/internal/application/scene"
)

var colorPlayer = color.RGBA{100, 200, 100, 255}

// progress is what the level persists between sessions.
type progress struct {
	LastLevel string  `json:"lastLevel"`
	PlayTime  float64 `json:"playTime"`
}

// Level is a minimal playable scene: a marker orbiting the screen center,
// advanced by fixed-step simulation, with play time persisted on unload.
type Level struct {
	scene.BaseScene

	ctx  *scene.Context
	name string

	elapsed  float64
	angle    float64
	loadedBG bool
	bg       color.RGBA
}

// New creates the level scene. name is the level's identity ("forest",
// "cave", ...), also used as the display name.
func New(name string) *Level {
	return &Level{name: name}
}

// Name implements scene.Scene.
func (l *Level) Name() string { return "level:" + l.name }

// OnLoad records the visit in the save store and picks the background from
// the preloaded palette when the host loaded one.
func (l *Level) OnLoad(ctx *scene.Context, params *scene.Params) {
	l.ctx = ctx
	l.elapsed = 0
	l.angle = 0

	if from, ok := scene.TryGet[string](params, "level"); ok && from != l.name {
		ctx.Logger.Warn("level param mismatch", "param", from, "scene", l.name)
	}

	if raw, ok := ctx.Textures.Get("palette:" + l.name); ok {
		if bg, okc := raw.(color.RGBA); okc {
			l.bg = bg
			l.loadedBG = true
		}
	}
	if !l.loadedBG {
		l.bg = fallbackColor(l.name)
	}

	if err := ctx.Audio.Play("level-start"); err != nil {
		ctx.Logger.Debug("audio unavailable", "err", err)
	}
	if err := ctx.Storage.Save("progress", progress{LastLevel: l.name}); err != nil {
		ctx.Logger.Warn("saving progress", "err", err)
	}
	ctx.Logger.Info("level started", "level", l.name)
}

// OnFixedUpdate advances the simulation at a fixed step.
func (l *Level) OnFixedUpdate(dt float64) {
	l.angle += dt * math.Pi / 2
}

// OnUpdate handles input and play-time accounting.
func (l *Level) OnUpdate(dt float64) {
	l.elapsed += dt
	if l.ctx.Input.JustPressed(ebiten.KeyEscape) {
		l.ctx.Manager.Pop()
	}
}

// OnRender draws the level.
func (l *Level) OnRender(screen *ebiten.Image) {
	screen.Fill(l.bg)

	cx := float64(l.ctx.ScreenW) / 2
	cy := float64(l.ctx.ScreenH) / 2
	x := cx + math.Cos(l.angle)*60 - 8
	y := cy + math.Sin(l.angle)*60 - 8
	ebitenutil.DrawRect(screen, x, y, 16, 16, colorPlayer)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %.1fs", l.name, l.elapsed), 10, 10)
	ebitenutil.DebugPrintAt(screen, "ESC: back to menu", 10, l.ctx.ScreenH-20)
}

// OnUnload persists play time.
func (l *Level) OnUnload() {
	if l.ctx == nil {
		return
	}
	if err := l.ctx.Storage.Save("progress", progress{LastLevel: l.name, PlayTime: l.elapsed}); err != nil {
		l.ctx.Logger.Warn("saving progress", "err", err)
	}
	l.ctx.Logger.Info("level ended", "level", l.name, "playTime", l.elapsed)
}

// fallbackColor derives a stable background from the level name.
func fallbackColor(name string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	v := h.Sum32()
	return color.RGBA{uint8(20 + v%60), uint8(20 + (v>>8)%60), uint8(40 + (v>>16)%60), 255}
}
