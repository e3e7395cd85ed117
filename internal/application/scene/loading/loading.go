// Package loading provides the scene shown while the scene cache preloads
// a level in the background.
package loading

import (
	"context"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/scenekit/internal/application/scene"
)

var (
	colorBG     = color.RGBA{20, 20, 30, 255}
	colorBarBG  = color.RGBA{60, 60, 60, 255}
	colorBarFG  = color.RGBA{100, 200, 100, 255}
	colorFailed = color.RGBA{200, 50, 50, 255}
)

// Loading drives Cache.PreloadMany for the selected level and replaces
// itself with the cached level scene once every request has finished. The
// level name arrives through the activation params under "level".
type Loading struct {
	scene.BaseScene

	ctx          *scene.Context
	cache        *scene.Cache
	makeRequests func(level string) []scene.PreloadRequest
	levelKey     func(level string) string

	level     string
	total     int
	completed atomic.Int32
	cancel    context.CancelFunc

	mu        sync.Mutex
	finished  bool
	err       error
	requested bool
}

// New creates the loading scene. makeRequests names everything to preload
// for a level; levelKey names the cache entry holding the level scene.
func New(cache *scene.Cache, makeRequests func(level string) []scene.PreloadRequest, levelKey func(level string) string) *Loading {
	return &Loading{cache: cache, makeRequests: makeRequests, levelKey: levelKey}
}

// Name implements scene.Scene.
func (l *Loading) Name() string { return "loading" }

// OnLoad kicks off the background preload batch.
func (l *Loading) OnLoad(ctx *scene.Context, params *scene.Params) {
	l.ctx = ctx
	l.finished = false
	l.err = nil
	l.requested = false
	l.completed.Store(0)

	level, ok := scene.TryGet[string](params, "level")
	if !ok {
		ctx.Logger.Error("loading scene activated without a level param")
		l.finishWith(scene.ErrNotFound)
		return
	}
	l.level = level

	requests := l.makeRequests(level)
	l.total = len(requests)

	l.cache.SetOnScenePreloaded(func(e scene.PreloadEvent) {
		l.completed.Add(1)
		ctx.Logger.Debug("preloaded", "key", e.Key, "success", e.Success)
	})

	bctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	go func() {
		l.finishWith(l.cache.PreloadMany(bctx, requests))
	}()
	ctx.Logger.Info("preloading level", "level", level, "requests", l.total)
}

func (l *Loading) finishWith(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.finished = true
	l.err = err
}

// OnUpdate swaps to the level once the batch has drained. A failed batch
// drops back to the previous scene.
func (l *Loading) OnUpdate(dt float64) {
	l.mu.Lock()
	finished, err, requested := l.finished, l.err, l.requested
	l.mu.Unlock()
	if !finished || requested {
		return
	}

	l.mu.Lock()
	l.requested = true
	l.mu.Unlock()

	if err != nil {
		l.ctx.Logger.Error("preload failed, returning to menu", "err", err)
		l.ctx.Manager.Pop()
		return
	}

	// Check the level out of the cache: the stack owns it from here on, so
	// capacity pressure cannot unload it while it is live.
	next, ok := l.cache.Take(l.levelKey(l.level))
	if !ok {
		l.ctx.Logger.Error("level missing from cache after preload", "level", l.level)
		l.ctx.Manager.Pop()
		return
	}
	params, perr := scene.NewParams().Add("level", l.level).Build()
	if perr != nil {
		l.ctx.Logger.Error("building level params", "err", perr)
		return
	}
	if rerr := l.ctx.Manager.Replace(next, params); rerr != nil {
		l.ctx.Logger.Error("switching to level", "err", rerr)
	}
}

// OnRender draws the progress bar.
func (l *Loading) OnRender(screen *ebiten.Image) {
	screen.Fill(colorBG)

	barX := float64(l.ctx.ScreenW)/2 - 60
	barY := float64(l.ctx.ScreenH) / 2
	barW := 120.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorBarBG)

	ratio := 1.0
	if l.total > 0 {
		ratio = float64(l.completed.Load()) / float64(l.total)
	}
	fg := colorBarFG
	l.mu.Lock()
	failed := l.err != nil
	l.mu.Unlock()
	if failed {
		fg = colorFailed
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, fg)

	ebitenutil.DebugPrintAt(screen, "LOADING "+l.level, int(barX), int(barY)-20)
}

// OnUnload cancels any preload still in flight.
func (l *Loading) OnUnload() {
	if l.cancel != nil {
		l.cancel()
	}
}
