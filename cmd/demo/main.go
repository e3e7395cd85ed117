package main

import (
	"embed"
	"flag"
	"image/color"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/scenekit/internal/application/game"
	"github.com/younwookim/scenekit/internal/application/scene"
	"github.com/younwookim/scenekit/internal/application/scene/level"
	"github.com/younwookim/scenekit/internal/application/scene/loading"
	"github.com/younwookim/scenekit/internal/application/scene/menu"
	"github.com/younwookim/scenekit/internal/infrastructure/config"
	"github.com/younwookim/scenekit/internal/infrastructure/input"
	"github.com/younwookim/scenekit/internal/infrastructure/resource"
	"github.com/younwookim/scenekit/internal/infrastructure/storage"
)

//go:embed configs
var configFS embed.FS

// Level palette "loaded" during preload to stand in for real assets.
var palettes = map[string]color.RGBA{
	"forest": {22, 46, 26, 255},
	"cave":   {30, 26, 46, 255},
	"summit": {46, 40, 52, 255},
}

// silentAudio satisfies scene.AudioPlayer for a demo without a speaker
// backend.
type silentAudio struct{}

func (silentAudio) Play(name string) error { return nil }
func (silentAudio) StopAll()               {}

// demoGame wraps the loop adapter to apply hot-reloaded transition configs
// on the main loop, where the manager may be touched.
type demoGame struct {
	*game.Game
	manager *scene.Manager
	effects <-chan scene.Effect
}

func (g *demoGame) Update() error {
	select {
	case e := <-g.effects:
		g.manager.SetTransition(e)
	default:
	}
	return g.Game.Update()
}

func main() {
	configDir := flag.String("config", "", "Load engine.toml from this directory instead of the embedded default, and hot-reload it on change")
	saveDir := flag.String("saves", "saves", "Directory for save files")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "scenekit",
	})
	logger.SetLevel(log.DebugLevel)

	// Load configuration
	var loader *config.Loader
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			logger.Fatal("config subfs", "err", err)
		}
		loader = config.NewFSLoader(fsys)
	}
	cfg, err := loader.LoadEngine()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	// Core components
	manager := scene.NewManager(logger)
	effect, err := cfg.Transition.BuildEffect()
	if err != nil {
		logger.Fatal("build transition", "err", err)
	}
	manager.SetTransition(effect)

	cache, err := scene.NewCache(cfg.Cache.Capacity, logger)
	if err != nil {
		logger.Fatal("create cache", "err", err)
	}

	// Services behind the scene context
	store, err := storage.NewStore(*saveDir)
	if err != nil {
		logger.Fatal("create save store", "err", err)
	}
	textures := resource.NewCache()
	sounds := resource.NewCache()

	sceneCtx := &scene.Context{
		Manager:  manager,
		Logger:   logger,
		Input:    input.NewPoller(),
		Audio:    silentAudio{},
		Textures: textures,
		Sounds:   sounds,
		Storage:  store,
		ScreenW:  cfg.Display.ScreenWidth,
		ScreenH:  cfg.Display.ScreenHeight,
	}
	manager.SetContext(sceneCtx)

	// Scene wiring
	levels := []string{"forest", "cave", "summit"}
	levelKey := func(name string) string { return "level:" + name }
	makeRequests := func(name string) []scene.PreloadRequest {
		return []scene.PreloadRequest{
			{
				Key: levelKey(name),
				Factory: func() (scene.Scene, error) {
					// Simulated asset load alongside scene construction.
					if p, ok := palettes[name]; ok {
						textures.Put("palette:"+name, p)
					}
					return level.New(name), nil
				},
			},
		}
	}

	loadingScene := loading.New(cache, makeRequests, levelKey)
	menuScene := menu.New(levels)
	menuScene.OnSelect = func(name string) {
		params, perr := scene.NewParams().Add("level", name).Build()
		if perr != nil {
			logger.Error("build params", "err", perr)
			return
		}
		if perr := manager.Push(loadingScene, params); perr != nil {
			logger.Error("push loading scene", "err", perr)
		}
	}

	if err := manager.Push(menuScene, nil); err != nil {
		logger.Fatal("push menu", "err", err)
	}
	defer manager.Shutdown()

	// Hot reload of the transition config when running from a directory.
	effects := make(chan scene.Effect, 1)
	if *configDir != "" {
		watcher, werr := config.Watch(*configDir, func(next *config.EngineConfig) {
			e, berr := next.Transition.BuildEffect()
			if berr != nil {
				logger.Warn("reloaded transition invalid", "err", berr)
				return
			}
			select {
			case effects <- e:
			default:
			}
		}, logger)
		if werr != nil {
			logger.Fatal("watch config", "err", werr)
		}
		defer func() { _ = watcher.Close() }()
	}

	g := &demoGame{
		Game:    game.New(manager, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
		manager: manager,
		effects: effects,
	}

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Scene Demo")
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", "err", err)
	}
}
