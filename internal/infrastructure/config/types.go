package config

import (
	"fmt"
	"image/color"

	"github.com/younwookim/scenekit/internal/application/scene"
	"github.com/younwookim/scenekit/internal/application/scene/transition"
)

// EngineConfig is the root config for engine.toml
type EngineConfig struct {
	Display    DisplayConfig    `toml:"display"`
	Cache      CacheConfig      `toml:"cache"`
	Transition TransitionConfig `toml:"transition"`
}

type DisplayConfig struct {
	ScreenWidth  int `toml:"screenWidth"`
	ScreenHeight int `toml:"screenHeight"`
	Scale        int `toml:"scale"`
	Framerate    int `toml:"framerate"`
}

// CacheConfig configures the scene cache
type CacheConfig struct {
	Capacity int `toml:"capacity"`
}

// TransitionConfig selects the default transition effect.
// Kind is one of: none, fade, slide, wipe, zoom.
type TransitionConfig struct {
	Kind      string  `toml:"kind"`
	Duration  float64 `toml:"duration"`  // seconds
	Direction string  `toml:"direction"` // slide: left/right/up/down; wipe: also center-out/edge-in
	Mode      string  `toml:"mode"`      // zoom: in/out
	Color     []uint8 `toml:"color"`     // RGBA, defaults to opaque black
}

// Validate checks ranges the loader cannot express in types.
func (c *EngineConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("display: invalid screen size %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("display: invalid framerate %d", c.Display.Framerate)
	}
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("cache: capacity must be >= 1, got %d", c.Cache.Capacity)
	}
	if c.Transition.Kind != "none" && c.Transition.Duration <= 0 {
		return fmt.Errorf("transition: duration must be positive, got %g", c.Transition.Duration)
	}
	if len(c.Transition.Color) != 0 && len(c.Transition.Color) != 4 {
		return fmt.Errorf("transition: color needs 4 components, got %d", len(c.Transition.Color))
	}
	return nil
}

func (c *TransitionConfig) rgba() color.RGBA {
	if len(c.Color) != 4 {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{c.Color[0], c.Color[1], c.Color[2], c.Color[3]}
}

// BuildEffect constructs the configured transition effect. A "none" kind
// returns nil, which the Manager treats as instantaneous transitions.
func (c *TransitionConfig) BuildEffect() (scene.Effect, error) {
	switch c.Kind {
	case "", "none":
		return nil, nil
	case "fade":
		return transition.NewFadeWithColor(c.Duration, c.rgba())
	case "slide":
		dir, err := slideDirection(c.Direction)
		if err != nil {
			return nil, err
		}
		return transition.NewSlideWithColor(c.Duration, dir, c.rgba())
	case "wipe":
		dir, err := wipeDirection(c.Direction)
		if err != nil {
			return nil, err
		}
		return transition.NewWipeWithColor(c.Duration, dir, c.rgba())
	case "zoom":
		mode, err := zoomMode(c.Mode)
		if err != nil {
			return nil, err
		}
		return transition.NewZoomWithColor(c.Duration, mode, c.rgba())
	default:
		return nil, fmt.Errorf("transition: unknown kind %q", c.Kind)
	}
}

func slideDirection(s string) (transition.SlideDirection, error) {
	switch s {
	case "", "left":
		return transition.SlideLeft, nil
	case "right":
		return transition.SlideRight, nil
	case "up":
		return transition.SlideUp, nil
	case "down":
		return transition.SlideDown, nil
	default:
		return 0, fmt.Errorf("transition: unknown slide direction %q", s)
	}
}

func wipeDirection(s string) (transition.WipeDirection, error) {
	switch s {
	case "", "left":
		return transition.WipeLeft, nil
	case "right":
		return transition.WipeRight, nil
	case "up":
		return transition.WipeUp, nil
	case "down":
		return transition.WipeDown, nil
	case "center-out":
		return transition.WipeCenterOut, nil
	case "edge-in":
		return transition.WipeEdgeIn, nil
	default:
		return 0, fmt.Errorf("transition: unknown wipe direction %q", s)
	}
}

func zoomMode(s string) (transition.ZoomMode, error) {
	switch s {
	case "", "in":
		return transition.ZoomIn, nil
	case "out":
		return transition.ZoomOut, nil
	default:
		return 0, fmt.Errorf("transition: unknown zoom mode %q", s)
	}
}
