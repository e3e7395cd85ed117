package scene

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Input is the input source a scene polls each frame. The infrastructure
// package provides an ebiten-backed implementation; tests use stubs.
type Input interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
	CursorPosition() (x, y int)
	MouseClicked() bool
}

// AudioPlayer plays named sounds loaded by the host application.
type AudioPlayer interface {
	Play(name string) error
	StopAll()
}

// ResourceCache is a named store of loaded assets (textures, sounds).
// Loading from disk is owned by the host; scenes only look things up.
type ResourceCache interface {
	Get(name string) (any, bool)
	Put(name string, resource any)
	Len() int
}

// StateStore persists game state between sessions.
type StateStore interface {
	Save(key string, v any) error
	Load(key string, v any) error
}

// Context is the read-only bundle of engine services supplied to a scene
// when it is activated. The Manager handle lets a scene request navigation
// (push/pop/replace) without holding a direct reference to its siblings.
type Context struct {
	Manager  *Manager
	Logger   *log.Logger
	Input    Input
	Audio    AudioPlayer
	Textures ResourceCache
	Sounds   ResourceCache
	Storage  StateStore

	ScreenW int
	ScreenH int
}
