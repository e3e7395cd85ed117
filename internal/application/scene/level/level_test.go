package level

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/scenekit/internal/application/scene"
	"github.com/younwookim/scenekit/internal/infrastructure/resource"
)

type stubInput struct{}

func (stubInput) Pressed(key ebiten.Key) bool     { return false }
func (stubInput) JustPressed(key ebiten.Key) bool { return false }
func (stubInput) CursorPosition() (int, int)      { return 0, 0 }
func (stubInput) MouseClicked() bool              { return false }

type countingAudio struct{ plays int }

func (a *countingAudio) Play(name string) error { a.plays++; return nil }
func (a *countingAudio) StopAll()               {}

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: make(map[string][]byte)} }

func (s *memStore) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.data[key] = raw
	return nil
}

func (s *memStore) Load(key string, v any) error {
	raw, ok := s.data[key]
	if !ok {
		return scene.ErrNotFound
	}
	return json.Unmarshal(raw, v)
}

func testContext(store *memStore, audio *countingAudio) *scene.Context {
	return &scene.Context{
		Logger:   log.New(io.Discard),
		Input:    stubInput{},
		Audio:    audio,
		Textures: resource.NewCache(),
		Storage:  store,
		ScreenW:  320,
		ScreenH:  240,
	}
}

func TestLevel_Name(t *testing.T) {
	assert.Equal(t, "level:forest", New("forest").Name())
}

func TestLevel_OnLoadSavesVisit(t *testing.T) {
	l := New("forest")
	store := newMemStore()
	audio := &countingAudio{}

	l.OnLoad(testContext(store, audio), nil)

	var saved progress
	require.NoError(t, store.Load("progress", &saved))
	assert.Equal(t, "forest", saved.LastLevel)
	assert.Equal(t, 1, audio.plays)
}

func TestLevel_UsesPreloadedPalette(t *testing.T) {
	l := New("forest")
	ctx := testContext(newMemStore(), &countingAudio{})
	ctx.Textures.Put("palette:forest", l.bg) // zero value; any RGBA works

	l.OnLoad(ctx, nil)
	assert.True(t, l.loadedBG)
}

func TestLevel_FixedUpdateAdvancesSimulation(t *testing.T) {
	l := New("forest")
	l.OnLoad(testContext(newMemStore(), &countingAudio{}), nil)

	before := l.angle
	l.OnFixedUpdate(1.0 / 60.0)
	assert.Greater(t, l.angle, before)
}

func TestLevel_OnUnloadPersistsPlayTime(t *testing.T) {
	l := New("cave")
	store := newMemStore()
	l.OnLoad(testContext(store, &countingAudio{}), nil)

	l.OnUpdate(2.5)
	l.OnUnload()

	var saved progress
	require.NoError(t, store.Load("progress", &saved))
	assert.Equal(t, "cave", saved.LastLevel)
	assert.InDelta(t, 2.5, saved.PlayTime, 1e-9)
}

func TestLevel_ParamMismatchIsTolerated(t *testing.T) {
	l := New("cave")
	params, err := scene.NewParams().Add("level", "forest").Build()
	require.NoError(t, err)

	// Mismatch is a warning, not a failure.
	l.OnLoad(testContext(newMemStore(), &countingAudio{}), params)
	assert.Equal(t, "level:cave", l.Name())
}
