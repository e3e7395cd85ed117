package scene

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Effect is the visual transition the Manager runs around a stack mutation.
// The transition package provides fade, slide, wipe and zoom implementations;
// the Manager only inspects IsComplete and Progress.
type Effect interface {
	// Start resets progress and begins running in the given direction.
	Start(fadeOut bool)
	// Update advances elapsed time, clamping progress to [0,1].
	Update(dt float64)
	// Draw renders the effect as a screen-space overlay. It must be a no-op
	// before any progress has accumulated.
	Draw(screen *ebiten.Image)
	// Reset returns the effect to its idle state.
	Reset()
	IsComplete() bool
	Progress() float64
}

// Manager owns the active scene stack and the transition state machine.
//
// Stack mutations requested through Push, Pop and Replace are deferred: the
// request is held in a single pending slot (latest request wins) and executed
// on an update tick. With a transition effect configured the mutation happens
// between the fade-out and fade-in halves of the effect, so the outgoing
// scene stays visible until the screen is fully obscured and the incoming
// scene's OnLoad never races an in-flight render of its predecessor.
//
// Update, FixedUpdate and Draw must only be called from the main loop;
// the stack and pending slot are not guarded by a lock.
type Manager struct {
	stack      []Scene
	pending    *request
	transition Effect
	state      TransitionState
	ctx        *Context
	logger     *log.Logger
}

// NewManager creates an empty manager. Call SetContext before the first
// Update tick so activated scenes receive their services.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		state:  StateIdle,
		logger: logger.With("component", "scene-manager"),
	}
}

// SetContext wires the service bundle passed to every scene's OnLoad.
// The context usually points back at this manager for navigation.
func (m *Manager) SetContext(ctx *Context) {
	m.ctx = ctx
}

// SetTransition swaps the transition effect used for future stack mutations.
// Passing nil makes mutations instantaneous.
func (m *Manager) SetTransition(effect Effect) {
	m.transition = effect
}

// Push requests that s become the new current scene on the next tick,
// pausing the present one. params may be nil.
func (m *Manager) Push(s Scene, params *Params) error {
	if s == nil {
		return fmt.Errorf("%w: push", ErrNilScene)
	}
	m.record(&request{kind: requestPush, scene: s, params: params})
	return nil
}

// Pop requests removal of the current scene on the next tick, resuming the
// one below it. Popping with at most one scene on the stack is reported and
// ignored.
func (m *Manager) Pop() {
	if len(m.stack) <= 1 {
		m.logger.Warn("pop ignored: stack holds at most one scene", "size", len(m.stack))
		return
	}
	m.record(&request{kind: requestPop})
}

// Replace requests that s take the current scene's slot on the next tick,
// leaving the rest of the stack untouched. params may be nil.
func (m *Manager) Replace(s Scene, params *Params) error {
	if s == nil {
		return fmt.Errorf("%w: replace", ErrNilScene)
	}
	m.record(&request{kind: requestReplace, scene: s, params: params})
	return nil
}

func (m *Manager) record(req *request) {
	if m.pending != nil {
		m.logger.Debug("pending transition superseded",
			"old", m.pending.kind, "new", req.kind)
	}
	m.pending = req
}

// Current returns the scene on top of the stack, or nil when empty.
func (m *Manager) Current() Scene {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Len returns the number of scenes on the stack.
func (m *Manager) Len() int { return len(m.stack) }

// State returns the transition state machine's current state.
func (m *Manager) State() TransitionState { return m.state }

// IsTransitioning reports whether a transition effect is in flight.
func (m *Manager) IsTransitioning() bool { return m.state != StateIdle }

// Update drives the transition state machine and forwards the per-frame
// update to the current scene. The scene receives OnUpdate only while no
// transition is running or while fading in, so a freshly activated scene
// wakes up during its fade-in while the outgoing scene stays frozen during
// the fade-out.
func (m *Manager) Update(dt float64) {
	if m.state == StateIdle && m.pending != nil {
		if m.transition == nil {
			m.applyPending()
		} else {
			m.transition.Start(true)
			m.state = StateFadingOut
		}
	}

	if m.state != StateIdle {
		if m.transition == nil {
			// Effect was removed mid-transition; finish instantly.
			m.applyPending()
			m.state = StateIdle
		} else {
			m.transition.Update(dt)
			if m.transition.IsComplete() {
				switch m.state {
				case StateFadingOut:
					m.applyPending()
					m.transition.Start(false)
					m.state = StateFadingIn
				case StateFadingIn:
					m.transition.Reset()
					m.state = StateIdle
				}
			}
		}
	}

	if cur := m.Current(); cur != nil && (m.state == StateIdle || m.state == StateFadingIn) {
		cur.OnUpdate(dt)
	}
}

// FixedUpdate forwards fixed-step simulation to the current scene.
// Transitions do not gate it.
func (m *Manager) FixedUpdate(dt float64) {
	if cur := m.Current(); cur != nil {
		cur.OnFixedUpdate(dt)
	}
}

// Draw renders the current scene, then the transition overlay on top while
// a transition is in flight.
func (m *Manager) Draw(screen *ebiten.Image) {
	if cur := m.Current(); cur != nil {
		cur.OnRender(screen)
	}
	if m.state != StateIdle && m.transition != nil {
		m.transition.Draw(screen)
	}
}

// Shutdown unloads every scene top to bottom, then clears the stack, the
// pending request and any transition in flight.
func (m *Manager) Shutdown() {
	for i := len(m.stack) - 1; i >= 0; i-- {
		s := m.stack[i]
		s.setActive(false)
		s.OnUnload()
		m.logger.Debug("scene unloaded on shutdown", "scene", s.Name())
	}
	m.stack = nil
	m.pending = nil
	m.state = StateIdle
	if m.transition != nil {
		m.transition.Reset()
	}
}

// applyPending executes the stack mutation and runs the lifecycle hooks.
// With an effect configured this happens while the screen is fully obscured.
func (m *Manager) applyPending() {
	req := m.pending
	m.pending = nil
	if req == nil {
		return
	}

	switch req.kind {
	case requestPush:
		if cur := m.Current(); cur != nil {
			cur.setActive(false)
		}
		m.stack = append(m.stack, req.scene)
		m.activate(req.scene, req.params)

	case requestPop:
		if len(m.stack) <= 1 {
			m.logger.Warn("pop ignored: stack holds at most one scene", "size", len(m.stack))
			return
		}
		top := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		top.setActive(false)
		top.OnUnload()
		m.logger.Debug("scene popped", "scene", top.Name())
		// The scene below resumes without re-running OnLoad.
		m.stack[len(m.stack)-1].setActive(true)

	case requestReplace:
		if len(m.stack) == 0 {
			// Nothing to swap; behaves as a push.
			m.stack = append(m.stack, req.scene)
			m.activate(req.scene, req.params)
			return
		}
		old := m.stack[len(m.stack)-1]
		old.setActive(false)
		old.OnUnload()
		m.logger.Debug("scene replaced", "old", old.Name(), "new", req.scene.Name())
		m.stack[len(m.stack)-1] = req.scene
		m.activate(req.scene, req.params)
	}
}

func (m *Manager) activate(s Scene, params *Params) {
	s.setActive(true)
	s.OnLoad(m.ctx, params)
	m.logger.Debug("scene activated", "scene", s.Name(), "stack", len(m.stack))
}
