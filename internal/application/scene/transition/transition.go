// Package transition implements the visual effects the scene Manager runs
// around a stack mutation: fade, slide, wipe and zoom. Each effect is
// self-contained, driven by elapsed time against a fixed duration, and
// swappable at runtime through Manager.SetTransition.
//
// An effect runs twice per transition: once fading out (progress obscures
// the outgoing scene) and once fading in (progress reveals the incoming
// one). The Manager only inspects IsComplete and Progress.
package transition

import "errors"

// ErrInvalidDuration is returned by effect constructors for durations <= 0.
var ErrInvalidDuration = errors.New("transition: duration must be positive")

// clock is the progress driver shared by all effects: duration and elapsed
// time, the running flag, and which half of the transition is playing.
type clock struct {
	duration float64
	elapsed  float64
	running  bool
	fadeOut  bool
}

func newClock(duration float64) (clock, error) {
	if duration <= 0 {
		return clock{}, ErrInvalidDuration
	}
	return clock{duration: duration}, nil
}

// Start resets progress to zero and marks the effect running in the given
// direction.
func (c *clock) Start(fadeOut bool) {
	c.elapsed = 0
	c.running = true
	c.fadeOut = fadeOut
}

// Update advances elapsed time. Progress clamps to [0,1].
func (c *clock) Update(dt float64) {
	if !c.running {
		return
	}
	c.elapsed += dt
	if c.elapsed > c.duration {
		c.elapsed = c.duration
	}
}

// Reset returns the effect to its idle state.
func (c *clock) Reset() {
	c.elapsed = 0
	c.running = false
}

// IsComplete reports whether the configured duration has elapsed.
func (c *clock) IsComplete() bool {
	return c.running && c.elapsed >= c.duration
}

// Progress returns elapsed progress in [0,1].
func (c *clock) Progress() float64 {
	if c.duration <= 0 {
		return 0
	}
	p := c.elapsed / c.duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// FadingOut reports which half of the transition is playing.
func (c *clock) FadingOut() bool { return c.fadeOut }

// coverage is how much of the screen the effect should obscure right now:
// progress while fading out, the remainder while fading in.
func (c *clock) coverage() float64 {
	if c.fadeOut {
		return c.Progress()
	}
	return 1 - c.Progress()
}

// visible reports whether the effect has accumulated any progress; Draw is
// a no-op before that.
func (c *clock) visible() bool {
	return c.running && c.elapsed > 0
}
