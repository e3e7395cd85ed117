package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionState_String(t *testing.T) {
	tests := []struct {
		state    TransitionState
		expected string
	}{
		{StateIdle, "Idle"},
		{StateFadingOut, "FadingOut"},
		{StateFadingIn, "FadingIn"},
		{TransitionState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestTransitionStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, TransitionState(0), StateIdle)
	assert.Equal(t, TransitionState(1), StateFadingOut)
	assert.Equal(t, TransitionState(2), StateFadingIn)
}

func TestRequestKind_String(t *testing.T) {
	tests := []struct {
		kind     requestKind
		expected string
	}{
		{requestNone, "None"},
		{requestPush, "Push"},
		{requestPop, "Pop"},
		{requestReplace, "Replace"},
		{requestKind(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}
