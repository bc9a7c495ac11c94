package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateNone, "none"},
		{StateMenu, "menu"},
		{StatePlaying, "game"},
		{StatePaused, "pause"},
		{GameState(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateNone)
	assert.Equal(t, GameState(1), StateMenu)
	assert.Equal(t, GameState(2), StatePlaying)
	assert.Equal(t, GameState(3), StatePaused)
}

func TestParse(t *testing.T) {
	for _, s := range []GameState{StateMenu, StatePlaying, StatePaused} {
		got, ok := Parse(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	got, ok := Parse("credits")
	assert.False(t, ok)
	assert.Equal(t, StateNone, got)
}
