// Package scene defines the Scene interface for game screens and the
// registry that switches between them.
//
// Each game screen (menu, playing, paused) implements Scene to handle its
// own update logic and rendering.
package scene

import (
	"math/rand"

	"github.com/younwookim/coingrab/internal/application/state"
	"github.com/younwookim/coingrab/internal/application/system"
	"github.com/younwookim/coingrab/internal/domain/entity"
	"github.com/younwookim/coingrab/internal/render"
)

// Scene represents a game screen.
//
// The loop delegates Update and Draw calls to the current scene. Scene
// transitions are requested by returning the target state from Update.
type Scene interface {
	// Update advances the scene by one fixed step.
	// dt is the step in seconds (typically 1/60).
	// Returns the state to switch to, or state.StateNone to stay.
	// Returns an error to terminate the game.
	Update(dt float64) (next state.GameState, err error)

	// Draw renders the scene to the surface.
	Draw(s render.Surface)
}

// Enterer is implemented by scenes that initialize on entry.
// from is the state being left, StateNone on the first scene.
type Enterer interface {
	Enter(from state.GameState)
}

// Exiter is implemented by scenes that clean up when left.
type Exiter interface {
	Exit(to state.GameState)
}

// Context is the loop-wide state shared with every scene.
type Context struct {
	Input    *system.InputState
	Bindings system.Bindings
	World    entity.Bounds
	Rand     *rand.Rand

	// LastScore is the final score of the most recently finished round.
	LastScore    int
	HasLastScore bool
}

// NewContext creates a context with a fresh input state.
func NewContext(world entity.Bounds, bindings system.Bindings, seed int64) *Context {
	return &Context{
		Input:    system.NewInputState(),
		Bindings: bindings,
		World:    world,
		Rand:     rand.New(rand.NewSource(seed)),
	}
}

// RecordScore stores the score of a finished round.
func (c *Context) RecordScore(score int) {
	c.LastScore = score
	c.HasLastScore = true
}
