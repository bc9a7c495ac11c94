package scene

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/coingrab/internal/application/state"
)

// ErrUnknownScene is returned when switching to a state with no scene.
var ErrUnknownScene = errors.New("unknown scene")

// Registry holds the named scenes and tracks which one is current.
type Registry struct {
	scenes  map[state.GameState]Scene
	current state.GameState
	logger  *log.Logger

	// OnChange, when set, is called after every completed transition.
	OnChange func(from, to state.GameState)
}

// NewRegistry creates an empty registry. A nil logger uses the default.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		scenes: make(map[state.GameState]Scene),
		logger: logger,
	}
}

// Register binds a scene to a state, replacing any previous binding.
func (r *Registry) Register(name state.GameState, s Scene) {
	r.scenes[name] = s
}

// Get returns the scene registered for name.
func (r *Registry) Get(name state.GameState) (Scene, bool) {
	s, ok := r.scenes[name]
	return s, ok
}

// Current returns the active state, StateNone before Start.
func (r *Registry) Current() state.GameState {
	return r.current
}

// Scene returns the active scene, nil before Start.
func (r *Registry) Scene() Scene {
	return r.scenes[r.current]
}

// Start enters the initial scene.
func (r *Registry) Start(initial state.GameState) error {
	if r.current != state.StateNone {
		return fmt.Errorf("registry already started in %s", r.current)
	}
	return r.SetScene(initial)
}

// SetScene switches to target: a no-op when target is already current,
// otherwise the current scene's Exit runs, the pointer moves, and the new
// scene's Enter runs.
func (r *Registry) SetScene(target state.GameState) error {
	if target == r.current {
		return nil
	}
	next, ok := r.scenes[target]
	if !ok {
		return fmt.Errorf("switch to %s: %w", target, ErrUnknownScene)
	}

	from := r.current
	if cur, ok := r.scenes[from]; ok {
		if ex, ok := cur.(Exiter); ok {
			ex.Exit(target)
		}
	}

	r.current = target

	if en, ok := next.(Enterer); ok {
		en.Enter(from)
	}

	r.logger.Debug("scene changed", "from", from, "to", target)
	if r.OnChange != nil {
		r.OnChange(from, target)
	}
	return nil
}
