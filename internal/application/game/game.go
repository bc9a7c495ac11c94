// Package game provides the main loop that drives the clock, the scene
// registry and drawing once per frame.
package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/coingrab/internal/application/clock"
	"github.com/younwookim/coingrab/internal/application/scene"
	"github.com/younwookim/coingrab/internal/application/state"
	"github.com/younwookim/coingrab/internal/application/system"
	"github.com/younwookim/coingrab/internal/render"
)

// StatusObserver receives loop status that is shown outside the world
// view, such as the window title.
type StatusObserver interface {
	SetFPS(fps int)
	SetScene(name string)
}

// Loop owns the per-frame cycle. It is engine-free: the platform layer
// feeds it input events and frame timestamps and hands it a surface.
type Loop struct {
	clock    *clock.Accumulator
	registry *scene.Registry
	ctx      *scene.Context
	logger   *log.Logger
	status   StatusObserver

	frames     uint64
	fps        int
	fpsFrames  int
	fpsStart   time.Duration
	fpsStarted bool
}

// New creates a loop over an already populated registry.
func New(registry *scene.Registry, ctx *scene.Context, clk *clock.Accumulator, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	l := &Loop{
		clock:    clk,
		registry: registry,
		ctx:      ctx,
		logger:   logger,
	}
	registry.OnChange = l.sceneChanged
	return l
}

// SetStatus attaches an observer. Nil detaches it.
func (l *Loop) SetStatus(o StatusObserver) {
	l.status = o
	if o != nil && l.registry.Current() != state.StateNone {
		o.SetScene(l.registry.Current().String())
	}
}

// Start enters the initial scene.
func (l *Loop) Start(initial state.GameState) error {
	return l.registry.Start(initial)
}

// Apply folds platform input events into the shared input state.
func (l *Loop) Apply(events []system.Event) {
	for _, ev := range events {
		l.ctx.Input.Apply(ev)
	}
}

// Frame credits the time since the previous frame and runs every fixed
// step that is now due, switching scenes between steps as requested.
// It returns the number of steps run.
func (l *Loop) Frame(now time.Duration) (int, error) {
	l.frames++
	l.countFPS(now)

	n := l.clock.Advance(now)
	for i := 0; i < n; i++ {
		if err := l.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// Step advances the current scene by one fixed step and applies the
// transition it asks for.
func (l *Loop) Step() error {
	cur := l.registry.Scene()
	if cur == nil {
		return fmt.Errorf("step before start: %w", scene.ErrUnknownScene)
	}

	next, err := cur.Update(l.clock.Step())
	if err != nil {
		return err
	}
	if next == state.StateNone {
		return nil
	}
	return l.registry.SetScene(next)
}

// Draw renders the current scene.
func (l *Loop) Draw(s render.Surface) {
	if cur := l.registry.Scene(); cur != nil {
		cur.Draw(s)
	}
}

// countFPS reports the number of frames seen in each whole second.
func (l *Loop) countFPS(now time.Duration) {
	if !l.fpsStarted {
		l.fpsStarted = true
		l.fpsStart = now
	}
	l.fpsFrames++
	if now-l.fpsStart < time.Second {
		return
	}
	l.fps = l.fpsFrames
	l.fpsFrames = 0
	l.fpsStart = now
	if l.status != nil {
		l.status.SetFPS(l.fps)
	}
}

func (l *Loop) sceneChanged(from, to state.GameState) {
	l.logger.Info("scene", "from", from, "to", to)
	if l.status != nil {
		l.status.SetScene(to.String())
	}
}

// Current returns the active scene's state.
func (l *Loop) Current() state.GameState { return l.registry.Current() }

// Context returns the state shared with the scenes.
func (l *Loop) Context() *scene.Context { return l.ctx }

// Registry returns the scene registry.
func (l *Loop) Registry() *scene.Registry { return l.registry }

// Clock returns the step accumulator.
func (l *Loop) Clock() *clock.Accumulator { return l.clock }

// Frames returns how many frames have been driven.
func (l *Loop) Frames() uint64 { return l.frames }

// FPS returns the frame count of the last whole second.
func (l *Loop) FPS() int { return l.fps }
