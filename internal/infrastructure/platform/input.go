package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/coingrab/internal/application/system"
	"github.com/younwookim/coingrab/internal/render"
)

// keyNames maps the Ebitengine keys the game can be bound to onto the
// platform-neutral key names used in bindings and replays.
var keyNames = map[ebiten.Key]system.Key{
	ebiten.KeyArrowUp:    system.KeyArrowUp,
	ebiten.KeyArrowDown:  system.KeyArrowDown,
	ebiten.KeyArrowLeft:  system.KeyArrowLeft,
	ebiten.KeyArrowRight: system.KeyArrowRight,
	ebiten.KeyEnter:      system.KeyEnter,
	ebiten.KeyEscape:     system.KeyEscape,
	ebiten.KeySpace:      system.KeySpace,
	ebiten.KeyF5:         system.KeyF5,
	ebiten.KeyTab:        "Tab",
	ebiten.KeyBackspace:  "Backspace",
	ebiten.KeyShiftLeft:  "ShiftLeft",
	ebiten.KeyShiftRight: "ShiftRight",
	ebiten.KeyA:          system.KeyA,
	ebiten.KeyB:          "KeyB",
	ebiten.KeyC:          "KeyC",
	ebiten.KeyD:          system.KeyD,
	ebiten.KeyE:          "KeyE",
	ebiten.KeyF:          "KeyF",
	ebiten.KeyG:          "KeyG",
	ebiten.KeyH:          "KeyH",
	ebiten.KeyI:          "KeyI",
	ebiten.KeyJ:          "KeyJ",
	ebiten.KeyK:          "KeyK",
	ebiten.KeyL:          "KeyL",
	ebiten.KeyM:          "KeyM",
	ebiten.KeyN:          "KeyN",
	ebiten.KeyO:          "KeyO",
	ebiten.KeyP:          "KeyP",
	ebiten.KeyQ:          "KeyQ",
	ebiten.KeyR:          "KeyR",
	ebiten.KeyS:          system.KeyS,
	ebiten.KeyT:          "KeyT",
	ebiten.KeyU:          "KeyU",
	ebiten.KeyV:          "KeyV",
	ebiten.KeyW:          system.KeyW,
	ebiten.KeyX:          "KeyX",
	ebiten.KeyY:          "KeyY",
	ebiten.KeyZ:          "KeyZ",
}

// KeyName returns the name for an Ebitengine key.
func KeyName(k ebiten.Key) (system.Key, bool) {
	name, ok := keyNames[k]
	return name, ok
}

// RawInput is one frame of input as Ebitengine reports it. Cursor
// coordinates are window coordinates.
type RawInput struct {
	Pressed       []ebiten.Key
	Released      []ebiten.Key
	CursorX       int
	CursorY       int
	MousePressed  bool
	MouseReleased bool
}

// InputPoller turns Ebitengine's polled input into loop events.
type InputPoller struct {
	pressed  []ebiten.Key
	released []ebiten.Key

	cursorKnown bool
	lastX       int
	lastY       int
}

// NewInputPoller creates a poller.
func NewInputPoller() *InputPoller {
	return &InputPoller{}
}

// Read samples Ebitengine's input state for the current tick.
func (p *InputPoller) Read() RawInput {
	p.pressed = inpututil.AppendJustPressedKeys(p.pressed[:0])
	p.released = inpututil.AppendJustReleasedKeys(p.released[:0])
	x, y := ebiten.CursorPosition()
	return RawInput{
		Pressed:       p.pressed,
		Released:      p.released,
		CursorX:       x,
		CursorY:       y,
		MousePressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// Translate converts raw input into events. Window coordinates are mapped
// into world units through vp. A move event is emitted only when the
// cursor actually moved. Unmapped keys are dropped.
func (p *InputPoller) Translate(raw RawInput, vp *render.Viewport) []system.Event {
	var events []system.Event

	for _, k := range raw.Pressed {
		if name, ok := KeyName(k); ok {
			events = append(events, system.Event{Kind: system.EventKeyDown, Key: name})
		}
	}
	for _, k := range raw.Released {
		if name, ok := KeyName(k); ok {
			events = append(events, system.Event{Kind: system.EventKeyUp, Key: name})
		}
	}

	wx, wy := vp.ToWorld(float64(raw.CursorX), float64(raw.CursorY))
	if !p.cursorKnown || raw.CursorX != p.lastX || raw.CursorY != p.lastY {
		p.cursorKnown = true
		p.lastX, p.lastY = raw.CursorX, raw.CursorY
		events = append(events, system.Event{Kind: system.EventMouseMove, X: wx, Y: wy})
	}
	if raw.MousePressed {
		events = append(events, system.Event{Kind: system.EventMouseDown, X: wx, Y: wy})
	}
	if raw.MouseReleased {
		events = append(events, system.Event{Kind: system.EventMouseUp, X: wx, Y: wy})
	}

	return events
}

// Poll reads and translates in one go.
func (p *InputPoller) Poll(vp *render.Viewport) []system.Event {
	return p.Translate(p.Read(), vp)
}
