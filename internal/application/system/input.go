package system

// Key is a platform key name, e.g. "ArrowUp", "KeyW", "Enter", "Escape".
type Key string

// Well-known key names used by the default bindings.
const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyW          Key = "KeyW"
	KeyA          Key = "KeyA"
	KeyS          Key = "KeyS"
	KeyD          Key = "KeyD"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
	KeySpace      Key = "Space"
	KeyF5         Key = "F5"
)

// EventKind identifies a raw platform input event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventMouseMove:
		return "MouseMove"
	case EventMouseDown:
		return "MouseDown"
	case EventMouseUp:
		return "MouseUp"
	default:
		return "Unknown"
	}
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(name string) (EventKind, bool) {
	for k := EventKeyDown; k <= EventMouseUp; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Event is a single platform input event. Mouse coordinates are in world
// space; the platform layer maps window coordinates before emitting.
type Event struct {
	Kind EventKind
	Key  Key
	X, Y float64
}

// MouseState is the last known pointer position and button state.
type MouseState struct {
	X, Y float64
	Down bool
}

// InputState holds the current input state.
//
// Events mutate it between frames and scenes read it during a step. Both
// happen on the frame-driving goroutine, so it carries no lock: every
// event is treated as a single atomic write.
type InputState struct {
	pressed map[Key]struct{}
	mouse   MouseState
}

// NewInputState creates an input state with nothing pressed.
func NewInputState() *InputState {
	return &InputState{pressed: make(map[Key]struct{})}
}

// Apply folds one platform event into the state.
func (s *InputState) Apply(ev Event) {
	switch ev.Kind {
	case EventKeyDown:
		s.pressed[ev.Key] = struct{}{}
	case EventKeyUp:
		delete(s.pressed, ev.Key)
	case EventMouseMove:
		s.mouse.X, s.mouse.Y = ev.X, ev.Y
	case EventMouseDown:
		s.mouse.X, s.mouse.Y = ev.X, ev.Y
		s.mouse.Down = true
	case EventMouseUp:
		s.mouse.X, s.mouse.Y = ev.X, ev.Y
		s.mouse.Down = false
	}
}

// KeyDown marks key as held.
func (s *InputState) KeyDown(key Key) { s.Apply(Event{Kind: EventKeyDown, Key: key}) }

// KeyUp releases key.
func (s *InputState) KeyUp(key Key) { s.Apply(Event{Kind: EventKeyUp, Key: key}) }

// MouseMove records a pointer move.
func (s *InputState) MouseMove(x, y float64) { s.Apply(Event{Kind: EventMouseMove, X: x, Y: y}) }

// MouseDown records a button press at (x, y).
func (s *InputState) MouseDown(x, y float64) { s.Apply(Event{Kind: EventMouseDown, X: x, Y: y}) }

// MouseUp records a button release at (x, y).
func (s *InputState) MouseUp(x, y float64) { s.Apply(Event{Kind: EventMouseUp, X: x, Y: y}) }

// IsKeyDown reports whether key is currently held.
func (s *InputState) IsKeyDown(key Key) bool {
	_, ok := s.pressed[key]
	return ok
}

// AnyDown reports whether any of keys is held.
func (s *InputState) AnyDown(keys []Key) bool {
	for _, k := range keys {
		if s.IsKeyDown(k) {
			return true
		}
	}
	return false
}

// Mouse returns the current pointer state.
func (s *InputState) Mouse() MouseState {
	return s.mouse
}

// Consume reports whether any of keys is held and releases all of them, so
// a transition fires once per physical press instead of every step the key
// stays down.
func (s *InputState) Consume(keys []Key) bool {
	hit := false
	for _, k := range keys {
		if _, ok := s.pressed[k]; ok {
			delete(s.pressed, k)
			hit = true
		}
	}
	return hit
}

// ConsumeMouse reports whether the button is down and releases it.
func (s *InputState) ConsumeMouse() bool {
	if !s.mouse.Down {
		return false
	}
	s.mouse.Down = false
	return true
}
