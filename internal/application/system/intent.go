package system

// Bindings maps semantic actions to the keys that trigger them. Every
// action accepts several keys so arrows and WASD drive the same axis.
type Bindings struct {
	Up      []Key
	Down    []Key
	Left    []Key
	Right   []Key
	Confirm []Key
	Cancel  []Key
}

// DefaultBindings returns arrows+WASD movement, Enter to confirm and
// Escape to cancel.
func DefaultBindings() Bindings {
	return Bindings{
		Up:      []Key{KeyArrowUp, KeyW},
		Down:    []Key{KeyArrowDown, KeyS},
		Left:    []Key{KeyArrowLeft, KeyA},
		Right:   []Key{KeyArrowRight, KeyD},
		Confirm: []Key{KeyEnter},
		Cancel:  []Key{KeyEscape},
	}
}

// MoveIntent is a digital movement request, each axis in {-1, 0, 1}.
type MoveIntent struct {
	DX, DY int
}

// IsZero reports whether no direction is requested.
func (m MoveIntent) IsZero() bool {
	return m.DX == 0 && m.DY == 0
}

// ReadMoveIntent samples the directional keys. Opposite keys cancel out.
func ReadMoveIntent(in *InputState, b Bindings) MoveIntent {
	var m MoveIntent
	if in.AnyDown(b.Left) {
		m.DX--
	}
	if in.AnyDown(b.Right) {
		m.DX++
	}
	if in.AnyDown(b.Up) {
		m.DY--
	}
	if in.AnyDown(b.Down) {
		m.DY++
	}
	return m
}
