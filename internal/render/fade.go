package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade eases a single value from one end to the other over a fixed time.
// Scenes advance it from Update with the step dt and read Value in Draw.
type Fade struct {
	from, to float32
	duration float32
	fn       ease.TweenFunc

	tween *gween.Tween
	value float64
	done  bool
}

// NewFade creates a fade sitting at from.
func NewFade(from, to, seconds float64, fn ease.TweenFunc) *Fade {
	f := &Fade{
		from:     float32(from),
		to:       float32(to),
		duration: float32(seconds),
		fn:       fn,
	}
	f.Reset()
	return f
}

// Reset rewinds the fade to its start value.
func (f *Fade) Reset() {
	f.tween = gween.New(f.from, f.to, f.duration, f.fn)
	f.value = float64(f.from)
	f.done = f.duration <= 0
	if f.done {
		f.value = float64(f.to)
	}
}

// Update advances the fade by dt seconds and returns the new value.
func (f *Fade) Update(dt float64) float64 {
	if f.done {
		return f.value
	}
	v, finished := f.tween.Update(float32(dt))
	f.value = float64(v)
	f.done = finished
	return f.value
}

// Value returns the current value.
func (f *Fade) Value() float64 { return f.value }

// Done reports whether the end value has been reached.
func (f *Fade) Done() bool { return f.done }
