package entity

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether r and o intersect with positive area.
// Boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Bounds is the size of the simulated world, in world units.
type Bounds struct {
	W, H float64
}

// Center returns the world-space center point.
func (b Bounds) Center() (float64, float64) {
	return b.W / 2, b.H / 2
}

// Clamp limits v to [0, max]. A negative max (world smaller than the
// object) pins the value at 0.
func Clamp(v, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
