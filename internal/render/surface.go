// Package render defines the drawing surface scenes paint on, the
// virtual-resolution viewport, and a few drawing helpers built from the
// surface primitives.
package render

import "image/color"

// Align is the horizontal anchor of a text run relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the string representation of the alignment
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Surface is the set of primitives a scene may draw with. Coordinates are
// world units with the origin at the top-left.
type Surface interface {
	// Size returns the drawable area in world units.
	Size() (w, h float64)

	// Clear resets a region to transparent.
	Clear(x, y, w, h float64)

	FillRect(x, y, w, h float64, c color.Color)
	StrokeLine(x1, y1, x2, y2 float64, c color.Color, width float64)
	FillCircle(cx, cy, r float64, c color.Color)

	// DrawText draws s with its top edge at y. size is the font size in
	// world units.
	DrawText(s string, x, y, size float64, c color.Color, align Align)
}

// ClearAll clears the entire surface.
func ClearAll(s Surface) {
	w, h := s.Size()
	s.Clear(0, 0, w, h)
}

// Discard is a Surface that draws nothing. Headless runs use it.
type Discard struct {
	W, H float64
}

func (d Discard) Size() (float64, float64) { return d.W, d.H }
func (Discard) Clear(_, _, _, _ float64) {}
func (Discard) FillRect(_, _, _, _ float64, _ color.Color) {}
func (Discard) StrokeLine(_, _, _, _ float64, _ color.Color, _ float64) {}
func (Discard) FillCircle(_, _, _ float64, _ color.Color) {}
func (Discard) DrawText(_ string, _, _, _ float64, _ color.Color, _ Align) {}
