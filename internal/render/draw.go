package render

import "image/color"

// DrawGrid strokes vertical and horizontal reference lines every spacing
// units across a w x h area. Non-positive spacing or an empty area draws
// nothing.
func DrawGrid(s Surface, w, h, spacing float64, c color.Color) {
	if spacing <= 0 || w <= 0 || h <= 0 {
		return
	}
	for x := 0.0; x <= w; x += spacing {
		s.StrokeLine(x, 0, x, h, c, 1)
	}
	for y := 0.0; y <= h; y += spacing {
		s.StrokeLine(0, y, w, y, c, 1)
	}
}

// DrawCenteredText draws s horizontally centred on the surface with its
// vertical center at y.
func DrawCenteredText(s Surface, text string, y, size float64, c color.Color) {
	w, _ := s.Size()
	s.DrawText(text, w/2, y-size/2, size, c, AlignCenter)
}

// Dim covers the whole surface with c, normally a translucent black.
func Dim(s Surface, c color.Color) {
	w, h := s.Size()
	s.FillRect(0, 0, w, h, c)
}

// WithAlpha returns c with its alpha replaced by a in [0, 1]. The result is
// premultiplied as image/color expects.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	// un-premultiply, then apply the new alpha
	var r, g, b float64
	if c.A > 0 {
		r = float64(c.R) * 255 / float64(c.A)
		g = float64(c.G) * 255 / float64(c.A)
		b = float64(c.B) * 255 / float64(c.A)
	}
	return color.RGBA{
		R: uint8(r * a),
		G: uint8(g * a),
		B: uint8(b * a),
		A: uint8(255 * a),
	}
}
