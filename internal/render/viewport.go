package render

// Viewport maps a fixed virtual resolution onto a window of arbitrary size.
// The virtual area is scaled uniformly to fit and centred, leaving
// letterbox bars on the long axis.
type Viewport struct {
	VirtualW, VirtualH float64

	windowW, windowH float64
	scale            float64
	offsetX, offsetY float64
}

// NewViewport creates a viewport for the given virtual size, initially
// fitted to a window of the same size.
func NewViewport(virtualW, virtualH float64) *Viewport {
	v := &Viewport{VirtualW: virtualW, VirtualH: virtualH}
	v.Resize(virtualW, virtualH)
	return v
}

// Resize recomputes scale and offsets for a new window size. A zero or
// negative dimension yields scale 0, meaning nothing is visible.
func (v *Viewport) Resize(windowW, windowH float64) {
	v.windowW, v.windowH = windowW, windowH
	if windowW <= 0 || windowH <= 0 || v.VirtualW <= 0 || v.VirtualH <= 0 {
		v.scale, v.offsetX, v.offsetY = 0, 0, 0
		return
	}

	sx := windowW / v.VirtualW
	sy := windowH / v.VirtualH
	v.scale = sx
	if sy < sx {
		v.scale = sy
	}
	v.offsetX = (windowW - v.VirtualW*v.scale) / 2
	v.offsetY = (windowH - v.VirtualH*v.scale) / 2
}

// Scale returns the uniform virtual-to-window scale factor.
func (v *Viewport) Scale() float64 { return v.scale }

// Offset returns the top-left corner of the virtual area in window space.
func (v *Viewport) Offset() (float64, float64) { return v.offsetX, v.offsetY }

// WindowSize returns the last size passed to Resize.
func (v *Viewport) WindowSize() (float64, float64) { return v.windowW, v.windowH }

// Visible reports whether the virtual area currently covers any pixels.
func (v *Viewport) Visible() bool { return v.scale > 0 }

// ToWorld maps a window-space point into virtual world space. Points over
// the letterbox bars map outside [0, VirtualW] x [0, VirtualH]. With a
// degenerate window the origin is returned.
func (v *Viewport) ToWorld(wx, wy float64) (float64, float64) {
	if v.scale == 0 {
		return 0, 0
	}
	return (wx - v.offsetX) / v.scale, (wy - v.offsetY) / v.scale
}
