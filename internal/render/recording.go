package render

import "image/color"

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpStrokeLine
	OpFillCircle
	OpText
)

// Op is one recorded draw call. Fields not used by the kind are zero.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64 // rect/clear; line uses X,Y -> W,H as the end point
	R          float64 // circle radius or line width
	Size       float64
	Text       string
	Align      Align
	Color      color.Color
}

// RecordingSurface records every call instead of drawing. Tests use it to
// assert on what a scene draws without a GPU.
type RecordingSurface struct {
	W, H float64
	Ops  []Op
}

// NewRecordingSurface creates a recorder of the given size.
func NewRecordingSurface(w, h float64) *RecordingSurface {
	return &RecordingSurface{W: w, H: h}
}

func (r *RecordingSurface) Size() (float64, float64) { return r.W, r.H }

func (r *RecordingSurface) Clear(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, X: x, Y: y, W: w, H: h})
}

func (r *RecordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *RecordingSurface) StrokeLine(x1, y1, x2, y2 float64, c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeLine, X: x1, Y: y1, W: x2, H: y2, R: width, Color: c})
}

func (r *RecordingSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, X: cx, Y: cy, R: radius, Color: c})
}

func (r *RecordingSurface) DrawText(s string, x, y, size float64, c color.Color, align Align) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Size: size, Text: s, Align: align, Color: c})
}

// Count returns how many ops of kind were recorded.
func (r *RecordingSurface) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the recorded text strings in draw order.
func (r *RecordingSurface) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops all recorded ops.
func (r *RecordingSurface) Reset() {
	r.Ops = r.Ops[:0]
}
