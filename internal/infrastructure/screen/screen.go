// Package screen implements render.Surface on an Ebitengine image.
package screen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/coingrab/internal/render"
)

// Fonts caches one text face per size over a shared source.
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFonts parses the bundled Go Regular font.
func LoadFonts() (*Fonts, error) {
	return LoadTTF(goregular.TTF)
}

// LoadTTF parses raw TTF/OTF data.
func LoadTTF(ttfData []byte) (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Fonts{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Face returns the face for size, creating it on first use.
func (f *Fonts) Face(size float64) *text.GoTextFace {
	face, ok := f.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: f.source, Size: size}
		f.faces[size] = face
	}
	return face
}

// Surface draws on an ebiten.Image in world units. The image is expected
// to be the virtual-resolution offscreen buffer, so no scaling happens here.
type Surface struct {
	img   *ebiten.Image
	fonts *Fonts
}

// New wraps img. fonts may be nil, in which case text is skipped.
func New(img *ebiten.Image, fonts *Fonts) *Surface {
	return &Surface{img: img, fonts: fonts}
}

// Image returns the underlying image.
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) Clear(x, y, w, h float64) {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	if r == s.img.Bounds() {
		s.img.Clear()
		return
	}
	s.img.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, c color.Color, width float64) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) DrawText(str string, x, y, size float64, c color.Color, align render.Align) {
	if s.fonts == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = primaryAlign(align)
	text.Draw(s.img, str, s.fonts.Face(size), op)
}

func primaryAlign(a render.Align) text.Align {
	switch a {
	case render.AlignCenter:
		return text.AlignCenter
	case render.AlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}
