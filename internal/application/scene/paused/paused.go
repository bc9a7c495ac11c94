// Package paused provides the overlay shown while a round is on hold.
package paused

import (
	"image/color"

	"github.com/tanema/gween/ease"

	"github.com/younwookim/coingrab/internal/application/scene"
	"github.com/younwookim/coingrab/internal/application/state"
	"github.com/younwookim/coingrab/internal/render"
)

const (
	// Message is drawn centred over the dimmed, frozen round.
	Message = "Paused"

	dimAlpha   = 0.5
	dimSeconds = 0.15
)

var (
	colorDim  = color.RGBA{0, 0, 0, 255}
	colorText = color.RGBA{255, 255, 255, 255}
)

// Paused draws the frozen game underneath a dimming overlay.
type Paused struct {
	ctx   *scene.Context
	under scene.Scene
	dim   *render.Fade
}

// New creates the pause scene. under is drawn first, normally the playing
// scene, and is never updated from here.
func New(ctx *scene.Context, under scene.Scene) *Paused {
	return &Paused{
		ctx:   ctx,
		under: under,
		dim:   render.NewFade(0, dimAlpha, dimSeconds, ease.OutQuad),
	}
}

// Enter restarts the dim fade.
func (p *Paused) Enter(_ state.GameState) {
	p.dim.Reset()
}

// Update implements scene.Scene
func (p *Paused) Update(dt float64) (state.GameState, error) {
	p.dim.Update(dt)
	if p.ctx.Input.Consume(p.ctx.Bindings.Cancel) {
		return state.StatePlaying, nil
	}
	return state.StateNone, nil
}

// Draw implements scene.Scene
func (p *Paused) Draw(s render.Surface) {
	if p.under != nil {
		p.under.Draw(s)
	}
	render.Dim(s, render.WithAlpha(colorDim, p.dim.Value()))

	_, h := s.Size()
	render.DrawCenteredText(s, Message, h/2, 40, colorText)
}
