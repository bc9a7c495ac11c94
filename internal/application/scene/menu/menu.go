// Package menu provides the title scene shown at startup and between rounds.
package menu

import (
	"fmt"
	"image/color"

	"github.com/tanema/gween/ease"

	"github.com/younwookim/coingrab/internal/application/scene"
	"github.com/younwookim/coingrab/internal/application/state"
	"github.com/younwookim/coingrab/internal/render"
)

const (
	// Title is the heading drawn at the top of the menu.
	Title = "Coin Grab"
	// Prompt tells the player how to start a round. It fades in and out.
	Prompt = "Press Enter or click to start"

	promptFadeSeconds = 0.6
)

var (
	colorBG     = color.RGBA{16, 19, 26, 255}
	colorTitle  = color.RGBA{255, 213, 79, 255}
	colorPrompt = color.RGBA{240, 240, 240, 255}
	colorScore  = color.RGBA{160, 170, 190, 255}
)

// Menu waits for a confirm key or a mouse press.
type Menu struct {
	ctx    *scene.Context
	prompt *render.Fade
}

// New creates the menu scene.
func New(ctx *scene.Context) *Menu {
	return &Menu{
		ctx:    ctx,
		prompt: render.NewFade(0, 1, promptFadeSeconds, ease.OutQuad),
	}
}

// Enter restarts the prompt fade.
func (m *Menu) Enter(_ state.GameState) {
	m.prompt.Reset()
}

// Update implements scene.Scene
func (m *Menu) Update(dt float64) (state.GameState, error) {
	m.prompt.Update(dt)

	confirmed := m.ctx.Input.Consume(m.ctx.Bindings.Confirm)
	clicked := m.ctx.Input.ConsumeMouse()
	if confirmed || clicked {
		return state.StatePlaying, nil
	}
	return state.StateNone, nil
}

// Draw implements scene.Scene
func (m *Menu) Draw(s render.Surface) {
	w, h := s.Size()
	render.ClearAll(s)
	s.FillRect(0, 0, w, h, colorBG)

	render.DrawCenteredText(s, Title, h/2-60, 48, colorTitle)
	render.DrawCenteredText(s, Prompt, h/2+10, 22, render.WithAlpha(colorPrompt, m.prompt.Value()))

	if m.ctx.HasLastScore {
		render.DrawCenteredText(s, fmt.Sprintf("Last score: %d", m.ctx.LastScore), h/2+60, 18, colorScore)
	}
}
