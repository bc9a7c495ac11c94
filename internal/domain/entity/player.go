package entity

import "image/color"

// Player is the square the user steers around the world.
type Player struct {
	X, Y  float64 // top-left, world units
	W, H  float64
	Speed float64 // world units per second
	Color color.RGBA
}

// NewPlayer creates a player centred in the given world.
func NewPlayer(world Bounds, w, h, speed float64, c color.RGBA) *Player {
	cx, cy := world.Center()
	p := &Player{
		X:     cx - w/2,
		Y:     cy - h/2,
		W:     w,
		H:     h,
		Speed: speed,
		Color: c,
	}
	p.ClampTo(world)
	return p
}

// Rect returns the player's bounding box.
func (p *Player) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// ClampTo keeps the player inside [0, W-w] x [0, H-h].
func (p *Player) ClampTo(world Bounds) {
	p.X = Clamp(p.X, world.W-p.W)
	p.Y = Clamp(p.Y, world.H-p.H)
}
