package system

import (
	"math"

	"github.com/younwookim/coingrab/internal/domain/entity"
)

// Direction converts a move intent into a unit vector. Diagonals are
// normalized so they travel at axial speed; a zero intent yields (0, 0).
func Direction(m MoveIntent) (float64, float64) {
	dx, dy := float64(m.DX), float64(m.DY)
	length := math.Hypot(dx, dy)
	if length == 0 {
		length = 1
	}
	return dx / length, dy / length
}

// MovePlayer advances the player by speed*dt along the intent and clamps
// it to the world.
func MovePlayer(p *entity.Player, m MoveIntent, world entity.Bounds, dt float64) {
	dx, dy := Direction(m)
	p.X += dx * p.Speed * dt
	p.Y += dy * p.Speed * dt
	p.ClampTo(world)
}

// CollectCoins removes every coin overlapping the player's box and returns
// the remaining coins plus how many were taken. It walks the slice
// backwards so removal does not skip elements; order is preserved.
func CollectCoins(p *entity.Player, coins []entity.Coin) ([]entity.Coin, int) {
	box := p.Rect()
	collected := 0
	for i := len(coins) - 1; i >= 0; i-- {
		if box.Overlaps(coins[i].Rect()) {
			coins = append(coins[:i], coins[i+1:]...)
			collected++
		}
	}
	return coins, collected
}
