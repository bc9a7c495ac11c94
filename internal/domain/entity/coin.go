package entity

import "math/rand"

// Coin is a collectible placed somewhere in the world.
type Coin struct {
	X, Y float64
	W, H float64
}

// Rect returns the coin's bounding box.
func (c Coin) Rect() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// Center returns the coin's center point, used when drawing it as a circle.
func (c Coin) Center() (float64, float64) {
	return c.X + c.W/2, c.Y + c.H/2
}

// SpawnCoins places n coins uniformly at random inside the world, keeping
// each coin fully on screen.
func SpawnCoins(rng *rand.Rand, world Bounds, n int, w, h float64) []Coin {
	if n <= 0 {
		return nil
	}
	maxX := world.W - w
	if maxX < 0 {
		maxX = 0
	}
	maxY := world.H - h
	if maxY < 0 {
		maxY = 0
	}

	coins := make([]Coin, 0, n)
	for i := 0; i < n; i++ {
		coins = append(coins, Coin{
			X: rng.Float64() * maxX,
			Y: rng.Float64() * maxY,
			W: w,
			H: h,
		})
	}
	return coins
}
