package system

import (
	"math/rand"
	"testing"

	"github.com/younwookim/coingrab/internal/domain/entity"
)

const benchCoins = 10_000

func benchField() (*entity.Player, []entity.Coin) {
	world := entity.Bounds{W: 4000, H: 4000}
	rng := rand.New(rand.NewSource(1))
	p := &entity.Player{X: 1988, Y: 1988, W: 24, H: 24, Speed: 240}
	return p, entity.SpawnCoins(rng, world, benchCoins, 12, 12)
}

// Case 1: nothing collected
// the usual frame; every coin is tested and none removed

func BenchmarkCollectCoins_Miss(b *testing.B) {
	p, coins := benchField()
	p.X, p.Y = -100, -100
	work := make([]entity.Coin, len(coins))
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		copy(work, coins)
		_, _ = CollectCoins(p, work)
	}
}

// Case 2: a dense cluster under the player
// removal shifts the tail once per collected coin

func BenchmarkCollectCoins_Cluster(b *testing.B) {
	p, coins := benchField()
	for i := 0; i < len(coins); i += 10 {
		coins[i].X, coins[i].Y = p.X+4, p.Y+4
	}
	work := make([]entity.Coin, len(coins))
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		copy(work, coins)
		_, _ = CollectCoins(p, work)
	}
}

// Case 3: movement alone, diagonal

func BenchmarkMovePlayer(b *testing.B) {
	p, _ := benchField()
	world := entity.Bounds{W: 4000, H: 4000}
	m := MoveIntent{DX: 1, DY: 1}
	for n := 0; n < b.N; n++ {
		MovePlayer(p, m, world, 1.0/60)
		if p.X >= world.W-p.W {
			p.X, p.Y = 0, 0
		}
	}
}
