// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/coingrab/internal/application/scene"
	"github.com/younwookim/coingrab/internal/application/state"
	"github.com/younwookim/coingrab/internal/application/system"
	"github.com/younwookim/coingrab/internal/domain/entity"
	"github.com/younwookim/coingrab/internal/infrastructure/config"
	"github.com/younwookim/coingrab/internal/render"
)

// HUD layout
const (
	hudMargin   = 10.0
	hudTextSize = 20.0
)

var colorHUD = color.RGBA{240, 240, 240, 255}

// Spawner places the coins for a new round.
type Spawner func(rng *rand.Rand, world entity.Bounds) []entity.Coin

// Option configures a Playing scene.
type Option func(*Playing)

// WithSpawner replaces the uniform random coin placement.
func WithSpawner(s Spawner) Option {
	return func(p *Playing) { p.spawn = s }
}

// Playing is the main gameplay scene
type Playing struct {
	ctx    *scene.Context
	cfg    config.GameConfig
	logger *log.Logger
	spawn  Spawner

	player  *entity.Player
	coins   []entity.Coin
	score   int
	elapsed float64 // seconds spent in the current round
	rounds  int
}

// New creates a new Playing scene. The round itself is set up on Enter.
func New(ctx *scene.Context, cfg *config.GameConfig, logger *log.Logger, opts ...Option) *Playing {
	if logger == nil {
		logger = log.Default()
	}
	p := &Playing{
		ctx:    ctx,
		cfg:    *cfg,
		logger: logger,
	}
	p.spawn = func(rng *rand.Rand, world entity.Bounds) []entity.Coin {
		return entity.SpawnCoins(rng, world, p.cfg.Coins.Count, p.cfg.Coins.Width, p.cfg.Coins.Height)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Enter starts a fresh round, except when resuming from pause.
func (p *Playing) Enter(from state.GameState) {
	if from == state.StatePaused && p.player != nil {
		p.logger.Debug("round resumed", "score", p.score, "coins", len(p.coins))
		return
	}
	p.reset()
}

func (p *Playing) reset() {
	pc := p.cfg.Player
	p.player = entity.NewPlayer(p.ctx.World, pc.Width, pc.Height, pc.Speed, pc.Color.RGBA)
	p.coins = p.spawn(p.ctx.Rand, p.ctx.World)
	p.score = 0
	p.elapsed = 0
	p.rounds++
	p.logger.Debug("round started", "round", p.rounds, "coins", len(p.coins))
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (state.GameState, error) {
	if p.player == nil {
		p.reset()
	}

	intent := system.ReadMoveIntent(p.ctx.Input, p.ctx.Bindings)
	system.MovePlayer(p.player, intent, p.ctx.World, dt)
	p.elapsed += dt

	var taken int
	p.coins, taken = system.CollectCoins(p.player, p.coins)
	p.score += taken * p.cfg.Coins.Reward

	if p.ctx.Input.Consume(p.ctx.Bindings.Cancel) {
		return state.StatePaused, nil
	}

	if len(p.coins) == 0 {
		p.ctx.RecordScore(p.score)
		p.logger.Info("round complete", "round", p.rounds, "score", p.score, "seconds", fmt.Sprintf("%.2f", p.elapsed))
		return state.StateMenu, nil
	}

	return state.StateNone, nil
}

// Draw renders the world, coins, player and HUD.
func (p *Playing) Draw(s render.Surface) {
	w, h := p.ctx.World.W, p.ctx.World.H

	render.ClearAll(s)
	s.FillRect(0, 0, w, h, p.cfg.World.Background.RGBA)
	render.DrawGrid(s, w, h, p.cfg.World.GridSpacing, p.cfg.World.Grid.RGBA)

	for _, c := range p.coins {
		cx, cy := c.Center()
		s.FillCircle(cx, cy, c.W/2, p.cfg.Coins.Color.RGBA)
	}

	if p.player != nil {
		s.FillRect(p.player.X, p.player.Y, p.player.W, p.player.H, p.player.Color)
	}

	s.DrawText(fmt.Sprintf("Score: %d", p.score), hudMargin, hudMargin, hudTextSize, colorHUD, render.AlignLeft)
	s.DrawText(fmt.Sprintf("Coins: %d", len(p.coins)), w-hudMargin, hudMargin, hudTextSize, colorHUD, render.AlignRight)
}

// Score returns the current round's score.
func (p *Playing) Score() int { return p.score }

// CoinsLeft returns how many coins remain.
func (p *Playing) CoinsLeft() int { return len(p.coins) }

// Coins returns the remaining coins.
func (p *Playing) Coins() []entity.Coin { return p.coins }

// Player returns the player, nil before the first round.
func (p *Playing) Player() *entity.Player { return p.player }

// Rounds returns how many rounds have been started.
func (p *Playing) Rounds() int { return p.rounds }
