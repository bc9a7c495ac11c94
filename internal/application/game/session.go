package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/coingrab/internal/application/clock"
	"github.com/younwookim/coingrab/internal/application/scene"
	"github.com/younwookim/coingrab/internal/application/scene/menu"
	"github.com/younwookim/coingrab/internal/application/scene/paused"
	"github.com/younwookim/coingrab/internal/application/scene/playing"
	"github.com/younwookim/coingrab/internal/application/state"
	"github.com/younwookim/coingrab/internal/domain/entity"
	"github.com/younwookim/coingrab/internal/infrastructure/config"
)

// Session is a loop wired with the menu, playing and pause scenes.
type Session struct {
	*Loop
	Playing *playing.Playing
	Seed    int64
}

// Snapshot is a summary of where a session stands.
type Snapshot struct {
	Scene     state.GameState
	Score     int
	LastScore int
	CoinsLeft int
	Steps     uint64
	Frames    uint64
}

// NewSession builds the scenes from cfg and starts in the menu.
func NewSession(cfg *config.GameConfig, seed int64, logger *log.Logger, opts ...playing.Option) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}

	world := entity.Bounds{W: cfg.World.Width, H: cfg.World.Height}
	ctx := scene.NewContext(world, cfg.Controls.Bindings(), seed)

	play := playing.New(ctx, cfg, logger.WithPrefix("playing"), opts...)

	registry := scene.NewRegistry(logger.WithPrefix("scene"))
	registry.Register(state.StateMenu, menu.New(ctx))
	registry.Register(state.StatePlaying, play)
	registry.Register(state.StatePaused, paused.New(ctx, play))

	clk := clock.New(cfg.Clock.TickRate)
	clk.MaxFrameTime = time.Duration(cfg.Clock.MaxFrameTime * float64(time.Second))

	loop := New(registry, ctx, clk, logger)
	if err := loop.Start(state.StateMenu); err != nil {
		return nil, err
	}

	logger.Debug("session ready", "seed", seed, "tick_rate", cfg.Clock.TickRate, "world", world)
	return &Session{Loop: loop, Playing: play, Seed: seed}, nil
}

// Snapshot reports the current scene, score and progress.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Scene:     s.Current(),
		Score:     s.Playing.Score(),
		LastScore: s.Context().LastScore,
		CoinsLeft: s.Playing.CoinsLeft(),
		Steps:     s.Clock().TotalSteps(),
		Frames:    s.Frames(),
	}
}
