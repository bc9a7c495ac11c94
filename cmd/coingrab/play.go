package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/younwookim/coingrab/internal/application/game"
	"github.com/younwookim/coingrab/internal/application/state"
	"github.com/younwookim/coingrab/internal/infrastructure/config"
	"github.com/younwookim/coingrab/internal/infrastructure/platform"
)

type playFlags struct {
	seed         int64
	record       string
	maxFrameTime float64
	start        string
}

func newPlayCmd(global *globalFlags) *cobra.Command {
	flags := &playFlags{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		Long: `Open the game window and start at the menu.

Controls:
  Arrows/WASD - Move
  Enter/Click - Start a round
  Esc         - Pause / resume
  F5          - Save the recording (with --record)

Examples:
  coingrab play
  coingrab play --seed 42
  coingrab play --record run.json
  coingrab play --config ./my-game.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(global, flags)
		},
	}

	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "RNG seed (0 = config seed, or random based on time)")
	cmd.Flags().StringVar(&flags.record, "record", "", "Record input to this replay file")
	cmd.Flags().StringVar(&flags.start, "start", "menu", "Scene to start in: menu or game")
	cmd.Flags().Float64Var(&flags.maxFrameTime, "max-frame-time", -1, "Cap on seconds credited per frame (0 = unbounded, -1 = use config)")
	return cmd
}

func runPlay(global *globalFlags, flags *playFlags) error {
	logger, err := newLogger(os.Stderr, global.logLevel)
	if err != nil {
		return err
	}

	cfg, err := config.Load(global.config)
	if err != nil {
		return err
	}
	if flags.maxFrameTime >= 0 {
		cfg.Clock.MaxFrameTime = flags.maxFrameTime
	}

	start, err := startScene(flags.start)
	if err != nil {
		return err
	}

	seed := resolveSeed(flags.seed, cfg.Seed)
	session, err := game.NewSession(cfg, seed, logger)
	if err != nil {
		return err
	}
	if err := session.Registry().SetScene(start); err != nil {
		return err
	}

	g, err := platform.New(session, cfg, platform.Options{RecordPath: flags.record}, logger)
	if err != nil {
		return err
	}

	logger.Info("starting", "seed", seed, "world", fmt.Sprintf("%gx%g", cfg.World.Width, cfg.World.Height))
	return platform.Run(g, cfg)
}

// startScene parses the --start flag. Pause is not a valid start.
func startScene(name string) (state.GameState, error) {
	s, ok := state.Parse(name)
	if !ok || s == state.StatePaused {
		return state.StateNone, fmt.Errorf("invalid start scene %q (want menu or game)", name)
	}
	return s, nil
}

// resolveSeed picks the flag seed, then the config seed, then the clock.
func resolveSeed(flag, configured int64) int64 {
	if flag != 0 {
		return flag
	}
	if configured != 0 {
		return configured
	}
	return time.Now().UnixNano()
}
