package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/coingrab/internal/application/game"
	"github.com/younwookim/coingrab/internal/application/replay"
	"github.com/younwookim/coingrab/internal/infrastructure/platform"
)

func newReplayCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Run a recorded session headless",
		Long: `Feed a recorded session through the game loop without opening a
window and print where it ended.

The replay uses the seed and the full game config stored in the file,
so the run is reproduced regardless of which game.yaml is found locally.

Examples:
  coingrab replay run.json
  coingrab replay run.json --log-level debug`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.OutOrStdout(), global, args[0])
		},
	}
}

func runReplay(out io.Writer, global *globalFlags, path string) error {
	logger, err := newLogger(os.Stderr, global.logLevel)
	if err != nil {
		return err
	}

	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	rp := replay.NewReplayer(*data)
	if global.config != "" {
		logger.Warn("--config is ignored; replays use their recorded config", "config", global.config)
	}

	session, err := game.NewSession(rp.Config(), rp.Seed(), logger)
	if err != nil {
		return err
	}
	session.SetStatus(platform.NewLogStatus(logger))
	if rp.Start() != "" {
		start, err := startScene(rp.Start())
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := session.Registry().SetScene(start); err != nil {
			return err
		}
	}

	frames, err := rp.Play(session)
	if err != nil {
		return err
	}

	snap := session.Snapshot()
	fmt.Fprintf(out, "frames:     %d\n", frames)
	fmt.Fprintf(out, "steps:      %d\n", snap.Steps)
	fmt.Fprintf(out, "scene:      %s\n", snap.Scene)
	fmt.Fprintf(out, "score:      %d\n", snap.Score)
	fmt.Fprintf(out, "coins left: %d\n", snap.CoinsLeft)
	if session.Context().HasLastScore {
		fmt.Fprintf(out, "last round: %d\n", snap.LastScore)
	}
	return nil
}
