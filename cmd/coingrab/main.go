// coingrab is a small arcade game: steer a square around the field and
// collect every coin.
//
// Usage:
//
//	coingrab                 - Play (same as "coingrab play")
//	coingrab play            - Open the game window
//	coingrab replay <file>   - Run a recorded session headless and print the result
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: ~/.coingrab/game.yaml, ./configs/game.yaml)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	config   string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	play := newPlayCmd(flags)

	root := &cobra.Command{
		Use:   "coingrab",
		Short: "Coin Grab - collect every coin on the field",
		Long: `Coin Grab is a minimal arcade game. Move with the arrow keys or WASD,
pause with Escape, and collect every coin to finish the round.

Examples:
  coingrab
  coingrab play --seed 42 --record run.json
  coingrab replay run.json`,
		Args:          cobra.NoArgs,
		RunE:          play.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().AddFlagSet(play.Flags())

	root.PersistentFlags().StringVar(&flags.config, "config", "", "Path to game config YAML")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(play)
	root.AddCommand(newReplayCmd(flags))
	return root
}

// newLogger builds the process logger at the requested level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "coingrab",
		Level:           lvl,
	})
	return logger, nil
}
