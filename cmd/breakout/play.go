package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Mouse        - Move the paddle
  Click/Space  - Launch the ball
  Left/Right   - Move the paddle without a mouse
  P/Esc        - Pause
  R            - Restart with a fresh board
  ?            - Toggle help
  Q/Ctrl+C     - Quit

The terminal is taken over by the game, so logs are only written when
--log-file is set.

Examples:
  breakout play
  breakout play --seed 42
  breakout play --log-file breakout.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out, "breakout")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	logger.Info("starting game", "width", width, "height", height, "fps", flagFPS, "seed", seed)
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
