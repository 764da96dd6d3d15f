package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagFrames int
	flagPrint  bool
	flagCols   int
	flagRows   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game driven by an autopilot",
	Long: `Run the simulation without a terminal UI. The pointer follows the
first ball and launches it whenever it is parked. Frames advance by a fixed
1/fps step, so the same seed always produces the same result.

Examples:
  breakout simulate --seed 7
  breakout simulate --frames 7200 --print
  breakout simulate --print --cols 120 --rows 40`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simulateCmd.Flags().BoolVar(&flagPrint, "print", false, "Print the final board")
	simulateCmd.Flags().IntVar(&flagCols, "cols", 80, "Board width in characters for --print")
	simulateCmd.Flags().IntVar(&flagRows, "rows", 24, "Board height in characters for --print")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	game, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "simulate")
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world, err := breakout.NewWorld(game, seed)
	if err != nil {
		return err
	}
	world.Initialize()

	clock := breakout.NewClock(game.Clock.MaxStep, breakout.SteppedNow(time.Second/time.Duration(flagFPS)))
	loop := breakout.NewLoop(world, breakout.NewInputSource(), clock, nil)
	loop.SetBeforeFrame(breakout.Autopilot)

	var surface *tui.Surface
	if flagPrint {
		surface = tui.NewSurface(core.NewScreen(flagCols, flagRows), game.Arena.Width, game.Arena.Height)
		loop.SetRenderer(surface)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	ticks := make(chan time.Time)
	go func() {
		defer close(ticks)
		for range flagFrames {
			select {
			case ticks <- time.Time{}:
			case <-ctx.Done():
				return
			}
		}
	}()

	start := time.Now()
	if err := loop.Run(ctx, ticks); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	stats := world.Stats()
	snap := world.Snapshot()
	logger.Info("simulation finished",
		"seed", seed,
		"frames", stats.Frames,
		"game_time", fmt.Sprintf("%.2fs", clock.GameTime()),
		"max_step", clock.MaxStep(),
		"score", world.Score(),
		"blocks_left", world.BlockCount(),
		"launches", stats.Launches,
		"balls_lost", stats.BallsLost,
		"hash", fmt.Sprintf("%016x", snap.Hash()),
		"elapsed", time.Since(start),
	)

	if surface != nil {
		screen := surface.Screen()
		if world.Cleared() {
			screen.DrawTextCentered(screen.Height()/2, " BOARD CLEARED ", core.ColorWhite)
		}
		fmt.Println(screen.String())
	}
	return nil
}
