// breakout is a terminal rendition of the classic brick-breaking game.
//
// Usage:
//
//	breakout play            - Play in the current terminal
//	breakout serve           - Start SSH server for remote play
//	breakout simulate        - Run a headless autopilot game
//	breakout config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible block colors
//	--config <path>       - Use a custom configuration file
//	--log-level <level>   - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - Break bricks in your terminal",
	Long: `Breakout is a brick-breaking game for the terminal. Move the mouse
to steer the paddle and click to launch the ball.

Available commands:
  play      - Play in the current terminal
  serve     - Start SSH server for remote play
  simulate  - Run a headless game driven by an autopilot
  config    - Print the effective configuration

Examples:
  breakout play
  breakout play --config ./my-breakout.yaml
  breakout serve --ssh :2222
  breakout simulate --frames 3600 --print`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
