// cryptoflap is a one-button arcade game for the terminal: keep the coin
// airborne and fly it through the gaps between the bars.
//
// Usage:
//
//	cryptoflap [play]        - Play locally (default)
//	cryptoflap serve         - Start SSH server for remote play
//	cryptoflap config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gates
//	--config <path>     - Load a custom config YAML
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
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
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cryptoflap",
	Short: "Crypto Flap - keep the coin in the air",
	Long: `Crypto Flap is a one-button arcade game for your terminal.

Tap to flap, slip through the gaps, and don't touch the floor.
Running without a command starts a local game.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  cryptoflap
  cryptoflap play --seed 42 --mute
  cryptoflap serve --ssh :2222
  cryptoflap config --config ./my-flap.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with audio muted")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
