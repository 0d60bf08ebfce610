package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crypto-flap/internal/audio"
	"github.com/vovakirdan/crypto-flap/internal/core"
	"github.com/vovakirdan/crypto-flap/internal/game"
	"github.com/vovakirdan/crypto-flap/internal/platform/tui"
	"github.com/vovakirdan/crypto-flap/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a local game in the terminal.

Controls:
  Space/Up/W/K/Enter or click  - Flap (also starts and restarts)
  M                            - Mute / unmute
  Q/Ctrl+C                     - Quit

Logs are discarded unless --log-file is given, so the game screen stays clean.

Examples:
  cryptoflap play
  cryptoflap play --seed 42
  cryptoflap play --mute --log-file flap.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with audio muted")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "cryptoflap")
	if err != nil {
		return err
	}
	defer closeLog()

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	ledger, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
		// Continue without a ledger - the game still works
		ledger = nil
	}

	player := audio.New(cfg.Audio, logger)
	defer player.Close()

	g := game.New(cfg, core.SystemClock{})
	runErr := tui.Run(g, rc, tui.Options{
		Audio:  player,
		Ledger: ledger,
		Logger: logger,
		Player: currentUser(),
		Muted:  flagMute,
	})

	if ledger != nil {
		printSummary(ledger)
		ledger.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// printSummary reports the session's runs after the terminal is restored.
func printSummary(ledger *storage.Ledger) {
	sum, err := ledger.Summary()
	if err != nil || sum.Runs == 0 {
		return
	}
	fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Time aloft: %s\n",
		sum.Runs, sum.Best, sum.Average, sum.Playtime.Round(100*time.Millisecond))
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
