package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crypto-flap/internal/core"
	"github.com/vovakirdan/crypto-flap/internal/game"
	"github.com/vovakirdan/crypto-flap/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Sessions are silent; finished runs are
kept in memory while the server runs, so everyone sees the server's top run.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.cryptoflap/host_key

Examples:
  cryptoflap serve                           # Listen on :23234
  cryptoflap serve --ssh :2222               # Listen on port 2222
  cryptoflap serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "cryptoflap-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	sc := tui.DefaultSSHServerConfig()
	sc.Address = flagSSHAddr
	sc.HostKeyPath = flagHostKey
	sc.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sc.TickRate = flagFPS
	sc.Logger = logger
	sc.NewGame = func() tui.Game {
		return game.New(cfg, core.SystemClock{})
	}

	server, err := tui.NewSSHServer(sc)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Crypto Flap SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
