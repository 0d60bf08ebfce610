package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crypto-flap/internal/config"
)

// loadConfig loads and validates the game configuration for the chosen
// tick rate.
func loadConfig() (config.GameConfig, error) {
	if flagFPS <= 0 {
		return config.GameConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	if err := cfg.Validate(flagFPS); err != nil {
		return config.GameConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
