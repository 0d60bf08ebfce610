// Package audio plays the game's sound cues. Sounds are synthesized at
// runtime with beep; when no audio device is available every call becomes
// a no-op.
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crypto-flap/internal/config"
)

// Track identifies a sound.
type Track int

const (
	TrackBackground Track = iota // Looping music bed
	TrackPoint                   // Gate passed
	TrackGameOver                // Run ended
)

// String returns the track name.
func (t Track) String() string {
	switch t {
	case TrackBackground:
		return "background"
	case TrackPoint:
		return "point"
	case TrackGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Player is fire-and-forget audio output. Implementations never block the
// caller and never report playback failures.
type Player interface {
	// PlayLoop starts a looping track. Calling it while the track already
	// plays does nothing.
	PlayLoop(t Track)
	// PlayOnce plays a short cue, restarting it if it is still playing.
	PlayOnce(t Track)
	// SetMuted silences or restores all output.
	SetMuted(muted bool)
	// Close stops all sounds and releases the device.
	Close()
}

// New returns a Player for the configuration. If audio is disabled or the
// speaker cannot be opened, a Nop player is returned.
func New(cfg config.AudioConfig, logger *log.Logger) Player {
	if !cfg.Enabled {
		return Nop{}
	}
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		if logger != nil {
			logger.Debug("audio unavailable, continuing silently", "err", err)
		}
		return Nop{}
	}
	return sm
}

// Nop discards every call.
type Nop struct{}

func (Nop) PlayLoop(Track) {}
func (Nop) PlayOnce(Track) {}
func (Nop) SetMuted(bool) {}
func (Nop) Close() {}
