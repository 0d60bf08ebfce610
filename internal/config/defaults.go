package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/cryptoflap.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration. It matches the
// embedded defaults/cryptoflap.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity: 0.25,
			Lift:    -8,
			Damping: 0.98,
		},
		Player: PlayerConfig{
			XRatio:      0.5,
			RadiusRatio: 0.03,
		},
		Obstacles: ObstaclesConfig{
			Width:         80,
			GapHeight:     230,
			Speed:         3,
			SpawnInterval: 1800 * time.Millisecond,
			MarginRatio:   0.0625,
		},
		Timing: TimingConfig{
			RestartDelay: 500 * time.Millisecond,
		},
		Trace: TraceConfig{
			Points:        60,
			InitialJitter: 15,
			WaveAmplitude: 2,
			WavePeriod:    400 * time.Millisecond,
			Noise:         3,
		},
		Render: RenderConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicVolume: 0.3,
			CueVolume:   0.8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
