// Package config provides YAML-based configuration loading and validation
// for the game.
package config

import "time"

// GameConfig contains every tunable of a run. All values are immutable for
// the duration of a run.
type GameConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Timing    TimingConfig    `yaml:"timing"`
	Trace     TraceConfig     `yaml:"trace"`
	Render    RenderConfig    `yaml:"render"`
	Audio     AudioConfig     `yaml:"audio"`
}

// PhysicsConfig defines per-frame body physics in world units.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // added to velocity each frame
	Lift    float64 `yaml:"lift"`    // velocity set by a flap (negative = up)
	Damping float64 `yaml:"damping"` // velocity multiplier each frame
}

// PlayerConfig positions and sizes the body relative to the viewport.
type PlayerConfig struct {
	XRatio      float64 `yaml:"x_ratio"`      // fraction of viewport width
	RadiusRatio float64 `yaml:"radius_ratio"` // fraction of the smaller viewport dimension
}

// ObstaclesConfig defines gate geometry and cadence.
type ObstaclesConfig struct {
	Width         float64       `yaml:"width"`
	GapHeight     float64       `yaml:"gap_height"`
	Speed         float64       `yaml:"speed"` // world units per frame
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	MarginRatio   float64       `yaml:"margin_ratio"` // top/bottom gap margin as fraction of the smaller viewport dimension
}

// TimingConfig defines state machine delays.
type TimingConfig struct {
	RestartDelay time.Duration `yaml:"restart_delay"`
}

// TraceConfig defines the decorative background chart.
type TraceConfig struct {
	Points        int           `yaml:"points"`
	InitialJitter float64       `yaml:"initial_jitter"` // max step between seed samples
	WaveAmplitude float64       `yaml:"wave_amplitude"`
	WavePeriod    time.Duration `yaml:"wave_period"`
	Noise         float64       `yaml:"noise"`
}

// RenderConfig maps world units onto terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// AudioConfig controls the audio collaborator.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MusicVolume float64 `yaml:"music_volume"` // 0.0 - 1.0
	CueVolume   float64 `yaml:"cue_volume"`   // 0.0 - 1.0
}
