package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate checks that the configuration describes a playable run at the
// given frame rate. All problems are reported together.
func (c GameConfig) Validate(tickRate int) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Physics.Gravity <= 0 {
		add("physics.gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.Lift >= 0 {
		add("physics.lift must be negative (upward), got %v", c.Physics.Lift)
	}
	if c.Physics.Damping <= 0 || c.Physics.Damping > 1 {
		add("physics.damping must be in (0, 1], got %v", c.Physics.Damping)
	}
	if c.Player.XRatio <= 0 || c.Player.XRatio >= 1 {
		add("player.x_ratio must be in (0, 1), got %v", c.Player.XRatio)
	}
	if c.Player.RadiusRatio <= 0 {
		add("player.radius_ratio must be positive, got %v", c.Player.RadiusRatio)
	}
	if c.Obstacles.Width <= 0 {
		add("obstacles.width must be positive, got %v", c.Obstacles.Width)
	}
	if c.Obstacles.GapHeight <= 0 {
		add("obstacles.gap_height must be positive, got %v", c.Obstacles.GapHeight)
	}
	if c.Obstacles.Speed <= 0 {
		add("obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	}
	if c.Obstacles.SpawnInterval <= 0 {
		add("obstacles.spawn_interval must be positive, got %v", c.Obstacles.SpawnInterval)
	}
	if c.Obstacles.MarginRatio < 0 {
		add("obstacles.margin_ratio must not be negative, got %v", c.Obstacles.MarginRatio)
	}
	if c.Timing.RestartDelay < 0 {
		add("timing.restart_delay must not be negative, got %v", c.Timing.RestartDelay)
	}
	if c.Trace.Points < 2 {
		add("trace.points must be at least 2, got %d", c.Trace.Points)
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		add("render cell size must be positive, got %vx%v", c.Render.CellWidth, c.Render.CellHeight)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 || c.Audio.CueVolume < 0 || c.Audio.CueVolume > 1 {
		add("audio volumes must be in [0, 1]")
	}
	if tickRate <= 0 {
		add("tick rate must be positive, got %d", tickRate)
	}

	// Gates must never overlap horizontally: the distance travelled between
	// two spawns has to exceed the gate width.
	if tickRate > 0 && c.Obstacles.Speed > 0 && c.Obstacles.SpawnInterval > 0 && c.Obstacles.Width > 0 {
		if spacing := c.SpawnSpacing(tickRate); spacing <= c.Obstacles.Width {
			add("obstacles would overlap: %.1f units between spawns at %d fps is not more than width %.1f",
				spacing, tickRate, c.Obstacles.Width)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}

// SpawnSpacing returns the horizontal distance between consecutive gates in
// world units when running at tickRate frames per second.
func (c GameConfig) SpawnSpacing(tickRate int) float64 {
	frame := time.Second / time.Duration(tickRate)
	frames := float64(c.Obstacles.SpawnInterval) / float64(frame)
	return frames * c.Obstacles.Speed
}
