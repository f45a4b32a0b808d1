package config

import (
	"errors"
	"fmt"
)

// Validate reports every setting that would break the simulation.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Viewport.Width > 0 && c.Viewport.Height > 0,
		"viewport: size must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)

	check(c.Player.Radius > 0, "player: radius must be positive")
	check(c.Player.MaxSpeed > 0, "player: max_speed must be positive")
	check(c.Player.AccelRate >= 0, "player: accel_rate must not be negative")
	check(c.Player.RotationRate >= 0, "player: rotation_rate must not be negative")

	check(c.Bullet.Radius > 0, "bullet: radius must be positive")
	check(c.Bullet.Speed > 0, "bullet: speed must be positive")

	a := c.Asteroid
	check(a.MinRadius > 0, "asteroid: min_radius must be positive")
	check(a.SpawnMinRadius >= a.MinRadius,
		"asteroid: spawn_min_radius %d below min_radius %d", a.SpawnMinRadius, a.MinRadius)
	check(a.SpawnMaxRadius > a.SpawnMinRadius,
		"asteroid: spawn_max_radius %d must exceed spawn_min_radius %d", a.SpawnMaxRadius, a.SpawnMinRadius)
	check(a.MinSpeed >= 0 && a.MaxSpeed > a.MinSpeed,
		"asteroid: speed band [%v, %v) is empty", a.MinSpeed, a.MaxSpeed)
	check(a.SpawnInterval > 0, "asteroid: spawn_interval must be positive")
	check(a.FragmentDamping >= 0, "asteroid: fragment_damping must not be negative")
	check(a.OpeningRandom >= 0, "asteroid: opening_random must not be negative")
	for i, s := range a.Opening {
		check(s.Radius >= a.MinRadius,
			"asteroid: opening[%d] radius %d below min_radius %d", i, s.Radius, a.MinRadius)
	}

	p := c.Particles
	check(p.Radius > 0, "particles: radius must be positive")
	check(p.MinSpeed >= 0 && p.MaxSpeed > p.MinSpeed,
		"particles: speed band [%v, %v) is empty", p.MinSpeed, p.MaxSpeed)
	check(p.Lifetime > 0, "particles: lifetime must be positive")
	check(p.HitBurst >= 0 && p.DeathBurst >= 0, "particles: burst sizes must not be negative")

	check(c.Simulation.MaxFrameDelta >= 0, "simulation: max_frame_delta must not be negative")
	check(c.Input.HoldWindow >= 0, "input: hold_window must not be negative")
	check(c.Input.RepeatDelay >= c.Input.HoldWindow,
		"input: repeat_delay %v shorter than hold_window %v", c.Input.RepeatDelay, c.Input.HoldWindow)

	if c.Audio.Enabled {
		check(c.Audio.SampleRate > 0, "audio: sample_rate must be positive")
		check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio: volume %v outside [0, 1]", c.Audio.Volume)
		check(c.Audio.Voices > 0, "audio: voices must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
