// Package config provides YAML-based configuration loading for the
// asteroids simulation and its frontends.
package config

import "time"

// AsteroidsConfig contains all tunables for the game, its frontends and audio.
type AsteroidsConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Asteroid   AsteroidConfig   `yaml:"asteroid"`
	Particles  ParticleConfig   `yaml:"particles"`
	Simulation SimulationConfig `yaml:"simulation"`
	Render     RenderConfig     `yaml:"render"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
}

// ViewportConfig defines the logical playfield size in world units.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the ship's physics.
type PlayerConfig struct {
	Radius       float64 `yaml:"radius"`
	MaxSpeed     float64 `yaml:"max_speed"`     // units/s
	AccelRate    float64 `yaml:"accel_rate"`    // units/s²
	RotationRate float64 `yaml:"rotation_rate"` // rad/s
	BulletOffset float64 `yaml:"bullet_offset"` // distance ahead of center where bullets appear
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// AsteroidConfig defines spawning and fragmentation parameters.
type AsteroidConfig struct {
	MinRadius       int            `yaml:"min_radius"` // fragments below this are destroyed
	SpawnMinRadius  int            `yaml:"spawn_min_radius"`
	SpawnMaxRadius  int            `yaml:"spawn_max_radius"` // exclusive
	MinSpeed        float64        `yaml:"min_speed"`
	MaxSpeed        float64        `yaml:"max_speed"` // exclusive
	SpawnInterval   time.Duration  `yaml:"spawn_interval"`
	FragmentDamping float64        `yaml:"fragment_damping"` // share of parent velocity inherited by fragments
	Opening         []AsteroidSeed `yaml:"opening"`
	OpeningRandom   int            `yaml:"opening_random"` // random asteroids added on reset
}

// AsteroidSeed is a fixed asteroid placed on reset.
type AsteroidSeed struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Radius int     `yaml:"radius"`
}

// ParticleConfig defines explosion bursts.
type ParticleConfig struct {
	Radius     float64       `yaml:"radius"`
	MinSpeed   float64       `yaml:"min_speed"`
	MaxSpeed   float64       `yaml:"max_speed"`
	Lifetime   time.Duration `yaml:"lifetime"`
	HitBurst   int           `yaml:"hit_burst"`
	DeathBurst int           `yaml:"death_burst"`
}

// SimulationConfig defines frame integration options.
type SimulationConfig struct {
	// MaxFrameDelta caps the per-frame delta time. Zero leaves it uncapped.
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`
}

// RenderConfig defines presentation options.
type RenderConfig struct {
	DebugHitboxes bool `yaml:"debug_hitboxes"`
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	// HoldWindow is how long a key counts as held after its last auto-repeat
	// event. Terminals report no key releases.
	HoldWindow time.Duration `yaml:"hold_window"`

	// RepeatDelay bounds the pause before the keyboard starts auto-repeating.
	// A key event within this long of the previous one continues the same
	// press, and a key stays held this long after its first event.
	RepeatDelay time.Duration `yaml:"repeat_delay"`
}

// AudioConfig defines the sound mixer.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	Voices     int     `yaml:"voices"` // initial concurrent sounds
}
