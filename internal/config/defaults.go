package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Viewport: ViewportConfig{
			Width:  640,
			Height: 480,
		},
		Player: PlayerConfig{
			Radius:       14,
			MaxSpeed:     350,
			AccelRate:    500,
			RotationRate: 6,
			BulletOffset: 10,
		},
		Bullet: BulletConfig{
			Radius: 3,
			Speed:  800,
		},
		Asteroid: AsteroidConfig{
			MinRadius:       10,
			SpawnMinRadius:  20,
			SpawnMaxRadius:  100,
			MinSpeed:        30,
			MaxSpeed:        90,
			SpawnInterval:   5 * time.Second,
			FragmentDamping: 0.7,
			Opening: []AsteroidSeed{
				{X: 100, Y: 100, VX: 10, VY: 30, Radius: 30},
			},
			OpeningRandom: 1,
		},
		Particles: ParticleConfig{
			Radius:     2,
			MinSpeed:   100,
			MaxSpeed:   200,
			Lifetime:   1500 * time.Millisecond,
			HitBurst:   10,
			DeathBurst: 100,
		},
		Simulation: SimulationConfig{
			MaxFrameDelta: 0, // uncapped
		},
		Input: InputConfig{
			HoldWindow:  150 * time.Millisecond,
			RepeatDelay: 700 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
			Voices:     8,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
