package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Particle is a short-lived spark. Its color flickers every frame.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Color core.Color
	TTL   float64 // seconds left
}

// Integrate moves the particle, re-rolls its color and ages it.
func (p *Particle) Integrate(dt float64, rng *rand.Rand) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Color = randomColor(rng)
	p.TTL -= dt
}

// Expired reports whether the particle should be pruned.
func (p *Particle) Expired() bool {
	return p.TTL <= 0
}

// Burst emits count particles at pos flying in random directions.
// A nil color gives every particle its own random color.
func Burst(rng *rand.Rand, cfg config.ParticleConfig, pos core.Vec2, count int, color *core.Color) []Particle {
	particles := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)

		c := randomColor(rng)
		if color != nil {
			c = *color
		}

		particles = append(particles, Particle{
			Pos:   pos,
			Vel:   core.Forward(angle).Scale(speed),
			Color: c,
			TTL:   cfg.Lifetime.Seconds(),
		})
	}
	return particles
}

func randomColor(rng *rand.Rand) core.Color {
	return core.RGB(uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
}
