package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Spawner releases a new asteroid from off-screen every spawn interval.
type Spawner struct {
	rng     *rand.Rand
	cfg     config.AsteroidConfig
	elapsed float64 // seconds since the last spawn
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.AsteroidConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// Reset restarts the spawn timer.
func (s *Spawner) Reset() {
	s.elapsed = 0
}

// Tick advances the timer and reports whether an asteroid is due.
// The timer resets to zero rather than carrying the remainder.
func (s *Spawner) Tick(dt float64) bool {
	s.elapsed += dt
	if s.elapsed > s.cfg.SpawnInterval.Seconds() {
		s.elapsed = 0
		return true
	}
	return false
}

// Spawn creates an asteroid just outside the viewport, placed on the sides
// it is moving away from so it drifts into view.
func (s *Spawner) Spawn(width, height float64) Asteroid {
	speed := s.cfg.MinSpeed + s.rng.Float64()*(s.cfg.MaxSpeed-s.cfg.MinSpeed)
	heading := s.rng.Float64() * 2 * math.Pi
	vel := core.Forward(heading).Scale(speed)

	radius := s.cfg.SpawnMinRadius + s.rng.Intn(s.cfg.SpawnMaxRadius-s.cfg.SpawnMinRadius)
	r := float64(radius)

	pos := core.V(width+r, height+r)
	if vel.X > 0 {
		pos.X = -r
	}
	if vel.Y > 0 {
		pos.Y = -r
	}

	return NewAsteroid(pos, vel, radius)
}
