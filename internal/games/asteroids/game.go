// Package asteroids implements the Asteroids arcade simulation.
// The player steers a ship around a wrapping playfield, shooting asteroids
// that break into smaller fragments until they are too small to survive.
package asteroids

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// presetConfig is the configuration given to games created by the registry.
var presetConfig *config.AsteroidsConfig

// UseConfig sets the configuration for games created after this call.
// Without it a game loads its configuration from the default search path on Reset.
func UseConfig(cfg config.AsteroidsConfig) {
	presetConfig = &cfg
}

func init() {
	registry.Register("asteroids", func(svc registry.Services) registry.Game {
		if presetConfig != nil {
			return NewWithConfig(svc, *presetConfig)
		}
		return New(svc)
	})
}

// Game implements the Asteroids game logic.
type Game struct {
	cfg    config.AsteroidsConfig
	rt     core.RuntimeConfig
	rng    *rand.Rand
	sound  core.SoundPlayer
	logger *log.Logger

	player    *Player
	bullets   []Bullet
	asteroids []Asteroid
	particles []Particle
	spawner   *Spawner

	score  int
	paused bool
	frames int // simulated frames since reset
}

// New creates a game that loads its configuration on Reset.
func New(svc registry.Services) *Game {
	svc = svc.Normalize()
	return &Game{
		sound:  svc.Sound,
		logger: svc.Logger,
	}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(svc registry.Services, cfg config.AsteroidsConfig) *Game {
	g := New(svc)
	g.cfg = cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if g.cfg.Viewport.Width == 0 {
		cfg, err := config.LoadAsteroids("")
		if err != nil {
			g.logger.Warn("falling back to default config", "error", err)
			cfg = config.DefaultAsteroidsConfig()
		}
		g.cfg = cfg
	}

	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW = g.cfg.Viewport.Width
		rt.ScreenH = g.cfg.Viewport.Height
	}
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))

	g.player = NewPlayer(g.center(), g.cfg.Player)
	g.bullets = nil
	g.particles = nil
	g.spawner = NewSpawner(g.rng, g.cfg.Asteroid)
	g.score = 0
	g.paused = false
	g.frames = 0

	g.asteroids = make([]Asteroid, 0, len(g.cfg.Asteroid.Opening)+g.cfg.Asteroid.OpeningRandom)
	for _, s := range g.cfg.Asteroid.Opening {
		g.asteroids = append(g.asteroids, NewAsteroid(core.V(s.X, s.Y), core.V(s.VX, s.VY), s.Radius))
	}
	w, h := g.size()
	for i := 0; i < g.cfg.Asteroid.OpeningRandom; i++ {
		g.asteroids = append(g.asteroids, g.spawner.Spawn(w, h))
	}

	g.logger.Debug("reset", "seed", rt.Seed, "viewport", g.cfg.Viewport, "asteroids", len(g.asteroids))
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	secs := g.frameDelta(dt)
	w, h := g.size()
	g.frames++

	g.handleDiscrete(in)
	g.handleContinuous(in, secs)

	if g.spawner.Tick(secs) {
		a := g.spawner.Spawn(w, h)
		g.asteroids = append(g.asteroids, a)
		g.logger.Debug("asteroid spawned", "radius", a.Radius, "pos", a.Pos)
	}

	g.player.Integrate(secs, w, h)
	g.updateBullets(secs, w, h)
	g.updateAsteroids(secs, w, h)
	g.updateParticles(secs)
	g.removeDead()

	return core.StepResult{State: g.State()}
}

// frameDelta converts dt to seconds, applying the optional cap.
func (g *Game) frameDelta(dt time.Duration) float64 {
	if dt < 0 {
		dt = 0
	}
	if limit := g.cfg.Simulation.MaxFrameDelta; limit > 0 && dt > limit {
		dt = limit
	}
	return dt.Seconds()
}

func (g *Game) handleDiscrete(in core.InputFrame) {
	if in.Has(core.ActionFire) && g.player.Alive {
		g.bullets = append(g.bullets, NewBullet(
			g.player.Muzzle(), g.player.Heading, g.cfg.Bullet.Speed, g.cfg.Bullet.Radius))
		g.sound.Play(core.CueShoot)
	}

	if in.Has(core.ActionRestart) && !g.player.Alive {
		g.player.Respawn(g.center())
		g.logger.Info("player respawned", "score", g.score)
	}
}

func (g *Game) handleContinuous(in core.InputFrame, dt float64) {
	if !g.player.Alive {
		return
	}
	if in.IsHeld(core.ActionRotateLeft) {
		g.player.Rotate(-1, dt)
	}
	if in.IsHeld(core.ActionRotateRight) {
		g.player.Rotate(1, dt)
	}
	if in.IsHeld(core.ActionThrust) {
		g.player.Accelerate(dt)
	}
}

// updateBullets moves bullets and resolves bullet/asteroid hits.
// A bullet leaving the viewport is spent without a collision test.
func (g *Game) updateBullets(dt, w, h float64) {
	for i := range g.bullets {
		b := &g.bullets[i]
		b.Integrate(dt)

		if b.OutOfBounds(w, h) {
			b.spent = true
			continue
		}

		j := firstHit(b, g.asteroids)
		if j < 0 {
			continue
		}
		g.asteroids[j].MarkHit(b.Vel)
		b.spent = true
		g.score++

		hitColor := core.ColorHitParticle
		g.particles = append(g.particles,
			Burst(g.rng, g.cfg.Particles, b.Pos, g.cfg.Particles.HitBurst, &hitColor)...)
		g.sound.Play(core.CueHit)
	}
}

// updateAsteroids moves asteroids and checks them against the ship.
func (g *Game) updateAsteroids(dt, w, h float64) {
	for i := range g.asteroids {
		a := &g.asteroids[i]
		a.Integrate(dt, w, h)

		if hitsPlayer(a, g.player) {
			g.killPlayer()
		}
	}
}

func (g *Game) killPlayer() {
	g.player.Kill()
	g.particles = append(g.particles,
		Burst(g.rng, g.cfg.Particles, g.player.Pos, g.cfg.Particles.DeathBurst, nil)...)
	g.sound.Play(core.CueExplode)
	g.logger.Info("player destroyed", "score", g.score, "frame", g.frames)
}

func (g *Game) updateParticles(dt float64) {
	for i := range g.particles {
		g.particles[i].Integrate(dt, g.rng)
	}
}

// removeDead filters spent bullets, struck asteroids and expired particles
// into fresh slices. Fragments of struck asteroids go after the survivors.
func (g *Game) removeDead() {
	bullets := make([]Bullet, 0, len(g.bullets))
	for _, b := range g.bullets {
		if !b.spent {
			bullets = append(bullets, b)
		}
	}
	g.bullets = bullets

	asteroids := make([]Asteroid, 0, len(g.asteroids)+2)
	var fragments []Asteroid
	for i := range g.asteroids {
		a := &g.asteroids[i]
		if a.IsHit() {
			fragments = append(fragments, a.Split(g.cfg.Asteroid.MinRadius, g.cfg.Asteroid.FragmentDamping)...)
			continue
		}
		asteroids = append(asteroids, *a)
	}
	g.asteroids = append(asteroids, fragments...)

	particles := make([]Particle, 0, len(g.particles))
	for _, p := range g.particles {
		if !p.Expired() {
			particles = append(particles, p)
		}
	}
	g.particles = particles
}

// Render draws particles, asteroids, bullets, the ship and the score, in that order.
func (g *Game) Render(dst core.Canvas) error {
	for i := range g.particles {
		p := &g.particles[i]
		if err := dst.FillRect(core.RectAround(p.Pos, g.cfg.Particles.Radius), p.Color); err != nil {
			return err
		}
	}

	for i := range g.asteroids {
		if err := dst.FillRect(g.asteroids[i].Bounds(), core.ColorAsteroid); err != nil {
			return err
		}
	}

	for i := range g.bullets {
		if err := dst.FillRect(g.bullets[i].Bounds(), core.ColorBullet); err != nil {
			return err
		}
	}

	if g.player.Alive {
		if err := dst.StrokePolygon(g.player.Hull(), core.ColorShip); err != nil {
			return err
		}
		if g.cfg.Render.DebugHitboxes {
			if err := dst.FillRect(g.player.Bounds(), core.ColorHitbox); err != nil {
				return err
			}
		}
	}

	return dst.DrawScore(g.score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.player != nil && !g.player.Alive,
		Paused:   g.paused,
	}
}

// Config returns the active configuration.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}

func (g *Game) size() (float64, float64) {
	return float64(g.rt.ScreenW), float64(g.rt.ScreenH)
}

func (g *Game) center() core.Vec2 {
	w, h := g.size()
	return core.V(w/2, h/2)
}
