package asteroids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// HitState is either NotHit or Hit. The unexported method closes the set.
type HitState interface {
	hitState()
}

// NotHit is the state of an intact asteroid.
type NotHit struct{}

// Hit is the state of an asteroid struck this frame.
// Impact is the striking bullet's velocity.
type Hit struct {
	Impact core.Vec2
}

func (NotHit) hitState() {}
func (Hit) hitState() {}

// Asteroid is a drifting rock. Radius is integral so repeated halving terminates.
type Asteroid struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius int
	State  HitState
}

// NewAsteroid creates an intact asteroid.
func NewAsteroid(pos, vel core.Vec2, radius int) Asteroid {
	return Asteroid{Pos: pos, Vel: vel, Radius: radius, State: NotHit{}}
}

// Integrate moves the asteroid and wraps it around the viewport.
func (a *Asteroid) Integrate(dt, width, height float64) {
	a.Pos = core.Wrap(a.Pos.Add(a.Vel.Scale(dt)), float64(a.Radius), width, height)
}

// Bounds returns the collision rectangle.
func (a *Asteroid) Bounds() core.Rect {
	return core.RectAround(a.Pos, float64(a.Radius))
}

// IsHit reports whether the asteroid has been struck.
func (a *Asteroid) IsHit() bool {
	_, ok := a.State.(Hit)
	return ok
}

// MarkHit records a strike. An asteroid is struck at most once.
func (a *Asteroid) MarkHit(impact core.Vec2) {
	if a.IsHit() {
		return
	}
	a.State = Hit{Impact: impact}
}

// Split breaks a struck asteroid into fragments.
//
// The fragments fly off perpendicular to the shot, at the parent's speed,
// plus damping times the parent's velocity. Each starts one fragment radius
// away from the parent center along its own velocity. If half the radius
// falls below minRadius the asteroid is destroyed outright and Split
// returns nil.
//
// Split panics if the asteroid has not been hit.
func (a *Asteroid) Split(minRadius int, damping float64) []Asteroid {
	hit, ok := a.State.(Hit)
	if !ok {
		panic(fmt.Sprintf("asteroids: Split called on asteroid in state %T", a.State))
	}

	newRadius := a.Radius / 2
	if newRadius < minRadius {
		return nil
	}

	back := hit.Impact.Normalize().Neg()
	speed := a.Vel.Len()
	inherited := a.Vel.Scale(damping)

	children := make([]Asteroid, 0, 2)
	for _, turn := range [2]float64{math.Pi / 2, -math.Pi / 2} {
		vel := back.Rotate(turn).Scale(speed).Add(inherited)
		pos := a.Pos.Add(vel.Normalize().Scale(float64(newRadius)))
		children = append(children, NewAsteroid(pos, vel, newRadius))
	}
	return children
}
