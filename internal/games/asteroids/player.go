package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Player is the ship. Heading 0 points up; positive headings turn clockwise.
type Player struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Heading float64 // radians
	Alive   bool

	cfg config.PlayerConfig
}

// NewPlayer creates a live ship at rest at pos.
func NewPlayer(pos core.Vec2, cfg config.PlayerConfig) *Player {
	return &Player{Pos: pos, Alive: true, cfg: cfg}
}

// Rotate turns the ship. Only the sign of direction matters:
// negative turns left, positive turns right, zero does nothing.
func (p *Player) Rotate(direction, dt float64) {
	switch {
	case direction < 0:
		p.Heading -= p.cfg.RotationRate * dt
	case direction > 0:
		p.Heading += p.cfg.RotationRate * dt
	}
}

// Accelerate thrusts along the heading, then rescales the velocity so
// its magnitude never exceeds MaxSpeed.
func (p *Player) Accelerate(dt float64) {
	p.Vel = p.Vel.Add(core.Forward(p.Heading).Scale(p.cfg.AccelRate * dt))
	if speed := p.Vel.Len(); speed > p.cfg.MaxSpeed {
		p.Vel = p.Vel.Scale(p.cfg.MaxSpeed / speed)
	}
}

// Integrate moves the ship and wraps it around the viewport.
func (p *Player) Integrate(dt, width, height float64) {
	p.Pos = core.Wrap(p.Pos.Add(p.Vel.Scale(dt)), p.cfg.Radius, width, height)
}

// Bounds returns the collision rectangle.
func (p *Player) Bounds() core.Rect {
	return core.RectAround(p.Pos, p.cfg.Radius)
}

// Muzzle returns where a fired bullet appears.
func (p *Player) Muzzle() core.Vec2 {
	return p.Pos.Add(core.Forward(p.Heading).Scale(p.cfg.BulletOffset))
}

// Kill marks the ship as destroyed.
func (p *Player) Kill() {
	p.Alive = false
}

// Respawn revives the ship at pos, at rest and pointing up.
func (p *Player) Respawn(pos core.Vec2) {
	p.Pos = pos
	p.Vel = core.Vec2{}
	p.Heading = 0
	p.Alive = true
}

// Hull returns the ship's triangle outline in world coordinates.
func (p *Player) Hull() []core.Vec2 {
	r := p.cfg.Radius
	offsets := [3]core.Vec2{
		core.V(0, -r-4),
		core.V(-r+2, r+4),
		core.V(r-2, r+4),
	}

	hull := make([]core.Vec2, len(offsets))
	for i, o := range offsets {
		hull[i] = p.Pos.Add(o.Rotate(p.Heading))
	}
	return hull
}
