package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Bullet is a projectile flying in a straight line. Bullets do not wrap.
type Bullet struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64

	spent bool // scheduled for removal this frame
}

// NewBullet fires a bullet from pos along heading.
func NewBullet(pos core.Vec2, heading, speed, radius float64) Bullet {
	return Bullet{
		Pos:    pos,
		Vel:    core.Forward(heading).Scale(speed),
		Radius: radius,
	}
}

// Integrate moves the bullet.
func (b *Bullet) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// OutOfBounds reports whether the bullet has fully left the viewport.
func (b *Bullet) OutOfBounds(width, height float64) bool {
	field := core.NewRect(-b.Radius, -b.Radius, width+2*b.Radius, height+2*b.Radius)
	return !field.Contains(b.Pos)
}

// Bounds returns the collision rectangle.
func (b *Bullet) Bounds() core.Rect {
	return core.RectAround(b.Pos, b.Radius)
}
