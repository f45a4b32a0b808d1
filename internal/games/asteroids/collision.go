package asteroids

// firstHit returns the index of the first intact asteroid whose bounds
// intersect the bullet's, or -1. Ties go to list order, so a bullet
// overlapping several asteroids only ever strikes the earliest one.
func firstHit(b *Bullet, asteroids []Asteroid) int {
	bounds := b.Bounds()
	for i := range asteroids {
		if asteroids[i].IsHit() {
			continue
		}
		if bounds.Intersects(asteroids[i].Bounds()) {
			return i
		}
	}
	return -1
}

// hitsPlayer reports whether the asteroid touches a live ship.
func hitsPlayer(a *Asteroid, p *Player) bool {
	return p.Alive && a.Bounds().Intersects(p.Bounds())
}
