package core

// Wrap maps a position that has fully left the viewport back in on the
// opposite side. An entity of the given radius is allowed to drift radius
// units past an edge before it wraps, so it never pops out while visible.
// Each axis is handled independently.
func Wrap(p Vec2, radius, width, height float64) Vec2 {
	if p.X > width+radius {
		p.X = -radius
	} else if p.X < -radius {
		p.X = width + radius
	}

	if p.Y > height+radius {
		p.Y = -radius
	} else if p.Y < -radius {
		p.Y = height + radius
	}
	return p
}
