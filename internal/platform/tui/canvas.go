package tui

import (
	"math"
	"strconv"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Glyphs used to draw world shapes in cells.
const (
	GlyphSolid   = '█'
	GlyphDot     = '•'
	GlyphShade   = '░'
	GlyphOutline = '*'
)

// ScreenCanvas implements core.Canvas over a character Screen, scaling
// world coordinates onto the available cells.
type ScreenCanvas struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

// NewScreenCanvas creates a canvas mapping a worldW x worldH field onto screen.
func NewScreenCanvas(screen *core.Screen, worldW, worldH float64) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, worldW: worldW, worldH: worldH}
}

// cell maps a world point to the cell containing it.
func (c *ScreenCanvas) cell(p core.Vec2) (int, int) {
	x := int(math.Floor(p.X * float64(c.screen.Width()) / c.worldW))
	y := int(math.Floor(p.Y * float64(c.screen.Height()) / c.worldH))
	return x, y
}

// FillRect fills every cell the rectangle touches. Shapes smaller than a
// cell become a dot; translucent colors use a shade glyph.
func (c *ScreenCanvas) FillRect(r core.Rect, col core.Color) error {
	x0, y0 := c.cell(core.V(r.X, r.Y))
	x1 := int(math.Ceil(r.Right()*float64(c.screen.Width())/c.worldW)) - 1
	y1 := int(math.Ceil(r.Bottom()*float64(c.screen.Height())/c.worldH)) - 1
	x1 = core.Max(x0, x1)
	y1 = core.Max(y0, y1)

	glyph := GlyphSolid
	switch {
	case col.A < 255:
		glyph = GlyphShade
	case x0 == x1 && y0 == y1:
		glyph = GlyphDot
	}

	c.screen.FillCells(x0, y0, x1, y1, glyph, col)
	return nil
}

// StrokePolygon draws the closed outline through points.
func (c *ScreenCanvas) StrokePolygon(points []core.Vec2, col core.Color) error {
	for i := range points {
		ax, ay := c.cell(points[i])
		bx, by := c.cell(points[(i+1)%len(points)])
		c.screen.DrawLine(ax, ay, bx, by, GlyphOutline, col)
	}
	return nil
}

// DrawScore writes the score right-aligned on the top row.
func (c *ScreenCanvas) DrawScore(score int) error {
	text := strconv.Itoa(score)
	c.screen.DrawText(c.screen.Width()-len(text)-1, 0, text, core.ColorScore)
	return nil
}
