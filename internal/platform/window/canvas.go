package window

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

const outlineWidth = 1.5

// imageCanvas implements core.Canvas on an Ebiten image in world units.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) FillRect(r core.Rect, col core.Color) error {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
	return nil
}

func (c imageCanvas) StrokePolygon(points []core.Vec2, col core.Color) error {
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), outlineWidth, col, true)
	}
	return nil
}

func (c imageCanvas) DrawScore(score int) error {
	text := strconv.Itoa(score)
	w := c.dst.Bounds().Dx()
	ebitenutil.DebugPrintAt(c.dst, text, w-len(text)*debugGlyphW-8, 4)
	return nil
}
