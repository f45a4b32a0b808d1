package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// newTestCanvas maps a 640x480 world onto 64x48 cells, ten units per cell.
func newTestCanvas() (*core.Screen, *ScreenCanvas) {
	screen := core.NewScreen(64, 48)
	return screen, NewScreenCanvas(screen, 640, 480)
}

func TestFillRectSmallShapeIsDot(t *testing.T) {
	screen, c := newTestCanvas()

	require.NoError(t, c.FillRect(core.Rect{X: 100, Y: 100, W: 6, H: 6}, core.ColorBullet))

	assert.Equal(t, GlyphDot, screen.Get(10, 10))
	assert.Equal(t, ' ', screen.Get(11, 10))
	assert.Equal(t, core.ColorBullet, screen.GetCell(10, 10).Color)
}

func TestFillRectCoversTouchedCells(t *testing.T) {
	screen, c := newTestCanvas()

	// Spans x 100..130 and y 200..225: cells 10..12 by 20..22
	require.NoError(t, c.FillRect(core.Rect{X: 100, Y: 200, W: 30, H: 25}, core.ColorAsteroid))

	for y := 20; y <= 22; y++ {
		for x := 10; x <= 12; x++ {
			assert.Equal(t, GlyphSolid, screen.Get(x, y), "cell (%d,%d)", x, y)
		}
	}
	assert.Equal(t, ' ', screen.Get(13, 20))
	assert.Equal(t, ' ', screen.Get(10, 23))
}

func TestFillRectTranslucentShade(t *testing.T) {
	screen, c := newTestCanvas()

	require.NoError(t, c.FillRect(core.Rect{X: 300, Y: 220, W: 28, H: 28}, core.ColorHitbox))

	assert.Equal(t, GlyphShade, screen.Get(30, 22))
}

func TestFillRectClipsOffscreen(t *testing.T) {
	screen, c := newTestCanvas()

	require.NoError(t, c.FillRect(core.Rect{X: -50, Y: -50, W: 70, H: 70}, core.ColorAsteroid))

	assert.Equal(t, GlyphSolid, screen.Get(0, 0))
	assert.Equal(t, GlyphSolid, screen.Get(1, 1))
	assert.Equal(t, ' ', screen.Get(2, 2))
}

func TestStrokePolygonClosesOutline(t *testing.T) {
	screen, c := newTestCanvas()

	square := []core.Vec2{core.V(100, 100), core.V(200, 100), core.V(200, 200), core.V(100, 200)}
	require.NoError(t, c.StrokePolygon(square, core.ColorShip))

	for i := 10; i <= 20; i++ {
		assert.Equal(t, GlyphOutline, screen.Get(i, 10), "top edge at %d", i)
		assert.Equal(t, GlyphOutline, screen.Get(i, 20), "bottom edge at %d", i)
		assert.Equal(t, GlyphOutline, screen.Get(10, i), "left edge at %d", i)
		assert.Equal(t, GlyphOutline, screen.Get(20, i), "right edge at %d", i)
	}
	assert.Equal(t, ' ', screen.Get(15, 15), "outline only")
	assert.Equal(t, core.ColorShip, screen.GetCell(10, 10).Color)
}

func TestDrawScoreTopRight(t *testing.T) {
	screen, c := newTestCanvas()

	require.NoError(t, c.DrawScore(42))

	assert.Equal(t, "42 ", strings.Split(screen.String(), "\n")[0][61:])
	assert.Equal(t, core.ColorScore, screen.GetCell(61, 0).Color)
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(12, 3)
	screen.DrawText(0, 0, "ab", core.ColorShip)
	screen.DrawText(2, 0, "cd", core.ColorAsteroid)
	screen.DrawTextCentered(1, "mid", core.ColorMessage)

	out := ansi.Strip(RenderScreen(screen, newStyleCache(4)))

	assert.Equal(t, screen.String(), out)
	assert.Equal(t, 3, strings.Count(out, "\n")+1)
}

func TestStyleCacheBounded(t *testing.T) {
	c := newStyleCache(2)

	c.get(core.RGB(1, 2, 3))
	c.get(core.RGB(4, 5, 6))
	c.get(core.RGB(1, 2, 3))
	assert.Len(t, c.styles, 2)

	c.get(core.RGB(7, 8, 9))
	assert.Len(t, c.styles, 1)
}
