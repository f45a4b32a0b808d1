package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// styleCache maps colors to lipgloss styles. Particle colors flicker every
// frame, so the cache is bounded and simply dropped when full.
type styleCache struct {
	styles map[core.Color]lipgloss.Style
	limit  int
}

func newStyleCache(limit int) *styleCache {
	return &styleCache{styles: make(map[core.Color]lipgloss.Style), limit: limit}
}

func (c *styleCache) get(col core.Color) lipgloss.Style {
	if s, ok := c.styles[col]; ok {
		return s
	}
	if len(c.styles) >= c.limit {
		clear(c.styles)
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
	c.styles[col] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles *styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
