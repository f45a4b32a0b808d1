package core

import (
	"fmt"
	"image/color"
)

// Color is a straight-alpha RGBA color used by every render sink.
// It satisfies image/color.Color so graphical frontends can use it directly.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements image/color.Color (alpha-premultiplied, 16-bit).
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex returns the color as #rrggbb, dropping alpha. Terminals have no alpha channel.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Predefined colors for game elements.
var (
	ColorBackground  = RGB(0, 0, 0)
	ColorBullet      = RGB(255, 255, 255)
	ColorAsteroid    = RGB(128, 128, 128)
	ColorShip        = RGB(0, 255, 50)
	ColorHitbox      = RGBA(100, 100, 200, 140)
	ColorScore       = RGBA(50, 255, 50, 200)
	ColorHitParticle = RGB(180, 50, 50)
	ColorMessage     = RGB(255, 255, 255)
)
