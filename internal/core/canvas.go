package core

// Canvas is the render sink a game draws into once per frame.
// Coordinates are logical viewport units; the platform scales them.
// The canvas is cleared to the background color before Render is called.
type Canvas interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c Color) error

	// StrokePolygon outlines a closed polygon.
	StrokePolygon(points []Vec2, c Color) error

	// DrawScore draws the score overlay in the top-right corner.
	DrawScore(score int) error
}
