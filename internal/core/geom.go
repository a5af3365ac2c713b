// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is a float axis-aligned bounding box in playfield units.
// Edges are closed: boxes that merely touch are considered overlapping.
type Box struct {
	Left, Top, Right, Bottom float64
}

// CenteredBox builds a box around (cx, cy) with the given half extents.
func CenteredBox(cx, cy, halfW, halfH float64) Box {
	return Box{
		Left:   cx - halfW,
		Top:    cy - halfH,
		Right:  cx + halfW,
		Bottom: cy + halfH,
	}
}

// OverlapsX reports whether the horizontal extents of two boxes intersect.
func (b Box) OverlapsX(other Box) bool {
	return !(b.Right < other.Left || b.Left > other.Right)
}

// OverlapsY reports whether the vertical extents of two boxes intersect.
func (b Box) OverlapsY(other Box) bool {
	return !(b.Bottom < other.Top || b.Top > other.Bottom)
}

// Overlaps reports whether two boxes intersect on both axes.
func (b Box) Overlaps(other Box) bool {
	return b.OverlapsX(other) && b.OverlapsY(other)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
