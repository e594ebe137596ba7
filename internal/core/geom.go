// Package core provides fundamental types and utilities for the catcher.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a point or velocity in playfield space.
// The origin is the top-left corner and y grows downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is an axis-aligned region described by its center and half extents.
type Box struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// NewBox creates a box centered on c.
func NewBox(c Vec2, halfW, halfH float64) Box {
	return Box{Center: c, HalfW: halfW, HalfH: halfH}
}

// Contains reports whether p lies inside the box. Edges are inclusive.
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.Center.X-b.HalfW && p.X <= b.Center.X+b.HalfW &&
		p.Y >= b.Center.Y-b.HalfH && p.Y <= b.Center.Y+b.HalfH
}

// Rect represents an axis-aligned cell rectangle used for screen layout.
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
