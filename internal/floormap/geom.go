// Package floormap provides the spatial data model for one dungeon floor: a
// dense grid of typed tiles organized into rooms, plus the coordinate math
// that bridges world (pixel) space and tile space.
package floormap

// Point is a position in world (pixel) coordinates.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in world (pixel) coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}
