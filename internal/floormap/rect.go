package floormap

import "iter"

// TileRect is a rectangular region of tile positions, stored as a top-left
// origin and a size in whole tiles.
type TileRect struct {
	topLeft TilePos
	size    GridSize
}

// NewTileRect creates a rectangle from its top-left tile and size.
func NewTileRect(topLeft TilePos, size GridSize) TileRect {
	return TileRect{topLeft: topLeft, size: size}
}

// TileRectFromCorners creates the rectangle spanning both corner tiles
// inclusively. Panics if topLeft is not above and to the left of bottomRight.
func TileRectFromCorners(topLeft, bottomRight TilePos) TileRect {
	if topLeft.Row > bottomRight.Row || topLeft.Col > bottomRight.Col {
		panic("floormap: expected top left to be above and to the left of bottom right")
	}
	return TileRect{
		topLeft: topLeft,
		size: GridSize{
			Rows: bottomRight.Row - topLeft.Row + 1,
			Cols: bottomRight.Col - topLeft.Col + 1,
		},
	}
}

// TopLeft returns the rectangle's top-left tile.
func (r TileRect) TopLeft() TilePos {
	return r.topLeft
}

// BottomRight returns the rectangle's bottom-right tile, inclusive.
func (r TileRect) BottomRight() TilePos {
	return TilePos{
		Row: r.topLeft.Row + r.size.Rows - 1,
		Col: r.topLeft.Col + r.size.Cols - 1,
	}
}

// Size returns the rectangle's dimensions in tiles.
func (r TileRect) Size() GridSize {
	return r.size
}

// Width returns the rectangle's width in tiles.
func (r TileRect) Width() int {
	return r.size.Cols
}

// Height returns the rectangle's height in tiles.
func (r TileRect) Height() int {
	return r.size.Rows
}

// Area returns the number of tiles covered by the rectangle. This is the area
// of the bounding box; see FloorMap.RoomExactArea for a room's true floor
// footprint.
func (r TileRect) Area() int {
	return r.size.Area()
}

// Center returns the tile at the middle of the rectangle.
func (r TileRect) Center() TilePos {
	return TilePos{
		Row: r.topLeft.Row + r.size.Rows/2,
		Col: r.topLeft.Col + r.size.Cols/2,
	}
}

// Contains reports whether the position lies inside the rectangle.
func (r TileRect) Contains(pos TilePos) bool {
	return pos.Row >= r.topLeft.Row && pos.Row < r.topLeft.Row+r.size.Rows &&
		pos.Col >= r.topLeft.Col && pos.Col < r.topLeft.Col+r.size.Cols
}

// Intersects reports whether the two rectangles overlap.
func (r TileRect) Intersects(other TileRect) bool {
	return r.topLeft.Row < other.topLeft.Row+other.size.Rows &&
		r.topLeft.Row+r.size.Rows > other.topLeft.Row &&
		r.topLeft.Col < other.topLeft.Col+other.size.Cols &&
		r.topLeft.Col+r.size.Cols > other.topLeft.Col
}

// IsEdge reports whether the position lies on the outermost ring of the
// rectangle.
func (r TileRect) IsEdge(pos TilePos) bool {
	br := r.BottomRight()
	return r.Contains(pos) &&
		(pos.Row == r.topLeft.Row || pos.Row == br.Row ||
			pos.Col == r.topLeft.Col || pos.Col == br.Col)
}

// TilePositions yields every tile position inside the rectangle in row-major
// order. The sequence is finite and can be iterated more than once.
func (r TileRect) TilePositions() iter.Seq[TilePos] {
	return func(yield func(TilePos) bool) {
		for row := r.topLeft.Row; row < r.topLeft.Row+r.size.Rows; row++ {
			for col := r.topLeft.Col; col < r.topLeft.Col+r.size.Cols; col++ {
				if !yield(TilePos{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}
