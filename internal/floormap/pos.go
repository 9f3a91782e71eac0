package floormap

// GridSize is the dimensions of a rectangular tile area, in whole tiles.
type GridSize struct {
	Rows, Cols int
}

// Area returns the number of tiles the size covers.
func (s GridSize) Area() int {
	return s.Rows * s.Cols
}

// ToRect returns the pixel rectangle covered by an area of this size whose
// top-left tile sits at the map origin.
func (s GridSize) ToRect(tileSize int) Rect {
	return Rect{X: 0, Y: 0, W: s.Cols * tileSize, H: s.Rows * tileSize}
}

// TilePos is a zero-based position on the tile grid. It is only meaningful
// for a particular grid: Row must be below the grid's row count and Col below
// its column count.
type TilePos struct {
	Row, Col int
}

// TopLeft returns the world position of the tile's top-left corner.
func (p TilePos) TopLeft(tileSize int) Point {
	return Point{X: p.Col * tileSize, Y: p.Row * tileSize}
}

// BottomRight returns the world position just past the tile's bottom-right
// corner, so that TopLeft and BottomRight together span the full tile.
func (p TilePos) BottomRight(tileSize int) Point {
	return Point{X: (p.Col + 1) * tileSize, Y: (p.Row + 1) * tileSize}
}
