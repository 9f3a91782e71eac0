package floormap

import (
	"fmt"
	"iter"
)

// TileGrid is a dense 2D container of tiles addressed by TilePos. Dimensions
// are fixed at construction; every cell starts out empty.
type TileGrid struct {
	size  GridSize
	tiles [][]Tile
}

// NewTileGrid creates a grid of empty tiles with the given dimensions.
func NewTileGrid(size GridSize) *TileGrid {
	tiles := make([][]Tile, size.Rows)
	for i := range tiles {
		tiles[i] = make([]Tile, size.Cols)
	}
	return &TileGrid{size: size, tiles: tiles}
}

// Dimensions returns the grid's size in tiles.
func (g *TileGrid) Dimensions() GridSize {
	return g.size
}

// RowsLen returns the number of rows in the grid.
func (g *TileGrid) RowsLen() int {
	return g.size.Rows
}

// ColsLen returns the number of columns in the grid.
func (g *TileGrid) ColsLen() int {
	return g.size.Cols
}

// InBounds reports whether the position addresses a cell of the grid.
func (g *TileGrid) InBounds(pos TilePos) bool {
	return pos.Row >= 0 && pos.Row < g.size.Rows && pos.Col >= 0 && pos.Col < g.size.Cols
}

// Get returns the tile at the given position. Indexing outside the grid is a
// caller bug and panics.
func (g *TileGrid) Get(pos TilePos) *Tile {
	if !g.InBounds(pos) {
		panic(fmt.Sprintf("floormap: tile position (%d,%d) outside %dx%d grid",
			pos.Row, pos.Col, g.size.Rows, g.size.Cols))
	}
	return &g.tiles[pos.Row][pos.Col]
}

// Rows yields the grid's rows from top to bottom, each a slice of tiles in
// column order. The sequence can be iterated more than once.
func (g *TileGrid) Rows() iter.Seq[[]Tile] {
	return func(yield func([]Tile) bool) {
		for _, row := range g.tiles {
			if !yield(row) {
				return
			}
		}
	}
}

// TilePositionsWithin yields every position inside the rectangle starting at
// origin with the given size, in row-major order. The rectangle is not
// clamped to the grid; callers clamp first (see FloorMap.GridAreaWithin).
func (g *TileGrid) TilePositionsWithin(origin TilePos, size GridSize) iter.Seq[TilePos] {
	return NewTileRect(origin, size).TilePositions()
}
