package floormap

import (
	"math/bits"
	"strings"
)

// TileWalls records which edges of a tile are blocked by an adjacent wall.
type TileWalls uint8

const (
	// WallNorth marks a wall along the tile's top edge.
	WallNorth TileWalls = 1 << iota
	// WallEast marks a wall along the tile's right edge.
	WallEast
	// WallSouth marks a wall along the tile's bottom edge.
	WallSouth
	// WallWest marks a wall along the tile's left edge.
	WallWest
)

// Has reports whether all of the given sides are walled.
func (w TileWalls) Has(sides TileWalls) bool {
	return w&sides == sides
}

// Add marks the given sides as walled.
func (w *TileWalls) Add(sides TileWalls) {
	*w |= sides
}

// Remove clears the given sides.
func (w *TileWalls) Remove(sides TileWalls) {
	*w &^= sides
}

// Count returns how many of the four sides are walled.
func (w TileWalls) Count() int {
	return bits.OnesCount8(uint8(w))
}

// String returns the walled sides as a compass string such as "NE", or "none".
func (w TileWalls) String() string {
	if w == 0 {
		return "none"
	}
	var b strings.Builder
	for _, side := range []struct {
		flag TileWalls
		name byte
	}{{WallNorth, 'N'}, {WallEast, 'E'}, {WallSouth, 'S'}, {WallWest, 'W'}} {
		if w.Has(side.flag) {
			b.WriteByte(side.name)
		}
	}
	return b.String()
}
