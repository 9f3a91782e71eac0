package floormap

import (
	"fmt"
	"iter"
)

// FloorMap is the static floor plan of one dungeon level: a grid of tiles
// plus the rooms carved into it, stored in an append-only list indexed by
// RoomID.
//
// A map is mutable only during the generation phase. Seal ends that phase;
// after sealing, every mutating method panics and the map may be shared
// freely between readers.
type FloorMap struct {
	grid *TileGrid
	// The RoomID is the index into this slice. Rooms are never removed or
	// reordered, which is what keeps issued IDs stable.
	rooms []Room
	// The width and height in pixels of every tile. Immutable after
	// construction; the single conversion factor between world and tile
	// space.
	tileSize int
	sealed   bool
}

// New creates a floor map with a grid of empty tiles of the given size.
// The room collection starts out empty.
func New(size GridSize, tileSize int) *FloorMap {
	if tileSize <= 0 {
		panic(fmt.Sprintf("floormap: tile size must be positive, got %d", tileSize))
	}
	return &FloorMap{
		grid:     NewTileGrid(size),
		tileSize: tileSize,
	}
}

// TileSize returns the pixel edge length of one tile.
func (m *FloorMap) TileSize() int {
	return m.tileSize
}

// LevelBoundary returns the pixel rectangle covered by the whole map.
func (m *FloorMap) LevelBoundary() Rect {
	return m.grid.Dimensions().ToRect(m.tileSize)
}

// Seal marks the generation phase complete. After sealing, AddRoom, RoomMut,
// RoomsMut and GridMut panic.
func (m *FloorMap) Seal() {
	m.sealed = true
}

// Sealed reports whether the generation phase has ended.
func (m *FloorMap) Sealed() bool {
	return m.sealed
}

func (m *FloorMap) mustBeUnsealed(op string) {
	if m.sealed {
		panic("floormap: " + op + " called after the map was sealed")
	}
}

// Grid returns the map's grid of tiles for read-only queries.
func (m *FloorMap) Grid() *TileGrid {
	return m.grid
}

// GridMut returns the grid for in-place mutation during generation. Panics
// once the map is sealed.
func (m *FloorMap) GridMut() *TileGrid {
	m.mustBeUnsealed("GridMut")
	return m.grid
}

// NumRooms returns the number of rooms on the map.
func (m *FloorMap) NumRooms() int {
	return len(m.rooms)
}

// AddRoom appends a room with the given boundary and returns its freshly
// issued ID. Panics once the map is sealed.
func (m *FloorMap) AddRoom(boundary TileRect) RoomID {
	m.mustBeUnsealed("AddRoom")
	m.rooms = append(m.rooms, NewRoom(boundary))
	return RoomID(len(m.rooms) - 1)
}

// Room returns the room with the given ID. An ID not issued by this map is a
// caller bug and panics.
func (m *FloorMap) Room(id RoomID) Room {
	return m.rooms[id]
}

// RoomMut returns the room with the given ID for mutation during generation.
// Panics once the map is sealed.
func (m *FloorMap) RoomMut(id RoomID) *Room {
	m.mustBeUnsealed("RoomMut")
	return &m.rooms[id]
}

// Rooms yields every room and its ID in append order. The order reflects ID
// assignment, nothing more.
func (m *FloorMap) Rooms() iter.Seq2[RoomID, Room] {
	return func(yield func(RoomID, Room) bool) {
		for i, room := range m.rooms {
			if !yield(RoomID(i), room) {
				return
			}
		}
	}
}

// RoomsMut yields every room for mutation during generation. Panics once the
// map is sealed.
func (m *FloorMap) RoomsMut() iter.Seq2[RoomID, *Room] {
	m.mustBeUnsealed("RoomsMut")
	return func(yield func(RoomID, *Room) bool) {
		for i := range m.rooms {
			if !yield(RoomID(i), &m.rooms[i]) {
				return
			}
		}
	}
}

// RoomExactArea counts the tiles inside the room's bounding rectangle that
// are actually floor belonging to that room. The boundary may contain wall
// or passage cells, so this is usually smaller than Width*Height. Cost is
// proportional to the boundary area, not the grid area.
func (m *FloorMap) RoomExactArea(id RoomID) int {
	area := 0
	for pos := range m.Room(id).Boundary().TilePositions() {
		if m.grid.Get(pos).IsRoomFloor(id) {
			area++
		}
	}
	return area
}

// TileRect returns the pixel rectangle spanned by the given corner tiles,
// including the entirety of both corners. Panics if topLeft is not above and
// to the left of bottomRight.
func (m *FloorMap) TileRect(topLeft, bottomRight TilePos) Rect {
	if topLeft.Row > bottomRight.Row || topLeft.Col > bottomRight.Col {
		panic("floormap: expected top left to be above and to the left of bottom right")
	}
	tl := topLeft.TopLeft(m.tileSize)
	br := bottomRight.BottomRight(m.tileSize)
	return Rect{X: tl.X, Y: tl.Y, W: br.X - tl.X, H: br.Y - tl.Y}
}

// WorldToTilePos returns the tile position that the given world point falls
// on. A point off the grid is a caller bug and panics; partially off-grid
// query rectangles go through GridAreaWithin instead, which clamps.
func (m *FloorMap) WorldToTilePos(p Point) TilePos {
	if p.X < 0 || p.Y < 0 {
		panic(fmt.Sprintf("floormap: world point (%d,%d) is not on the grid", p.X, p.Y))
	}
	pos := TilePos{Row: p.Y / m.tileSize, Col: p.X / m.tileSize}
	if pos.Row >= m.grid.RowsLen() || pos.Col >= m.grid.ColsLen() {
		panic(fmt.Sprintf("floormap: world point (%d,%d) is not on the grid", p.X, p.Y))
	}
	return pos
}

// GridAreaWithin returns the top-left tile position and size of the smallest
// tile area containing the overlap between bounds and the grid.
//
// The caller may pass bounds that start at negative coordinates or extend
// past the grid's far edge; the result is clamped to valid tile indices in
// both dimensions and is never empty. The returned area over-covers the
// requested pixel region rather than intersecting it exactly, which is what
// rendering culling wants.
//
// A rectangle with negative width or height is a caller bug and panics:
// clamping is for bounds that hang off the grid, not for bounds that are not
// rectangles at all.
func (m *FloorMap) GridAreaWithin(bounds Rect) (TilePos, GridSize) {
	if bounds.W < 0 || bounds.H < 0 {
		panic(fmt.Sprintf("floormap: query bounds %+v have negative size", bounds))
	}

	// The top-left of the map is defined as (0, 0), so tiles can be requested
	// at most up to that corner: negative pixel coordinates have no tile
	// representation.
	x := max(bounds.X, 0)
	y := max(bounds.Y, 0)

	clampRow := func(row int) int { return min(max(row, 0), m.grid.RowsLen()-1) }
	clampCol := func(col int) int { return min(max(col, 0), m.grid.ColsLen()-1) }

	startRow := clampRow(y / m.tileSize)
	startCol := clampCol(x / m.tileSize)

	endRow := clampRow((y + bounds.H) / m.tileSize)
	endCol := clampCol((x + bounds.W) / m.tileSize)

	return TilePos{Row: startRow, Col: startCol},
		GridSize{Rows: endRow - startRow + 1, Cols: endCol - startCol + 1}
}

// VisibleTile pairs a tile with where its top-left corner lands in world
// space.
type VisibleTile struct {
	Origin Point
	Pos    TilePos
	Tile   *Tile
}

// TilesWithin yields every tile possibly touching the given pixel region,
// in row-major order. Composes GridAreaWithin with position enumeration, so
// the same over-covering applies.
func (m *FloorMap) TilesWithin(bounds Rect) iter.Seq[VisibleTile] {
	origin, size := m.GridAreaWithin(bounds)
	return func(yield func(VisibleTile) bool) {
		for pos := range m.grid.TilePositionsWithin(origin, size) {
			vt := VisibleTile{
				Origin: pos.TopLeft(m.tileSize),
				Pos:    pos,
				Tile:   m.grid.Get(pos),
			}
			if !yield(vt) {
				return
			}
		}
	}
}
