package mapgen

import "github.com/samdwyer/delvemap/internal/floormap"

// carveRoom classifies the boundary's outer ring as the room's walls and its
// interior as the room's floor. The wall ring is what makes a room's exact
// area smaller than its bounding box.
func (g *Generator) carveRoom(fm *floormap.FloorMap, id floormap.RoomID, boundary floormap.TileRect) {
	grid := fm.GridMut()
	for pos := range boundary.TilePositions() {
		tile := grid.Get(pos)
		tile.Type = floormap.RoomMember(id)
		if boundary.IsEdge(pos) {
			tile.Kind = floormap.KindWall
		} else {
			tile.Kind = floormap.KindFloor
		}
	}
}

// carveCorridor cuts an L-shaped tunnel between two tiles, randomly going
// horizontal-then-vertical or vertical-then-horizontal.
func (g *Generator) carveCorridor(fm *floormap.FloorMap, from, to floormap.TilePos) {
	if g.rng.Intn(2) == 0 {
		g.carveHorizontalTunnel(fm, from.Col, to.Col, from.Row)
		g.carveVerticalTunnel(fm, from.Row, to.Row, to.Col)
	} else {
		g.carveVerticalTunnel(fm, from.Row, to.Row, from.Col)
		g.carveHorizontalTunnel(fm, from.Col, to.Col, to.Row)
	}
}

func (g *Generator) carveHorizontalTunnel(fm *floormap.FloorMap, col1, col2, row int) {
	if col1 > col2 {
		col1, col2 = col2, col1
	}
	for col := col1; col <= col2; col++ {
		g.carveTunnelTile(fm, floormap.TilePos{Row: row, Col: col})
	}
}

func (g *Generator) carveVerticalTunnel(fm *floormap.FloorMap, row1, row2, col int) {
	if row1 > row2 {
		row1, row2 = row2, row1
	}
	for row := row1; row <= row2; row++ {
		g.carveTunnelTile(fm, floormap.TilePos{Row: row, Col: col})
	}
}

// carveTunnelTile turns one tile into passage floor. Room floor is left
// alone; a room wall the tunnel passes through becomes a doorway, which is a
// passage cell, so it no longer counts toward the room's exact area.
func (g *Generator) carveTunnelTile(fm *floormap.FloorMap, pos floormap.TilePos) {
	grid := fm.GridMut()
	if !grid.InBounds(pos) {
		return
	}
	tile := grid.Get(pos)
	if tile.IsFloor() {
		return
	}
	tile.Kind = floormap.KindFloor
	tile.Type = floormap.Passageway()
}

// outlineWalls wraps every walkable tile in walls and records per-tile wall
// adjacency for the floor tiles.
func (g *Generator) outlineWalls(fm *floormap.FloorMap) {
	grid := fm.GridMut()
	size := grid.Dimensions()

	// Any empty cell touching floor (diagonals included) becomes a passage
	// wall. Room walls were already placed by carveRoom and keep their
	// membership.
	for pos := range grid.TilePositionsWithin(floormap.TilePos{}, size) {
		if !grid.Get(pos).IsFloor() {
			continue
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				n := floormap.TilePos{Row: pos.Row + dr, Col: pos.Col + dc}
				if !grid.InBounds(n) {
					continue
				}
				if neighbor := grid.Get(n); neighbor.IsEmpty() {
					neighbor.Kind = floormap.KindWall
				}
			}
		}
	}

	// Record which sides of each floor tile are blocked.
	sides := []struct {
		dr, dc int
		flag   floormap.TileWalls
	}{
		{-1, 0, floormap.WallNorth},
		{0, 1, floormap.WallEast},
		{1, 0, floormap.WallSouth},
		{0, -1, floormap.WallWest},
	}
	for pos := range grid.TilePositionsWithin(floormap.TilePos{}, size) {
		tile := grid.Get(pos)
		if !tile.IsFloor() {
			continue
		}
		tile.Walls = 0
		for _, s := range sides {
			n := floormap.TilePos{Row: pos.Row + s.dr, Col: pos.Col + s.dc}
			if !grid.InBounds(n) || grid.Get(n).IsWall() {
				tile.Walls.Add(s.flag)
			}
		}
	}
}
