package mapgen

import (
	"github.com/google/uuid"

	"github.com/samdwyer/delvemap/internal/floormap"
)

const (
	challengeSpawnChance = 0.9
	normalSpawnChance    = 0.3
)

// assignRoomTypes classifies the generated rooms: the first room is the
// player start, the largest of the rest becomes the treasure chamber and a
// quarter of the remainder become challenge rooms.
func (g *Generator) assignRoomTypes(fm *floormap.FloorMap) {
	if fm.NumRooms() == 0 {
		return
	}

	fm.RoomMut(0).SetType(floormap.RoomPlayerStart)

	treasure := floormap.RoomID(-1)
	largest := 0
	for id, room := range fm.Rooms() {
		if id == 0 {
			continue
		}
		if area := room.Boundary().Area(); area > largest {
			largest = area
			treasure = id
		}
	}
	if treasure >= 0 {
		fm.RoomMut(treasure).SetType(floormap.RoomTreasureChamber)
	}

	for id, room := range fm.RoomsMut() {
		if id == 0 || id == treasure {
			continue
		}
		if g.rng.Intn(4) == 0 {
			room.SetType(floormap.RoomChallenge)
		}
	}
}

// placeObjects scatters gates, chests and enemy spawn points over the floor.
func (g *Generator) placeObjects(fm *floormap.FloorMap, cfg FloorConfig) {
	if fm.NumRooms() == 0 {
		return
	}

	if cfg.UpGate {
		// The player climbs in where they start.
		if pos, ok := g.randomFloorInRoom(fm, 0); ok {
			fm.GridMut().Get(pos).PlaceObject(floormap.ToPrevLevel{Gate: g.newGate()})
		}
	}
	if cfg.DownGate {
		// The way down goes in the last room, far from the start in BSP
		// append order.
		last := floormap.RoomID(fm.NumRooms() - 1)
		if pos, ok := g.randomFloorInRoom(fm, last); ok {
			fm.GridMut().Get(pos).PlaceObject(floormap.ToNextLevel{Gate: g.newGate()})
		}
	}

	for id, room := range fm.Rooms() {
		switch room.Type() {
		case floormap.RoomTreasureChamber:
			g.placeChest(fm, id, floormap.TreasureKey{})
		case floormap.RoomChallenge:
			g.placeChest(fm, id, floormap.Potion{Strength: 1 + g.rng.Intn(3)})
			g.placeSpawns(fm, id, 3, challengeSpawnChance)
		case floormap.RoomNormal:
			g.placeSpawns(fm, id, 2, normalSpawnChance)
		}
	}
}

// newGate issues a placeholder gate ID. LinkLevels rewrites it once the
// adjacent floor exists.
func (g *Generator) newGate() uuid.UUID {
	var id uuid.UUID
	g.rng.Read(id[:])
	id[6] = (id[6] & 0x0f) | 0x40 // version 4
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10
	return id
}

func (g *Generator) placeChest(fm *floormap.FloorMap, id floormap.RoomID, item floormap.Item) {
	if pos, ok := g.randomFloorInRoom(fm, id); ok {
		fm.GridMut().Get(pos).PlaceObject(floormap.Chest{Contents: item})
	}
}

func (g *Generator) placeSpawns(fm *floormap.FloorMap, id floormap.RoomID, count int, probability float64) {
	for i := 0; i < count; i++ {
		if pos, ok := g.randomFloorInRoom(fm, id); ok {
			fm.GridMut().Get(pos).PlaceObject(floormap.EnemySpawn{Probability: probability})
		}
	}
}

// randomFloorInRoom returns a random object-free floor tile of the room.
// Tries random points first, then falls back to scanning the boundary.
func (g *Generator) randomFloorInRoom(fm *floormap.FloorMap, id floormap.RoomID) (floormap.TilePos, bool) {
	boundary := fm.Room(id).Boundary()
	grid := fm.GridMut()

	for i := 0; i < 100; i++ {
		pos := floormap.TilePos{
			Row: boundary.TopLeft().Row + g.rng.Intn(boundary.Height()),
			Col: boundary.TopLeft().Col + g.rng.Intn(boundary.Width()),
		}
		if tile := grid.Get(pos); tile.IsRoomFloor(id) && !tile.HasObject() {
			return pos, true
		}
	}

	for pos := range boundary.TilePositions() {
		if tile := grid.Get(pos); tile.IsRoomFloor(id) && !tile.HasObject() {
			return pos, true
		}
	}
	return floormap.TilePos{}, false
}
