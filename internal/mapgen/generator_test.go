package mapgen

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/delvemap/internal/floormap"
)

func testConfig() FloorConfig {
	return FloorConfig{
		Size:     floormap.GridSize{Rows: DefaultRows, Cols: DefaultCols},
		TileSize: DefaultTileSize,
	}
}

func TestGenerateReproducibility(t *testing.T) {
	// Two floors generated with the same seed must be identical.
	seed := int64(12345)

	f1 := NewGenerator(rand.New(rand.NewSource(seed))).Generate(context.Background(), testConfig())
	f2 := NewGenerator(rand.New(rand.NewSource(seed))).Generate(context.Background(), testConfig())

	if f1.NumRooms() != f2.NumRooms() {
		t.Fatalf("Room count mismatch: %d != %d", f1.NumRooms(), f2.NumRooms())
	}
	for id, room := range f1.Rooms() {
		other := f2.Room(id)
		if room.Boundary() != other.Boundary() || room.Type() != other.Type() {
			t.Errorf("Room %v mismatch: %+v != %+v", id, room, other)
		}
	}
	if f1.Checksum() != f2.Checksum() {
		t.Errorf("Checksum mismatch: %016x != %016x", f1.Checksum(), f2.Checksum())
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	f1 := NewGenerator(rand.New(rand.NewSource(12345))).Generate(context.Background(), testConfig())
	f2 := NewGenerator(rand.New(rand.NewSource(54321))).Generate(context.Background(), testConfig())

	// Identical layouts from different seeds are vanishingly unlikely.
	if f1.Checksum() == f2.Checksum() {
		t.Error("Floors with different seeds should not be identical")
	}
}

func TestGenerateRoomInvariants(t *testing.T) {
	fm := NewGenerator(rand.New(rand.NewSource(99))).Generate(context.Background(), testConfig())

	if fm.NumRooms() == 0 {
		t.Fatal("Expected at least one room")
	}

	bounds := floormap.NewTileRect(floormap.TilePos{}, fm.Grid().Dimensions())
	for id, room := range fm.Rooms() {
		boundary := room.Boundary()
		if !bounds.Contains(boundary.TopLeft()) || !bounds.Contains(boundary.BottomRight()) {
			t.Errorf("Room %v boundary %+v extends outside the grid", id, boundary)
		}

		exact := fm.RoomExactArea(id)
		if exact == 0 {
			t.Errorf("Room %v has no floor tiles", id)
		}
		if exact > boundary.Area() {
			t.Errorf("Room %v exact area %d exceeds boundary area %d", id, exact, boundary.Area())
		}
		// The wall ring always eats into the bounding box.
		if exact == boundary.Area() {
			t.Errorf("Room %v exact area equals its boundary area; walls missing", id)
		}
	}
}

func TestGenerateRoomTypes(t *testing.T) {
	fm := NewGenerator(rand.New(rand.NewSource(7))).Generate(context.Background(), testConfig())

	starts, treasures := 0, 0
	for _, room := range fm.Rooms() {
		switch room.Type() {
		case floormap.RoomPlayerStart:
			starts++
		case floormap.RoomTreasureChamber:
			treasures++
		}
	}
	if starts != 1 {
		t.Errorf("Expected exactly one player start room, got %d", starts)
	}
	if fm.NumRooms() > 1 && treasures != 1 {
		t.Errorf("Expected exactly one treasure chamber, got %d", treasures)
	}
	if fm.Room(0).Type() != floormap.RoomPlayerStart {
		t.Errorf("Expected room 0 to be the player start, got %v", fm.Room(0).Type())
	}
}

func TestGenerateFloorsAreConnected(t *testing.T) {
	fm := NewGenerator(rand.New(rand.NewSource(42))).Generate(context.Background(), testConfig())

	grid := fm.Grid()
	size := grid.Dimensions()

	// Flood fill from any floor tile must reach every floor tile.
	var start *floormap.TilePos
	total := 0
	for pos := range grid.TilePositionsWithin(floormap.TilePos{}, size) {
		if grid.Get(pos).IsFloor() {
			total++
			if start == nil {
				p := pos
				start = &p
			}
		}
	}
	if start == nil {
		t.Fatal("No floor tiles generated")
	}

	seen := map[floormap.TilePos]bool{*start: true}
	queue := []floormap.TilePos{*start}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			n := floormap.TilePos{Row: pos.Row + d[0], Col: pos.Col + d[1]}
			if !grid.InBounds(n) || seen[n] || !grid.Get(n).IsFloor() {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}

	if len(seen) != total {
		t.Errorf("Floor is not fully connected: reached %d of %d floor tiles", len(seen), total)
	}
}

func TestGenerateWallAdjacency(t *testing.T) {
	fm := NewGenerator(rand.New(rand.NewSource(3))).Generate(context.Background(), testConfig())

	grid := fm.Grid()
	for pos := range grid.TilePositionsWithin(floormap.TilePos{}, grid.Dimensions()) {
		tile := grid.Get(pos)
		if !tile.IsFloor() {
			continue
		}
		north := floormap.TilePos{Row: pos.Row - 1, Col: pos.Col}
		wantNorth := !grid.InBounds(north) || grid.Get(north).IsWall()
		if tile.Walls.Has(floormap.WallNorth) != wantNorth {
			t.Fatalf("Tile (%d,%d) north wall flag mismatch", pos.Row, pos.Col)
		}
	}
}

func TestGenerateLeavesMapUnsealed(t *testing.T) {
	fm := NewGenerator(rand.New(rand.NewSource(1))).Generate(context.Background(), testConfig())

	if fm.Sealed() {
		t.Fatal("Generate should leave the map unsealed for gate linking and decoration")
	}
	fm.Seal()
	if !fm.Sealed() {
		t.Fatal("Seal did not take effect")
	}
}

func TestGenerateObjectProbabilities(t *testing.T) {
	fm := NewGenerator(rand.New(rand.NewSource(11))).Generate(context.Background(), testConfig())

	grid := fm.Grid()
	for pos := range grid.TilePositionsWithin(floormap.TilePos{}, grid.Dimensions()) {
		tile := grid.Get(pos)
		spawn, ok := tile.Object.(floormap.EnemySpawn)
		if !ok {
			continue
		}
		if spawn.Probability < 0 || spawn.Probability > 1 {
			t.Errorf("Spawn probability %f at (%d,%d) outside [0,1]",
				spawn.Probability, pos.Row, pos.Col)
		}
		if !tile.IsFloor() {
			t.Errorf("Spawn placed on non-floor tile at (%d,%d)", pos.Row, pos.Col)
		}
	}
}
