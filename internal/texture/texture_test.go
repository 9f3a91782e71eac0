package texture

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/delvemap/internal/floormap"
	"github.com/samdwyer/delvemap/internal/mapgen"
)

func TestRegistryIssuesStableHandles(t *testing.T) {
	reg := NewRegistry()

	wall := reg.Register(NameWall)
	floor := reg.Register(NamePassageFloor)

	assert.True(t, wall.Valid())
	assert.NotEqual(t, wall, floor)
	assert.Equal(t, wall, reg.Register(NameWall), "re-registering returns the same handle")

	name, ok := reg.Name(wall)
	require.True(t, ok)
	assert.Equal(t, NameWall, name)

	id, ok := reg.Lookup(NamePassageFloor)
	require.True(t, ok)
	assert.Equal(t, floor, id)
}

func TestRegistryUnknownLookups(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.Lookup("missing")
	assert.False(t, ok)

	_, ok = reg.Name(floormap.TextureID(0))
	assert.False(t, ok)

	_, ok = reg.Name(floormap.TextureID(99))
	assert.False(t, ok)
}

func TestDecoratorStampsAllNonEmptyTiles(t *testing.T) {
	fm := mapgen.NewGenerator(rand.New(rand.NewSource(8))).Generate(
		context.Background(),
		mapgen.FloorConfig{
			Size:     floormap.GridSize{Rows: mapgen.DefaultRows, Cols: mapgen.DefaultCols},
			TileSize: mapgen.DefaultTileSize,
		})

	reg := NewRegistry()
	NewDecorator(reg).Apply(fm)
	fm.Seal()

	grid := fm.Grid()
	for pos := range grid.TilePositionsWithin(floormap.TilePos{}, grid.Dimensions()) {
		tile := grid.Get(pos)
		if tile.IsEmpty() {
			assert.False(t, tile.Texture.Valid(), "empty tiles carry no texture")
			continue
		}
		require.True(t, tile.Texture.Valid(), "tile (%d,%d) missing texture", pos.Row, pos.Col)

		name, ok := reg.Name(tile.Texture)
		require.True(t, ok)
		if tile.IsWall() {
			assert.Equal(t, NameWall, name)
		}
	}
}

func TestDecoratorKeysRoomFloorsByType(t *testing.T) {
	fm := floormap.New(floormap.GridSize{Rows: 6, Cols: 6}, 16)
	boundary := floormap.NewTileRect(floormap.TilePos{Row: 1, Col: 1}, floormap.GridSize{Rows: 3, Cols: 3})
	id := fm.AddRoom(boundary)
	fm.RoomMut(id).SetType(floormap.RoomTreasureChamber)
	for pos := range boundary.TilePositions() {
		tile := fm.GridMut().Get(pos)
		tile.Kind = floormap.KindFloor
		tile.Type = floormap.RoomMember(id)
	}

	reg := NewRegistry()
	NewDecorator(reg).Apply(fm)

	tex := fm.Grid().Get(floormap.TilePos{Row: 2, Col: 2}).Texture
	name, ok := reg.Name(tex)
	require.True(t, ok)
	assert.Equal(t, "floor_room_treasure_chamber", name)
}
