package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/delvemap/internal/floormap"
	"github.com/samdwyer/delvemap/internal/gamedata"
	"github.com/samdwyer/delvemap/internal/texture"
)

// decoratedRoomMap builds a small map with one room of the given type,
// carved and texture-stamped the way BuildLevels leaves floors.
func decoratedRoomMap(t *testing.T, roomType floormap.RoomType) (*floormap.FloorMap, *texture.Registry) {
	t.Helper()

	fm := floormap.New(floormap.GridSize{Rows: 6, Cols: 6}, 16)
	boundary := floormap.NewTileRect(floormap.TilePos{Row: 1, Col: 1}, floormap.GridSize{Rows: 4, Cols: 4})
	id := fm.AddRoom(boundary)
	fm.RoomMut(id).SetType(roomType)
	for pos := range boundary.TilePositions() {
		tile := fm.GridMut().Get(pos)
		tile.Type = floormap.RoomMember(id)
		if boundary.IsEdge(pos) {
			tile.Kind = floormap.KindWall
		} else {
			tile.Kind = floormap.KindFloor
		}
	}
	passage := fm.GridMut().Get(floormap.TilePos{Row: 0, Col: 0})
	passage.Kind = floormap.KindFloor

	reg := texture.NewRegistry()
	texture.NewDecorator(reg).Apply(fm)
	fm.Seal()
	return fm, reg
}

func foreground(style tcell.Style) tcell.Color {
	fg, _, _ := style.Decompose()
	return fg
}

func TestTileAppearanceResolvesTextureHandles(t *testing.T) {
	fm, reg := decoratedRoomMap(t, floormap.RoomTreasureChamber)

	r := &Renderer{tiles: gamedata.MustLoadTileset()}
	r.UseTextures(reg)

	// The stamped handle, not the tile kind, selects the glyph: the room
	// floor resolves through the registry to the treasure chamber texture.
	center := fm.Grid().Get(floormap.TilePos{Row: 2, Col: 2})
	require.True(t, center.Texture.Valid())

	want := r.tiles.RoomFloor(floormap.RoomTreasureChamber.String())
	ch, style := r.tileAppearance(fm, center)
	assert.Equal(t, want.Rune(), ch)
	assert.Equal(t, want.TCellColor(), foreground(style))

	wall := fm.Grid().Get(floormap.TilePos{Row: 1, Col: 1})
	ch, style = r.tileAppearance(fm, wall)
	assert.Equal(t, r.tiles.Wall.Rune(), ch)
	assert.Equal(t, r.tiles.Wall.TCellColor(), foreground(style))
}

func TestTileAppearanceDimsPassageTextures(t *testing.T) {
	fm, reg := decoratedRoomMap(t, floormap.RoomNormal)

	r := &Renderer{tiles: gamedata.MustLoadTileset()}
	r.UseTextures(reg)

	passage := fm.Grid().Get(floormap.TilePos{Row: 0, Col: 0})
	ch, style := r.tileAppearance(fm, passage)

	assert.Equal(t, r.tiles.PassageFloor.Rune(), ch)
	assert.Equal(t,
		gamedata.Dim(r.tiles.PassageFloor.TCellColor(), passageDim),
		foreground(style))
}

func TestTileAppearanceFallsBackWithoutRegistry(t *testing.T) {
	fm, _ := decoratedRoomMap(t, floormap.RoomNormal)

	// No registry attached: handles cannot be resolved, so appearance comes
	// from the tile kind and room type directly.
	r := &Renderer{tiles: gamedata.MustLoadTileset()}

	wall := fm.Grid().Get(floormap.TilePos{Row: 1, Col: 1})
	ch, _ := r.tileAppearance(fm, wall)
	assert.Equal(t, r.tiles.Wall.Rune(), ch)

	center := fm.Grid().Get(floormap.TilePos{Row: 2, Col: 2})
	ch, _ = r.tileAppearance(fm, center)
	roomFloor := r.tiles.RoomFloor(floormap.RoomNormal.String())
	assert.Equal(t, roomFloor.Rune(), ch)
}

func TestGlyphForTexture(t *testing.T) {
	r := &Renderer{tiles: gamedata.MustLoadTileset()}

	g, ok := r.glyphForTexture(texture.NameWall)
	require.True(t, ok)
	assert.Equal(t, r.tiles.Wall, g)

	g, ok = r.glyphForTexture(texture.NameRoomFloor + "_challenge")
	require.True(t, ok)
	assert.Equal(t, r.tiles.RoomFloor("challenge"), g)

	_, ok = r.glyphForTexture("no_such_texture")
	assert.False(t, ok)
}

func TestObjectNameSkipsEnemySpawns(t *testing.T) {
	// Spawn points are invisible markers: no tileset key, so they render as
	// the terrain underneath.
	assert.Equal(t, "", objectName(floormap.EnemySpawn{Probability: 0.5}))
	assert.Equal(t, "chest", objectName(floormap.Chest{Contents: floormap.TreasureKey{}}))
}
