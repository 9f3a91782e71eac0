package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delvemap/internal/floormap"
	"github.com/samdwyer/delvemap/internal/gamedata"
	"github.com/samdwyer/delvemap/internal/texture"
)

// passageDim is how far passage floors are dimmed relative to room floors.
const passageDim = 0.6

// Renderer draws a floor map to the screen using the loaded tileset. It only
// consumes the map's read-only query surface.
type Renderer struct {
	screen   *Screen
	tiles    *gamedata.Tileset
	textures *texture.Registry
}

// NewRenderer creates a renderer for the given screen and tileset.
func NewRenderer(screen *Screen, tiles *gamedata.Tileset) *Renderer {
	return &Renderer{screen: screen, tiles: tiles}
}

// UseTextures makes the registry the source of tile appearance: the handles
// stamped on decorated maps are resolved back to names through it and the
// names select the tileset glyphs. Maps without stamped handles fall back to
// tile kind and room type.
func (r *Renderer) UseTextures(reg *texture.Registry) {
	r.textures = reg
}

// Render draws the slice of the floor visible around the focused tile, one
// terminal cell per tile, with the player drawn on top.
func (r *Renderer) Render(fm *floormap.FloorMap, focus floormap.TilePos) {
	r.screen.Clear()

	width, height := r.screen.Size()
	tileSize := fm.TileSize()

	// Viewport in world pixels, centered on the focused tile. TilesWithin
	// clamps to the map, so the viewport may hang off every edge.
	origin := focus.TopLeft(tileSize)
	view := floormap.Rect{
		X: origin.X - (width/2)*tileSize,
		Y: origin.Y - (height/2)*tileSize,
		W: width * tileSize,
		H: height * tileSize,
	}

	for vt := range fm.TilesWithin(view) {
		x := (vt.Origin.X - view.X) / tileSize
		y := (vt.Origin.Y - view.Y) / tileSize
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		ch, style := r.tileAppearance(fm, vt.Tile)
		r.screen.SetContent(x, y, ch, style)
	}

	// The focused tile lands in the middle of the screen by construction.
	playerStyle := tcell.StyleDefault.
		Foreground(r.tiles.Player.TCellColor()).
		Bold(true)
	r.screen.SetContent(width/2, height/2, r.tiles.Player.Rune(), playerStyle)

	r.screen.Show()
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}

// tileAppearance picks the rune and style for one tile. Objects draw over
// the terrain; terrain comes from the tile's stamped texture handle when a
// registry is attached, otherwise from the tile kind directly.
func (r *Renderer) tileAppearance(fm *floormap.FloorMap, tile *floormap.Tile) (rune, tcell.Style) {
	if tile.HasObject() {
		if name := objectName(tile.Object); name != "" {
			if g, ok := r.tiles.Object(name); ok {
				return g.Rune(), tcell.StyleDefault.Foreground(g.TCellColor())
			}
		}
	}

	if r.textures != nil && tile.Texture.Valid() {
		if name, ok := r.textures.Name(tile.Texture); ok {
			if g, ok := r.glyphForTexture(name); ok {
				fg := g.TCellColor()
				if name == texture.NamePassageFloor {
					fg = gamedata.Dim(fg, passageDim)
				}
				return g.Rune(), tcell.StyleDefault.Foreground(fg)
			}
		}
	}

	switch tile.Kind {
	case floormap.KindWall:
		return r.tiles.Wall.Rune(), tcell.StyleDefault.Foreground(r.tiles.Wall.TCellColor())
	case floormap.KindFloor:
		if id, ok := tile.Type.Room(); ok {
			g := r.tiles.RoomFloor(fm.Room(id).Type().String())
			return g.Rune(), tcell.StyleDefault.Foreground(g.TCellColor())
		}
		g := r.tiles.PassageFloor
		return g.Rune(), tcell.StyleDefault.Foreground(gamedata.Dim(g.TCellColor(), passageDim))
	default:
		return ' ', tcell.StyleDefault
	}
}

// glyphForTexture maps a texture name issued by the decorator to its tileset
// glyph. Room floor textures carry the room type as a suffix.
func (r *Renderer) glyphForTexture(name string) (gamedata.TileGlyph, bool) {
	switch name {
	case texture.NameWall:
		return r.tiles.Wall, true
	case texture.NamePassageFloor:
		return r.tiles.PassageFloor, true
	}
	if roomType, ok := strings.CutPrefix(name, texture.NameRoomFloor+"_"); ok {
		return r.tiles.RoomFloor(roomType), true
	}
	return gamedata.TileGlyph{}, false
}

// objectName maps a tile object to its tileset key. Enemy spawns are
// invisible markers and have no key.
func objectName(obj floormap.TileObject) string {
	switch obj.(type) {
	case floormap.ToNextLevel:
		return "to_next_level"
	case floormap.ToPrevLevel:
		return "to_prev_level"
	case floormap.Chest:
		return "chest"
	default:
		return ""
	}
}
