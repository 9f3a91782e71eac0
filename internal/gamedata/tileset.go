package gamedata

import "github.com/gdamore/tcell/v2"

// TileGlyph pairs a display character with a hex color.
type TileGlyph struct {
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "#")
	Color string `json:"color"` // Hex color code (e.g., "#808080")
}

// Rune returns the glyph as a rune for rendering.
func (g *TileGlyph) Rune() rune {
	if len(g.Glyph) == 0 {
		return '?'
	}
	return []rune(g.Glyph)[0]
}

// TCellColor returns the glyph's color as a tcell.Color.
func (g *TileGlyph) TCellColor() tcell.Color {
	color, err := ParseHexColor(g.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// Tileset defines how each tile kind, room type and object is displayed.
// Loaded from the embedded tileset.json.
type Tileset struct {
	Wall         TileGlyph            `json:"wall"`
	PassageFloor TileGlyph            `json:"passageFloor"`
	RoomFloors   map[string]TileGlyph `json:"roomFloors"` // keyed by room type name
	Objects      map[string]TileGlyph `json:"objects"`    // keyed by object name
	Player       TileGlyph            `json:"player"`
}

// RoomFloor returns the glyph for a room floor of the given type, falling
// back to the passage floor glyph for unknown types.
func (t *Tileset) RoomFloor(roomType string) TileGlyph {
	if g, ok := t.RoomFloors[roomType]; ok {
		return g
	}
	return t.PassageFloor
}

// Object returns the glyph for the named object, if defined.
func (t *Tileset) Object(name string) (TileGlyph, bool) {
	g, ok := t.Objects[name]
	return g, ok
}

// LoadTileset loads the tileset from the embedded tileset.json file.
func LoadTileset() (*Tileset, error) {
	ts, err := Load[Tileset]("tileset.json")
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// MustLoadTileset loads the tileset, panicking on error.
func MustLoadTileset() *Tileset {
	ts, err := LoadTileset()
	if err != nil {
		panic(err)
	}
	return ts
}
