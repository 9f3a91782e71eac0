// Package texture issues and resolves the opaque texture handles stored on
// tiles. The floor map never interprets a handle; this registry is the only
// place one can be turned back into a texture name.
package texture

import (
	"fmt"

	"github.com/samdwyer/delvemap/internal/floormap"
)

// Texture names used by the decorator. The renderer looks them up in the
// tileset to pick glyphs and colors.
const (
	NameWall         = "wall"
	NamePassageFloor = "floor_passage"
	NameRoomFloor    = "floor_room"
)

// Registry maps texture names to stable opaque handles. Handles are issued
// starting at 1; the zero TextureID always means "no texture".
type Registry struct {
	names []string
	ids   map[string]floormap.TextureID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]floormap.TextureID)}
}

// Register returns the handle for the given name, issuing a new one on first
// use.
func (r *Registry) Register(name string) floormap.TextureID {
	if id, ok := r.ids[name]; ok {
		return id
	}
	r.names = append(r.names, name)
	id := floormap.TextureID(len(r.names))
	r.ids[name] = id
	return id
}

// Lookup returns the handle previously issued for the name, if any.
func (r *Registry) Lookup(name string) (floormap.TextureID, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// Name resolves a handle back to the name it was issued for.
func (r *Registry) Name(id floormap.TextureID) (string, bool) {
	if !id.Valid() || int(id) > len(r.names) {
		return "", false
	}
	return r.names[int(id)-1], true
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	return len(r.names)
}

// Decorator stamps texture handles onto an unsealed map's tiles based on
// tile kind and room type.
type Decorator struct {
	reg *Registry
}

// NewDecorator creates a decorator issuing handles from the given registry.
func NewDecorator(reg *Registry) *Decorator {
	return &Decorator{reg: reg}
}

// Apply assigns a texture handle to every non-empty tile. Room floors get a
// texture keyed by their room's type so the renderer can tint per room.
func (d *Decorator) Apply(fm *floormap.FloorMap) {
	grid := fm.GridMut()
	for pos := range grid.TilePositionsWithin(floormap.TilePos{}, grid.Dimensions()) {
		tile := grid.Get(pos)
		switch tile.Kind {
		case floormap.KindWall:
			tile.Texture = d.reg.Register(NameWall)
		case floormap.KindFloor:
			if id, ok := tile.Type.Room(); ok {
				name := fmt.Sprintf("%s_%s", NameRoomFloor, fm.Room(id).Type())
				tile.Texture = d.reg.Register(name)
			} else {
				tile.Texture = d.reg.Register(NamePassageFloor)
			}
		}
	}
}
