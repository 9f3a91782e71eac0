package floormap

// TileKind classifies what occupies one grid cell.
type TileKind uint8

const (
	// KindEmpty is an unused cell: no object, no meaningful wall state.
	KindEmpty TileKind = iota
	// KindWall is an impassable cell. Room walls carry the room's membership;
	// passage walls carry none.
	KindWall
	// KindFloor is a walkable cell, either part of a room or a passageway.
	KindFloor
)

// String returns the kind's name.
func (k TileKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWall:
		return "wall"
	case KindFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// TileType tags whether a cell belongs to the connective passageways between
// rooms or to a specific room. The zero value is a passageway.
type TileType struct {
	room    RoomID
	hasRoom bool
}

// Passageway returns the membership tag for connective tissue between rooms.
func Passageway() TileType {
	return TileType{}
}

// RoomMember returns the membership tag for a cell belonging to the given room.
func RoomMember(id RoomID) TileType {
	return TileType{room: id, hasRoom: true}
}

// IsPassageway reports whether the cell belongs to no room.
func (t TileType) IsPassageway() bool {
	return !t.hasRoom
}

// Room returns the room the cell belongs to, if any.
func (t TileType) Room() (RoomID, bool) {
	return t.room, t.hasRoom
}

// TextureID is an opaque handle issued by the texture registry. The map
// stores it per tile and never interprets it; lookup and binding belong to
// the renderer. The zero value means no texture has been assigned.
type TextureID uint32

// Valid reports whether the handle refers to a registered texture.
func (id TextureID) Valid() bool {
	return id != 0
}

// Tile is one cell of the grid.
type Tile struct {
	Kind    TileKind
	Type    TileType
	Object  TileObject // nil when the cell holds nothing interactive
	Walls   TileWalls
	Texture TextureID
}

// IsEmpty reports whether the cell is unused.
func (t *Tile) IsEmpty() bool {
	return t.Kind == KindEmpty
}

// IsWall reports whether the cell is a wall.
func (t *Tile) IsWall() bool {
	return t.Kind == KindWall
}

// IsFloor reports whether the cell is walkable floor.
func (t *Tile) IsFloor() bool {
	return t.Kind == KindFloor
}

// IsPassable reports whether the cell can be walked on.
func (t *Tile) IsPassable() bool {
	return t.Kind == KindFloor
}

// IsRoomFloor reports whether the cell is floor belonging to the given room.
// Passage floors and the room's own walls do not count.
func (t *Tile) IsRoomFloor(id RoomID) bool {
	room, ok := t.Type.Room()
	return t.Kind == KindFloor && ok && room == id
}

// HasObject reports whether an interactive object is placed on the cell.
func (t *Tile) HasObject() bool {
	return t.Object != nil
}

// PlaceObject puts an interactive object on the cell, replacing any previous
// one.
func (t *Tile) PlaceObject(obj TileObject) {
	t.Object = obj
}
