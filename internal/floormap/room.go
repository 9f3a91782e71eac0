package floormap

import "strconv"

// RoomID identifies a room within its floor map. It is the room's index in
// the map's append-only room list, so an issued ID stays valid for the life
// of the map and is never reused.
type RoomID int

// String returns the ID as a decimal string.
func (id RoomID) String() string {
	return strconv.Itoa(int(id))
}

// RoomType classifies a room's gameplay behavior and rendering tint. Purely
// descriptive at this layer.
type RoomType uint8

const (
	// RoomNormal is an ordinary room.
	RoomNormal RoomType = iota
	// RoomChallenge holds tougher encounters.
	RoomChallenge
	// RoomPlayerStart is where the player enters the floor.
	RoomPlayerStart
	// RoomTreasureChamber holds the floor's treasure.
	RoomTreasureChamber
)

// String returns the room type's name.
func (t RoomType) String() string {
	switch t {
	case RoomNormal:
		return "normal"
	case RoomChallenge:
		return "challenge"
	case RoomPlayerStart:
		return "player_start"
	case RoomTreasureChamber:
		return "treasure_chamber"
	default:
		return "unknown"
	}
}

// Room is a rectangular region of the floor. Its boundary is a bounding box
// and may include wall or passage cells; FloorMap.RoomExactArea counts the
// room's true floor footprint. The boundary is fixed at creation.
type Room struct {
	boundary TileRect
	roomType RoomType
}

// NewRoom creates a room with the given boundary. The type defaults to
// RoomNormal until the generation phase sets it.
func NewRoom(boundary TileRect) Room {
	return Room{boundary: boundary}
}

// Boundary returns the room's declared bounding rectangle.
func (r Room) Boundary() TileRect {
	return r.boundary
}

// Type returns the room's classification.
func (r Room) Type() RoomType {
	return r.roomType
}

// SetType reclassifies the room. For use by the generation phase only; once
// the owning map is sealed, rooms are immutable.
func (r *Room) SetType(t RoomType) {
	r.roomType = t
}
