package floormap

import "github.com/google/uuid"

// TileObject is an interactive object placed on a tile. The set of
// implementations is closed; consumers switch exhaustively on the concrete
// type.
type TileObject interface {
	tileObject()
}

// ToNextLevel transports whoever steps on it down to the next floor. Gate is
// shared with the ToPrevLevel tile it connects to on that floor; the map only
// stores the pairing, it never resolves or validates it.
type ToNextLevel struct {
	Gate uuid.UUID
}

// ToPrevLevel transports whoever steps on it up to the previous floor. Gate
// is shared with the matching ToNextLevel tile on that floor.
type ToPrevLevel struct {
	Gate uuid.UUID
}

// EnemySpawn marks a point where an enemy may spawn. Probability is in
// [0.0, 1.0]: 1 means an enemy definitely spawns, 0 means it never does.
type EnemySpawn struct {
	Probability float64
}

// Chest holds a single item.
type Chest struct {
	Contents Item
}

func (ToNextLevel) tileObject() {}
func (ToPrevLevel) tileObject() {}
func (EnemySpawn) tileObject()  {}
func (Chest) tileObject()       {}

// Item is the content of a chest. Like TileObject, the set is closed.
type Item interface {
	item()
}

// TreasureKey opens the treasure chamber.
type TreasureKey struct{}

// RoomKey opens a locked room.
type RoomKey struct{}

// Potion restores health proportional to its strength.
type Potion struct {
	Strength int
}

func (TreasureKey) item() {}
func (RoomKey) item()     {}
func (Potion) item()      {}
