package game

import (
	"context"
	"math/rand"

	"github.com/samdwyer/delvemap/internal/floormap"
	"github.com/samdwyer/delvemap/internal/mapgen"
	"github.com/samdwyer/delvemap/internal/texture"
)

const (
	mapgenDefaultRows     = mapgen.DefaultRows
	mapgenDefaultCols     = mapgen.DefaultCols
	mapgenDefaultTileSize = mapgen.DefaultTileSize
)

// Levels is the generated stack of floors, top first, plus the texture
// registry their tiles reference.
type Levels struct {
	Floors   []*floormap.FloorMap
	Textures *texture.Registry
}

// BuildLevels runs the whole generation phase: carve every floor, link the
// gates between adjacent floors, stamp textures and seal the maps. After it
// returns, the floors are read-only.
func BuildLevels(ctx context.Context, cfg Config) (*Levels, error) {
	cfg = cfg.withDefaults()
	rng := rand.New(rand.NewSource(cfg.Seed))

	floors, err := mapgen.GenerateTower(ctx, rng, mapgen.TowerConfig{
		Depth:    cfg.Depth,
		Size:     floormap.GridSize{Rows: cfg.Rows, Cols: cfg.Cols},
		TileSize: cfg.TileSize,
	})
	if err != nil {
		return nil, err
	}

	registry := texture.NewRegistry()
	decorator := texture.NewDecorator(registry)
	for _, fm := range floors {
		decorator.Apply(fm)
		fm.Seal()
	}

	return &Levels{Floors: floors, Textures: registry}, nil
}

// StartPosition returns where the player enters the dungeon: the center of
// the top floor's player start room.
func (l *Levels) StartPosition() floormap.TilePos {
	top := l.Floors[0]
	for _, room := range top.Rooms() {
		if room.Type() == floormap.RoomPlayerStart {
			return room.Boundary().Center()
		}
	}
	// No rooms were generated; fall back to the middle of the grid.
	size := top.Grid().Dimensions()
	return floormap.TilePos{Row: size.Rows / 2, Col: size.Cols / 2}
}

// Travel follows the gate on the given tile, if there is one, and returns
// the destination level and tile.
func (l *Levels) Travel(level int, pos floormap.TilePos) (int, floormap.TilePos, bool) {
	switch obj := l.Floors[level].Grid().Get(pos).Object.(type) {
	case floormap.ToNextLevel:
		if level+1 < len(l.Floors) {
			if dst, ok := mapgen.FindGate(l.Floors[level+1], obj.Gate); ok {
				return level + 1, dst, true
			}
		}
	case floormap.ToPrevLevel:
		if level > 0 {
			if dst, ok := mapgen.FindGate(l.Floors[level-1], obj.Gate); ok {
				return level - 1, dst, true
			}
		}
	}
	return level, pos, false
}
