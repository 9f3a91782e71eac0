package mapgen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/delvemap/internal/floormap"
)

// LinkLevels stitches two adjacent floors together by writing one shared gate
// ID into each down gate on the upper floor and its counterpart up gate on
// the lower floor, pairing them in row-major order. Both maps must still be
// unsealed. The floor maps only store the pairing; resolving a gate back to a
// tile is the consumer's job (see FindGate).
func LinkLevels(upper, lower *floormap.FloorMap) error {
	downs := gatePositions(upper, false)
	ups := gatePositions(lower, true)

	if len(downs) != len(ups) {
		return fmt.Errorf("mapgen: cannot link levels: %d down gates vs %d up gates",
			len(downs), len(ups))
	}

	for i := range downs {
		shared := uuid.New()
		upper.GridMut().Get(downs[i]).PlaceObject(floormap.ToNextLevel{Gate: shared})
		lower.GridMut().Get(ups[i]).PlaceObject(floormap.ToPrevLevel{Gate: shared})
	}
	return nil
}

// FindGate returns the position of the gate with the given ID on the map.
func FindGate(fm *floormap.FloorMap, gate uuid.UUID) (floormap.TilePos, bool) {
	grid := fm.Grid()
	for pos := range grid.TilePositionsWithin(floormap.TilePos{}, grid.Dimensions()) {
		switch obj := grid.Get(pos).Object.(type) {
		case floormap.ToNextLevel:
			if obj.Gate == gate {
				return pos, true
			}
		case floormap.ToPrevLevel:
			if obj.Gate == gate {
				return pos, true
			}
		}
	}
	return floormap.TilePos{}, false
}

// gatePositions collects the tiles holding gates of one direction, in
// row-major order.
func gatePositions(fm *floormap.FloorMap, up bool) []floormap.TilePos {
	var positions []floormap.TilePos
	grid := fm.Grid()
	for pos := range grid.TilePositionsWithin(floormap.TilePos{}, grid.Dimensions()) {
		switch grid.Get(pos).Object.(type) {
		case floormap.ToPrevLevel:
			if up {
				positions = append(positions, pos)
			}
		case floormap.ToNextLevel:
			if !up {
				positions = append(positions, pos)
			}
		}
	}
	return positions
}

// TowerConfig describes a stack of connected floors.
type TowerConfig struct {
	Depth    int
	Size     floormap.GridSize
	TileSize int
}

// GenerateTower generates cfg.Depth floors and links each pair of adjacent
// ones. The floors come back unsealed, top first; the caller seals them once
// any remaining decoration (texture stamping) is done.
func GenerateTower(ctx context.Context, rng *rand.Rand, cfg TowerConfig) ([]*floormap.FloorMap, error) {
	if cfg.Depth < 1 {
		return nil, fmt.Errorf("mapgen: tower depth must be at least 1, got %d", cfg.Depth)
	}

	g := NewGenerator(rng)
	floors := make([]*floormap.FloorMap, 0, cfg.Depth)
	for i := 0; i < cfg.Depth; i++ {
		floors = append(floors, g.Generate(ctx, FloorConfig{
			Size:     cfg.Size,
			TileSize: cfg.TileSize,
			UpGate:   i > 0,
			DownGate: i < cfg.Depth-1,
		}))
	}

	for i := 0; i+1 < len(floors); i++ {
		if err := LinkLevels(floors[i], floors[i+1]); err != nil {
			return nil, err
		}
	}
	return floors, nil
}
