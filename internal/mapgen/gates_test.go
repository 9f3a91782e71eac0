package mapgen

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/delvemap/internal/floormap"
)

func TestGenerateTowerLinksGates(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	floors, err := GenerateTower(context.Background(), rng, TowerConfig{
		Depth:    3,
		Size:     floormap.GridSize{Rows: DefaultRows, Cols: DefaultCols},
		TileSize: DefaultTileSize,
	})
	if err != nil {
		t.Fatalf("GenerateTower failed: %v", err)
	}
	if len(floors) != 3 {
		t.Fatalf("Expected 3 floors, got %d", len(floors))
	}

	for i := 0; i+1 < len(floors); i++ {
		upper, lower := floors[i], floors[i+1]

		downs := gatePositions(upper, false)
		if len(downs) != 1 {
			t.Fatalf("Floor %d: expected one down gate, got %d", i, len(downs))
		}

		down := upper.Grid().Get(downs[0]).Object.(floormap.ToNextLevel)

		// The matching up gate on the floor below shares the gate ID.
		pos, ok := FindGate(lower, down.Gate)
		if !ok {
			t.Fatalf("Floor %d: down gate %v has no counterpart below", i, down.Gate)
		}
		up, ok := lower.Grid().Get(pos).Object.(floormap.ToPrevLevel)
		if !ok {
			t.Fatalf("Floor %d: counterpart at (%d,%d) is not an up gate", i, pos.Row, pos.Col)
		}
		if up.Gate != down.Gate {
			t.Errorf("Floor %d: gate IDs differ: %v vs %v", i, down.Gate, up.Gate)
		}
	}

	// Top floor has no up gate, deepest floor no down gate.
	if n := len(gatePositions(floors[0], true)); n != 0 {
		t.Errorf("Top floor should have no up gates, got %d", n)
	}
	if n := len(gatePositions(floors[2], false)); n != 0 {
		t.Errorf("Deepest floor should have no down gates, got %d", n)
	}
}

func TestLinkLevelsMismatch(t *testing.T) {
	// A floor without a down gate cannot be linked to one expecting an up
	// gate pairing.
	ctx := context.Background()
	size := floormap.GridSize{Rows: DefaultRows, Cols: DefaultCols}

	g := NewGenerator(rand.New(rand.NewSource(5)))
	upper := g.Generate(ctx, FloorConfig{Size: size, TileSize: DefaultTileSize, DownGate: true})
	lower := g.Generate(ctx, FloorConfig{Size: size, TileSize: DefaultTileSize}) // no up gate

	if err := LinkLevels(upper, lower); err == nil {
		t.Fatal("Expected LinkLevels to report a gate count mismatch")
	}
}

func TestGenerateTowerRejectsBadDepth(t *testing.T) {
	_, err := GenerateTower(context.Background(), rand.New(rand.NewSource(1)), TowerConfig{
		Depth:    0,
		Size:     floormap.GridSize{Rows: DefaultRows, Cols: DefaultCols},
		TileSize: DefaultTileSize,
	})
	if err == nil {
		t.Fatal("Expected an error for depth 0")
	}
}
