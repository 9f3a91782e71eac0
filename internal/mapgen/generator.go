// Package mapgen carves rooms, corridors and objects into floor maps. It is
// the only writer a floor map ever has: everything here runs during the
// generation phase, before the map is sealed.
package mapgen

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvemap/internal/floormap"
	"github.com/samdwyer/delvemap/internal/telemetry"
)

const (
	// Default floor dimensions, in tiles.
	DefaultRows = 24
	DefaultCols = 80

	// DefaultTileSize is the pixel edge length of one tile.
	DefaultTileSize = 16

	// BSP parameters
	minRoomSize = 6  // Minimum room dimension, wall ring included
	maxRoomSize = 13 // Maximum room dimension
	minLeafSize = 8  // Minimum BSP leaf size before stopping split
)

// FloorConfig describes one floor to generate.
type FloorConfig struct {
	Size     floormap.GridSize
	TileSize int
	// UpGate places a gate back to the previous floor; DownGate one to the
	// next. The topmost floor has no up gate, the deepest no down gate.
	UpGate   bool
	DownGate bool
}

// Generator carves a dungeon layout into an unsealed floor map using BSP
// splitting. The injected rng makes generation reproducible.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator driven by the given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds one floor: rooms in BSP leaves, corridors between sibling
// subtrees, walls around everything walkable, room classifications and tile
// objects. The returned map is left unsealed so collaborators can still link
// gates and stamp textures; the caller seals it when decoration is done.
func (g *Generator) Generate(ctx context.Context, cfg FloorConfig) *floormap.FloorMap {
	tracer := telemetry.Tracer("mapgen")
	_, span := tracer.Start(ctx, "mapgen.generate")
	defer span.End()

	startTime := time.Now()

	fm := floormap.New(cfg.Size, cfg.TileSize)

	// Start BSP with the whole floor minus a one-tile margin as root.
	root := &bspNode{
		row:  1,
		col:  1,
		rows: cfg.Size.Rows - 2,
		cols: cfg.Size.Cols - 2,
	}

	g.splitNode(root)
	g.createRooms(fm, root)
	g.connectRooms(fm, root)
	g.outlineWalls(fm)
	g.assignRoomTypes(fm)
	g.placeObjects(fm, cfg)

	span.SetAttributes(
		attribute.Int("floor.rows", cfg.Size.Rows),
		attribute.Int("floor.cols", cfg.Size.Cols),
		attribute.Int("floor.room_count", fm.NumRooms()),
		attribute.String("floor.checksum", fmt.Sprintf("%016x", fm.Checksum())),
		attribute.Int64("floor.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return fm
}

// bspNode is a node in the BSP tree, in tile coordinates.
type bspNode struct {
	row, col    int
	rows, cols  int
	left, right *bspNode
	room        *floormap.RoomID
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node.
func (g *Generator) splitNode(node *bspNode) {
	// Stop if too small to split
	if node.cols < minLeafSize*2 && node.rows < minLeafSize*2 {
		return
	}

	// Determine split direction: prefer cutting the longer axis.
	var splitHorizontally bool
	switch {
	case node.cols > node.rows && node.cols >= minLeafSize*2:
		splitHorizontally = false // Split vertically (left/right)
	case node.rows >= minLeafSize*2:
		splitHorizontally = true // Split horizontally (top/bottom)
	case node.cols >= minLeafSize*2:
		splitHorizontally = false
	default:
		return // Can't split
	}

	var limit int
	if splitHorizontally {
		limit = node.rows - minLeafSize
	} else {
		limit = node.cols - minLeafSize
	}
	if limit <= minLeafSize {
		return
	}
	splitPos := minLeafSize + g.rng.Intn(limit-minLeafSize+1)

	if splitHorizontally {
		node.left = &bspNode{row: node.row, col: node.col, rows: splitPos, cols: node.cols}
		node.right = &bspNode{row: node.row + splitPos, col: node.col, rows: node.rows - splitPos, cols: node.cols}
	} else {
		node.left = &bspNode{row: node.row, col: node.col, rows: node.rows, cols: splitPos}
		node.right = &bspNode{row: node.row, col: node.col + splitPos, rows: node.rows, cols: node.cols - splitPos}
	}

	g.splitNode(node.left)
	g.splitNode(node.right)
}

// createRooms adds a room to every leaf of the BSP tree and carves it.
func (g *Generator) createRooms(fm *floormap.FloorMap, node *bspNode) {
	if node == nil {
		return
	}

	if !node.isLeaf() {
		g.createRooms(fm, node.left)
		g.createRooms(fm, node.right)
		return
	}

	if node.rows < minRoomSize+2 || node.cols < minRoomSize+2 {
		return // Leaf too cramped; skip
	}

	roomRows := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, node.rows-minRoomSize+1))
	roomCols := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, node.cols-minRoomSize+1))

	// Ensure the room fits within its leaf with a margin.
	roomRows = min(roomRows, node.rows-2)
	roomCols = min(roomCols, node.cols-2)
	if roomRows < minRoomSize || roomCols < minRoomSize {
		return // Skip if too small
	}

	roomRow := node.row + 1 + g.rng.Intn(node.rows-roomRows-1)
	roomCol := node.col + 1 + g.rng.Intn(node.cols-roomCols-1)

	boundary := floormap.NewTileRect(
		floormap.TilePos{Row: roomRow, Col: roomCol},
		floormap.GridSize{Rows: roomRows, Cols: roomCols},
	)
	id := fm.AddRoom(boundary)
	node.room = &id

	g.carveRoom(fm, id, boundary)
}

// getRoom returns a room from a subtree (any room will do).
func (g *Generator) getRoom(fm *floormap.FloorMap, node *bspNode) *floormap.RoomID {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if id := g.getRoom(fm, node.left); id != nil {
		return id
	}
	return g.getRoom(fm, node.right)
}

// connectRooms carves corridors between the two subtrees of every internal
// node, which leaves the whole floor connected.
func (g *Generator) connectRooms(fm *floormap.FloorMap, node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	g.connectRooms(fm, node.left)
	g.connectRooms(fm, node.right)

	leftRoom := g.getRoom(fm, node.left)
	rightRoom := g.getRoom(fm, node.right)
	if leftRoom != nil && rightRoom != nil {
		g.carveCorridor(fm,
			fm.Room(*leftRoom).Boundary().Center(),
			fm.Room(*rightRoom).Boundary().Center())
	}
}
