// Package game provides the main game loop and state management.
package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/delvemap/internal/floormap"
	"github.com/samdwyer/delvemap/internal/gamedata"
	"github.com/samdwyer/delvemap/internal/markers"
	"github.com/samdwyer/delvemap/internal/telemetry"
	"github.com/samdwyer/delvemap/internal/ui"
)

// playerID is the marker-store identity of the player entity.
const playerID markers.EntityID = 1

// gateCooldownTicks locks movement briefly after taking a gate so the player
// does not bounce straight back through it.
const gateCooldownTicks = 3

// Game holds the entire game state.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	cfg       Config
	levels    *Levels
	level     int
	positions map[markers.EntityID]floormap.TilePos
	tags      *markers.Store
	running   bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	tiles, err := gamedata.LoadTileset()
	if err != nil {
		screen.Close()
		return nil, err
	}

	return &Game{
		screen:    screen,
		renderer:  ui.NewRenderer(screen, tiles),
		cfg:       cfg.withDefaults(),
		positions: make(map[markers.EntityID]floormap.TilePos),
		tags:      markers.NewStore(),
		running:   true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	ctx, initSpan := tracer.Start(ctx, "game.init")

	cfg := g.cfg
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	levels, err := BuildLevels(ctx, cfg)
	if err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}
	g.levels = levels
	g.renderer.UseTextures(levels.Textures)
	g.positions[playerID] = levels.StartPosition()
	g.tags.GrantKeyboard(playerID)
	g.tags.FocusCamera(playerID)

	initSpan.SetAttributes(
		attribute.Int64("game.seed", cfg.Seed),
		attribute.Int("game.depth", len(levels.Floors)),
		attribute.Int("game.top_floor_rooms", levels.Floors[0].NumRooms()),
	)
	initSpan.End()

	// Main game loop
	for g.running {
		g.renderer.Render(g.levels.Floors[g.level], g.cameraFocus())
		g.handleInput(ctx)
		g.tags.Tick()
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(-1, 0)
	case tcell.KeyDown:
		g.tryMove(1, 0)
	case tcell.KeyLeft:
		g.tryMove(0, -1)
	case tcell.KeyRight:
		g.tryMove(0, 1)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		}
	}
}

// tryMove attempts to move the player by the given tile delta, following any
// gate on the destination tile. The player only moves while it holds the
// keyboard tag and is not movement-locked.
func (g *Game) tryMove(dRow, dCol int) {
	if !g.tags.HasKeyboard(playerID) || g.tags.Waiting(playerID) {
		return
	}

	fm := g.levels.Floors[g.level]
	cur := g.positions[playerID]
	next := floormap.TilePos{Row: cur.Row + dRow, Col: cur.Col + dCol}
	if !fm.Grid().InBounds(next) || !fm.Grid().Get(next).IsPassable() {
		return
	}
	g.positions[playerID] = next

	if level, dst, ok := g.levels.Travel(g.level, next); ok {
		g.level = level
		g.positions[playerID] = dst
		g.tags.SetWait(playerID, gateCooldownTicks)
	}
}

// cameraFocus returns the tile the viewport centers on: the position of the
// entity holding the camera tag, falling back to the player when no tracked
// entity holds it.
func (g *Game) cameraFocus() floormap.TilePos {
	if id, ok := g.tags.CameraFocus(); ok {
		if pos, ok := g.positions[id]; ok {
			return pos
		}
	}
	return g.positions[playerID]
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
