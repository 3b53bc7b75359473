package tilepaste

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"
)

// Player is the cursor the user moves across the map.
type Player struct {
	X, Y int
	// Entry is the atlas entry drawn over the player's cell.
	Entry int
}

// CollectEvent is emitted once per collectible tile the player picks up.
type CollectEvent struct {
	X, Y int
	// Score is the score after this collect.
	Score int
}

// EventSink is the interface for optional game-event forwarding.
// When set on a Game, every collect is passed to the sink.
type EventSink interface {
	EmitCollect(event CollectEvent)
}

// Game is the whole mutable state of the demo. It is owned by the single
// goroutine running the frame loop and is never shared.
type Game struct {
	Map       *TileMap
	View      Viewport
	Player    Player
	Roles     TileRoles
	Projector Projector
	Bank      *QuadBank
	Texture   Texture

	// Aspect is the window width divided by its height. Runners update it
	// when the window is laid out.
	Aspect float32
	// ClearColor fills the surface before tiles are drawn.
	ClearColor Color

	score int
	sink  EventSink
	debug bool
}

// NewGame builds the map, viewport and player described by cfg. Every
// entry and position is validated here, so a Game built by NewGame cannot
// hit an out-of-range access while running.
func NewGame(cfg Config, tex Texture) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	atlas, err := NewGridAtlas(cfg.AtlasCols, cfg.AtlasRows)
	if err != nil {
		return nil, err
	}
	m, err := NewTileMapFor(atlas, cfg.MapWidth, cfg.MapHeight, cfg.FillEntry)
	if err != nil {
		return nil, err
	}
	if err := seedCollectibles(m, cfg); err != nil {
		return nil, err
	}

	g := &Game{
		Map:        m,
		View:       NewViewport(0, 0, cfg.ViewWidth, cfg.ViewHeight, m),
		Player:     Player{X: cfg.PlayerStart.X, Y: cfg.PlayerStart.Y, Entry: cfg.Roles.Player},
		Roles:      cfg.Roles,
		Projector:  Projector{TileScale: cfg.TileScale},
		Bank:       NewQuadBank(atlas),
		Texture:    tex,
		Aspect:     1,
		ClearColor: ColorBlue,
	}
	g.View.Reveal(g.Player.X, g.Player.Y)
	return g, nil
}

// seedCollectibles marks the configured cells and ScatterCount random cells
// as collectible.
func seedCollectibles(m *TileMap, cfg Config) error {
	for _, p := range cfg.Collectibles {
		if err := m.Set(p.X, p.Y, cfg.Roles.Collectible); err != nil {
			return err
		}
	}
	if cfg.ScatterCount == 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	for range cfg.ScatterCount {
		x, y := rng.IntN(m.Width()), rng.IntN(m.Height())
		if err := m.Set(x, y, cfg.Roles.Collectible); err != nil {
			return err
		}
	}
	return nil
}

// Score returns the number of tiles collected so far.
func (g *Game) Score() int {
	return g.score
}

// SetEventSink sets the optional collect-event forwarder.
func (g *Game) SetEventSink(sink EventSink) {
	g.sink = sink
}

// Frame runs one iteration of the loop: draw the visible tiles and the
// player, present, check the player's tile for a collect, then apply the
// frame's events in arrival order. quit is true once a close or quit event
// is seen; events after it are ignored.
func (g *Game) Frame(s Surface, events []Event) (quit bool, err error) {
	var stats frameStats
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	if err := g.draw(s, &stats); err != nil {
		return false, err
	}
	if err := s.Present(); err != nil {
		return false, fmt.Errorf("tilepaste: present: %w", err)
	}

	if g.debug {
		stats.drawTime = time.Since(t0)
		t0 = time.Now()
	}

	if _, err := g.CheckCollect(); err != nil {
		return false, err
	}
	quit = g.HandleEvents(events)

	if g.debug {
		stats.inputTime = time.Since(t0)
		stats.events = len(events)
		g.debugLog(stats)
	}
	return quit, nil
}

// Draw re-clamps the viewport, clears s and issues one draw call per
// visible tile, followed by the player sprite when the player is inside the
// viewport.
func (g *Game) Draw(s Surface) error {
	return g.draw(s, &frameStats{})
}

func (g *Game) draw(s Surface, stats *frameStats) error {
	g.View.Clamp()
	s.Clear(g.ClearColor)
	for c := range g.Map.Visible(g.View) {
		stats.visibleTiles++
		if err := g.drawEntry(s, c.X, c.Y, c.Tile.Entry); err != nil {
			return err
		}
		stats.drawCalls++
	}
	if g.View.Contains(g.Player.X, g.Player.Y) {
		if err := g.drawEntry(s, g.Player.X, g.Player.Y, g.Player.Entry); err != nil {
			return err
		}
		stats.drawCalls++
	}
	return nil
}

func (g *Game) drawEntry(s Surface, x, y, entry int) error {
	quad, err := g.Bank.At(entry)
	if err != nil {
		return fmt.Errorf("tilepaste: draw (%d, %d): %w", x, y, err)
	}
	err = s.Draw(DrawCall{
		Quad:      quad,
		Transform: g.Projector.TransformFor(x, y, g.View, g.Aspect),
		Texture:   g.Texture,
	})
	if err != nil {
		return fmt.Errorf("tilepaste: draw (%d, %d): %w", x, y, err)
	}
	return nil
}

// CheckCollect turns the player's tile from collectible to collected and
// increments the score. It reports whether a collect happened; checking a
// tile that was already collected does nothing.
func (g *Game) CheckCollect() (bool, error) {
	x, y := g.Player.X, g.Player.Y
	tile, err := g.Map.Get(x, y)
	if err != nil {
		return false, fmt.Errorf("tilepaste: collect: %w", err)
	}
	if tile.Entry != g.Roles.Collectible {
		return false, nil
	}
	if err := g.Map.Set(x, y, g.Roles.Collected); err != nil {
		return false, fmt.Errorf("tilepaste: collect: %w", err)
	}
	g.score++

	if g.debug {
		log.Printf("tilepaste: collected (%d, %d), score %d", x, y, g.score)
	}
	if g.sink != nil {
		g.sink.EmitCollect(CollectEvent{X: x, Y: y, Score: g.score})
	}
	return true, nil
}

// HandleEvents applies events in order. Each directional key press moves
// the player exactly one cell. It returns true on a close or quit event
// without applying anything after it.
func (g *Game) HandleEvents(events []Event) (quit bool) {
	for _, e := range events {
		switch e.Type {
		case EventClose:
			return true
		case EventKeyPress:
			if e.Key == KeyQuit {
				return true
			}
			if dx, dy, ok := e.Key.Delta(); ok {
				g.Move(dx, dy)
			}
		}
	}
	return false
}

// Move steps the player by (dx, dy), clamped to the map, pans the viewport
// by the same amount and then pans again if needed to keep the player
// visible.
func (g *Game) Move(dx, dy int) {
	g.Player.X = max(0, min(g.Player.X+dx, g.Map.Width()-1))
	g.Player.Y = max(0, min(g.Player.Y+dy, g.Map.Height()-1))
	g.View.Pan(dx, dy)
	g.View.Reveal(g.Player.X, g.Player.Y)
}
