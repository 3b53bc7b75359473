package tilepaste

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and draw-call metrics.
// Only populated when the game's debug mode is on.
type frameStats struct {
	drawTime     time.Duration
	inputTime    time.Duration
	visibleTiles int
	drawCalls    int
	events       int
}

// globalDebug mirrors the most recently set Game debug flag so code without
// a Game pointer (atlas lookups, texture loading, the runner, screenshots)
// can check it cheaply.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing and draw-call stats and collect events are logged to stderr.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
	globalDebug = enabled
}

// debugLog prints frame stats to stderr.
func (g *Game) debugLog(stats frameStats) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[tilepaste] draw: %v | input: %v | total: %v\n",
		stats.drawTime, stats.inputTime, stats.drawTime+stats.inputTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[tilepaste] visible: %d | draw calls: %d | events: %d | view: (%d, %d) | player: (%d, %d)\n",
		stats.visibleTiles, stats.drawCalls, stats.events,
		g.View.X, g.View.Y, g.Player.X, g.Player.Y)
}
