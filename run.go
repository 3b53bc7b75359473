package tilepaste

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Script, when set, feeds scripted key presses in addition to the
	// keyboard.
	Script *Script
	// ScreenshotDir receives PNG captures taken with F12 or by the script.
	// Defaults to "screenshots".
	ScreenshotDir string
}

// ebitenKeys maps the keys the demo reacts to. WASD and the arrows move,
// Escape and Q quit.
var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeyW:          KeyUp,
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyS:          KeyDown,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyA:          KeyLeft,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyD:          KeyRight,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyEscape:     KeyQuit,
	ebiten.KeyQ:          KeyQuit,
}

// Run opens a window and drives game until the window closes, a quit key is
// pressed or a frame fails. It blocks on the calling goroutine.
func Run(game *Game, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)

	r := &runner{
		game:    game,
		script:  cfg.Script,
		overlay: NewScoreOverlay(4, 4, nil),
		surface: NewEbitenSurface(nil),
		shots:   &screenshotter{dir: cfg.ScreenshotDir},
	}
	if r.shots.dir == "" {
		r.shots.dir = "screenshots"
	}
	if cfg.ShowFPS {
		r.fps = newFPSWidget()
	}
	if globalDebug {
		log.Printf("tilepaste: run %q %dx%d, screenshots in %s", cfg.Title, cfg.Width, cfg.Height, r.shots.dir)
	}
	err := ebiten.RunGame(r)
	if errors.Is(err, ebiten.Termination) {
		if globalDebug {
			log.Printf("tilepaste: stopped, score %d", game.Score())
		}
		return nil
	}
	return err
}

// runner adapts a Game to ebiten.Game. Update collects the tick's key
// presses; Draw runs one Game.Frame over them, so the buffer is drained
// every frame. A close request stops the run on the following Update even
// when ebiten skipped the Draw in between.
type runner struct {
	game    *Game
	script  *Script
	overlay *ScoreOverlay
	fps     *fpsWidget
	surface *EbitenSurface
	shots   *screenshotter

	keys    []ebiten.Key
	pending []Event
	closing bool // a CloseEvent has been queued
	quit    bool
	err     error
}

func (r *runner) Update() error {
	if err := r.status(); err != nil {
		return err
	}
	r.keys = inpututil.AppendJustPressedKeys(r.keys[:0])
	r.collect(r.keys, ebiten.IsWindowBeingClosed())

	dt := 1.0 / float64(ebiten.TPS())
	r.overlay.Update(float32(dt), r.game.Score())
	if r.fps != nil {
		r.fps.update(dt)
	}
	return nil
}

// status returns the error that ends the run, if any: a failed frame, a
// quit seen by Frame, or a close queued on an earlier tick.
func (r *runner) status() error {
	switch {
	case r.err != nil:
		return r.err
	case r.quit, r.closing:
		return ebiten.Termination
	}
	return nil
}

// collect turns the tick's pressed keys, script steps and close request
// into pending events for the next Frame.
func (r *runner) collect(keys []ebiten.Key, closeRequested bool) {
	for _, k := range keys {
		if k == ebiten.KeyF12 {
			r.shots.request("manual")
			continue
		}
		if key, ok := ebitenKeys[k]; ok {
			r.pending = append(r.pending, KeyPress(key))
		}
	}
	if r.script != nil {
		r.pending = r.script.Next(r.pending)
		for _, label := range r.script.Screenshots() {
			r.shots.request(label)
		}
	}
	if closeRequested && !r.closing {
		if globalDebug {
			log.Printf("tilepaste: window close requested")
		}
		r.pending = append(r.pending, CloseEvent())
		r.closing = true
	}
}

func (r *runner) Draw(screen *ebiten.Image) {
	if r.quit || r.err != nil {
		return
	}
	r.surface.Reset(screen)
	quit, err := r.game.Frame(r.surface, r.pending)
	r.pending = r.pending[:0]
	if err != nil {
		// ebiten.Game.Draw cannot fail; surface it from the next Update.
		r.err = err
		return
	}
	r.quit = quit

	r.overlay.Draw(screen)
	if r.fps != nil {
		r.fps.draw(screen)
	}
	r.shots.flush(screen)
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideHeight > 0 {
		aspect := float32(outsideWidth) / float32(outsideHeight)
		if globalDebug && aspect != r.game.Aspect {
			log.Printf("tilepaste: layout %dx%d", outsideWidth, outsideHeight)
		}
		r.game.Aspect = aspect
	}
	return outsideWidth, outsideHeight
}
