package tilepaste

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	scorePopScale    = 1.6
	scorePopDuration = 0.35 // seconds
)

// ScoreOverlay prints the score at a fixed screen position. Each time the
// score changes the text pops up in size and eases back.
type ScoreOverlay struct {
	X, Y int

	score int
	scale float32
	pop   *gween.Tween
	font  *Font
	text  string
}

// NewScoreOverlay creates an overlay drawn at (x, y) in screen pixels. A nil
// font selects DefaultFont when the overlay is first drawn.
func NewScoreOverlay(x, y int, font *Font) *ScoreOverlay {
	return &ScoreOverlay{X: x, Y: y, scale: 1, font: font, text: scoreText(0)}
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Scale returns the current text scale.
func (o *ScoreOverlay) Scale() float32 {
	return o.scale
}

// Update advances the pop tween by dt seconds and restarts it when score
// differs from the last value seen.
func (o *ScoreOverlay) Update(dt float32, score int) {
	if score != o.score {
		o.score = score
		o.text = scoreText(score)
		o.pop = gween.New(scorePopScale, 1, scorePopDuration, ease.OutBack)
		o.scale = scorePopScale
	}
	if o.pop == nil {
		return
	}
	val, done := o.pop.Update(dt)
	o.scale = val
	if done {
		o.scale = 1
		o.pop = nil
	}
}

// Draw renders the score onto screen.
func (o *ScoreOverlay) Draw(screen *ebiten.Image) {
	if o.font == nil {
		o.font = DefaultFont()
	}
	x, y := float64(o.X), float64(o.Y)
	o.font.Draw(screen, o.text, x+1, y+1, float64(o.scale), color.Black)
	o.font.Draw(screen, o.text, x, y, float64(o.scale), color.RGBA{255, 215, 0, 255})
}
