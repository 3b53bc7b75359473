package tilepaste

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomonobold"
)

// Font wraps Ebitengine's text/v2 for the HUD text.
type Font struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: font size %v", ErrInvalidConfig, size)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("%w: parse font: %v", ErrAssetLoad, err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// defaultFont is the bundled HUD face, parsed on first use.
var defaultFont *Font

// DefaultFont returns the bundled Go Mono Bold face at 16px.
func DefaultFont() *Font {
	if defaultFont == nil {
		f, err := LoadFont(gomonobold.TTF, 16)
		if err != nil {
			// The bundled font is known-good.
			panic(err)
		}
		defaultFont = f
	}
	return defaultFont
}

// MeasureString returns the width and height of s when drawn unscaled.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Draw renders s onto dst with its top-left corner at (x, y), scaled by
// scale around that corner.
func (f *Font) Draw(dst *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.LineSpacing = f.lh
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, f.face, op)
}
