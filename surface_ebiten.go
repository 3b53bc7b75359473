package tilepaste

import (
	"fmt"
	_ "image/png" // atlas images are PNG
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// EbitenTexture wraps an ebiten.Image as a Texture.
type EbitenTexture struct {
	img *ebiten.Image
}

// NewEbitenTexture wraps img.
func NewEbitenTexture(img *ebiten.Image) *EbitenTexture {
	return &EbitenTexture{img: img}
}

// LoadTexture reads an atlas image from path and checks that it divides
// into the atlas grid.
func LoadTexture(path string, atlas *GridAtlas) (*EbitenTexture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetLoad, path, err)
	}
	b := img.Bounds()
	if b.Dx()%atlas.Cols() != 0 || b.Dy()%atlas.Rows() != 0 {
		return nil, fmt.Errorf("%w: %s: %dx%d image does not divide into %dx%d cells",
			ErrAssetLoad, path, b.Dx(), b.Dy(), atlas.Cols(), atlas.Rows())
	}
	if globalDebug {
		log.Printf("tilepaste: loaded %s (%dx%d, %dx%d px cells)",
			path, b.Dx(), b.Dy(), b.Dx()/atlas.Cols(), b.Dy()/atlas.Rows())
	}
	return NewEbitenTexture(img), nil
}

// Size returns the texture size in pixels.
func (t *EbitenTexture) Size() (width, height int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the underlying ebiten.Image.
func (t *EbitenTexture) Image() *ebiten.Image {
	return t.img
}

// quadIndices draws the six quad vertices as two triangles, in order.
var quadIndices = []uint16{0, 1, 2, 3, 4, 5}

// EbitenSurface draws tile quads into an ebiten.Image. Ebiten exposes no
// programmable vertex stage, so the model matrix is applied on the CPU and
// the resulting clip-space corners are mapped to target pixels.
type EbitenSurface struct {
	dst   *ebiten.Image
	verts [6]ebiten.Vertex
	opts  ebiten.DrawTrianglesOptions
}

// NewEbitenSurface returns a surface drawing into dst with nearest-neighbour
// sampling.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	s := &EbitenSurface{dst: dst}
	s.opts.Filter = ebiten.FilterNearest
	return s
}

// Reset retargets the surface, so one surface can be reused across frames.
func (s *EbitenSurface) Reset(dst *ebiten.Image) {
	s.dst = dst
}

// Clear fills the target with c.
func (s *EbitenSurface) Clear(c Color) {
	s.dst.Fill(c.toRGBA())
}

// Draw transforms call.Quad by call.Transform and draws it textured from
// call.Texture, which must be an *EbitenTexture.
func (s *EbitenSurface) Draw(call DrawCall) error {
	tex, ok := call.Texture.(*EbitenTexture)
	if !ok || tex == nil || tex.img == nil {
		return fmt.Errorf("tilepaste: ebiten surface cannot sample %T", call.Texture)
	}
	if call.Quad == nil {
		return fmt.Errorf("tilepaste: draw call without a quad")
	}
	db := s.dst.Bounds()
	dw, dh := float32(db.Dx()), float32(db.Dy())
	sb := tex.img.Bounds()
	sw, sh := float32(sb.Dx()), float32(sb.Dy())
	sx0, sy0 := float32(sb.Min.X), float32(sb.Min.Y)

	for i, v := range call.Quad {
		cx, cy := call.Transform.Apply(v.X, v.Y)
		s.verts[i] = ebiten.Vertex{
			DstX:   float32(db.Min.X) + (cx+1)/2*dw,
			DstY:   float32(db.Min.Y) + (1-cy)/2*dh,
			SrcX:   sx0 + v.U*sw,
			SrcY:   sy0 + (1-v.V)*sh,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	s.dst.DrawTriangles(s.verts[:], quadIndices, tex.img, &s.opts)
	return nil
}

// Present is a no-op: ebiten presents the screen after Draw returns.
func (s *EbitenSurface) Present() error {
	return nil
}
