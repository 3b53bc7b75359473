package tilepaste

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// GridAtlas describes a texture divided into Cols × Rows equal cells.
// Entries are addressed row-major (entry = row*Cols + col) with row 0 at the
// top of the image. A GridAtlas is immutable once created.
type GridAtlas struct {
	cols int
	rows int
}

// NewGridAtlas returns an atlas of cols × rows cells.
func NewGridAtlas(cols, rows int) (*GridAtlas, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: atlas grid %dx%d", ErrInvalidConfig, cols, rows)
	}
	return &GridAtlas{cols: cols, rows: rows}, nil
}

// AtlasFromImageSize derives the atlas grid from an image of imgW × imgH
// pixels cut into cellW × cellH sprites. The image must divide evenly.
func AtlasFromImageSize(imgW, imgH, cellW, cellH int) (*GridAtlas, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("%w: atlas cell %dx%d", ErrInvalidConfig, cellW, cellH)
	}
	if imgW%cellW != 0 || imgH%cellH != 0 {
		return nil, fmt.Errorf("%w: image %dx%d is not a whole number of %dx%d cells",
			ErrInvalidConfig, imgW, imgH, cellW, cellH)
	}
	return NewGridAtlas(imgW/cellW, imgH/cellH)
}

// Cols returns the number of cells per atlas row.
func (a *GridAtlas) Cols() int { return a.cols }

// Rows returns the number of atlas rows.
func (a *GridAtlas) Rows() int { return a.rows }

// Len returns the total number of entries.
func (a *GridAtlas) Len() int { return a.cols * a.rows }

// CellW returns the width of one cell as a fraction of the texture.
func (a *GridAtlas) CellW() float32 { return 1 / float32(a.cols) }

// CellH returns the height of one cell as a fraction of the texture.
func (a *GridAtlas) CellH() float32 { return 1 / float32(a.rows) }

// Valid reports whether entry addresses a cell of the atlas.
func (a *GridAtlas) Valid(entry int) bool {
	return entry >= 0 && entry < a.Len()
}

func (a *GridAtlas) checkEntry(entry int) error {
	if !a.Valid(entry) {
		return fmt.Errorf("%w: %d (atlas has %d entries)", ErrInvalidAtlasEntry, entry, a.Len())
	}
	return nil
}

// RectFor returns the texture-space rectangle of entry. Entries outside the
// atlas are rejected rather than wrapped.
func (a *GridAtlas) RectFor(entry int) (UVRect, error) {
	if err := a.checkEntry(entry); err != nil {
		return UVRect{}, err
	}
	col := entry % a.cols
	row := entry / a.cols
	cols := float32(a.cols)
	rows := float32(a.rows)
	// Edges are computed from integer boundaries so neighbours share them exactly.
	return UVRect{
		U0: float32(col) / cols,
		V0: float32(a.rows-row-1) / rows,
		U1: float32(col+1) / cols,
		V1: float32(a.rows-row) / rows,
	}, nil
}

// Vertex is one corner of a tile quad: a position in model space and a
// texture coordinate.
type Vertex struct {
	X, Y float32
	U, V float32
}

// Quad holds the six vertices (two triangles) of a tile.
type Quad [6]Vertex

// Unit-quad corners.
const (
	cornerBL = iota
	cornerTL
	cornerBR
	cornerTR
)

// quadPositions is the unit-quad position template, indexed by corner.
var quadPositions = [4][2]float32{
	cornerBL: {-0.5, -0.5},
	cornerTL: {-0.5, 0.5},
	cornerBR: {0.5, -0.5},
	cornerTR: {0.5, 0.5},
}

// quadOrder lists the corners of the two triangles: BL, TL, BR then BR, TL, TR.
var quadOrder = [6]int{cornerBL, cornerTL, cornerBR, cornerBR, cornerTL, cornerTR}

// QuadFor builds the tile quad for entry, texturing it with RectFor(entry).
func (a *GridAtlas) QuadFor(entry int) (Quad, error) {
	r, err := a.RectFor(entry)
	if err != nil {
		return Quad{}, err
	}
	uv := [4][2]float32{
		cornerBL: {r.U0, r.V0},
		cornerTL: {r.U0, r.V1},
		cornerBR: {r.U1, r.V0},
		cornerTR: {r.U1, r.V1},
	}
	var q Quad
	for i, c := range quadOrder {
		q[i] = Vertex{
			X: quadPositions[c][0],
			Y: quadPositions[c][1],
			U: uv[c][0],
			V: uv[c][1],
		}
	}
	return q, nil
}

// QuadBank holds one pre-built quad per atlas entry. Draw calls reference
// quads in the bank by pointer.
type QuadBank struct {
	atlas *GridAtlas
	quads []Quad
}

// NewQuadBank builds the quads for every entry of atlas.
func NewQuadBank(atlas *GridAtlas) *QuadBank {
	b := &QuadBank{
		atlas: atlas,
		quads: make([]Quad, atlas.Len()),
	}
	for i := range b.quads {
		// Every i < Len() is valid.
		b.quads[i], _ = atlas.QuadFor(i)
	}
	return b
}

// Atlas returns the atlas the bank was built from.
func (b *QuadBank) Atlas() *GridAtlas { return b.atlas }

// At returns the shared quad for entry.
func (b *QuadBank) At(entry int) (*Quad, error) {
	if err := b.atlas.checkEntry(entry); err != nil {
		return nil, err
	}
	return &b.quads[entry], nil
}

// AtlasConfig is the JSON description of a grid atlas:
//
//	{"image": "atlas.png", "cols": 4, "rows": 4, "names": {"coin": 14}}
type AtlasConfig struct {
	Image string         `json:"image"`
	Cols  int            `json:"cols"`
	Rows  int            `json:"rows"`
	Names map[string]int `json:"names"`
}

// LoadAtlasConfig parses an atlas description and validates that every
// named entry lies inside the grid.
func LoadAtlasConfig(jsonData []byte) (*AtlasConfig, error) {
	var cfg AtlasConfig
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parse atlas JSON: %v", ErrAssetLoad, err)
	}
	atlas, err := cfg.Atlas()
	if err != nil {
		return nil, err
	}
	for name, entry := range cfg.Names {
		if !atlas.Valid(entry) {
			return nil, fmt.Errorf("%w: name %q -> %d (atlas has %d entries)",
				ErrInvalidAtlasEntry, name, entry, atlas.Len())
		}
	}
	return &cfg, nil
}

// Atlas returns the GridAtlas described by the config.
func (c *AtlasConfig) Atlas() (*GridAtlas, error) {
	return NewGridAtlas(c.Cols, c.Rows)
}

// Entry resolves a named entry.
func (c *AtlasConfig) Entry(name string) (int, error) {
	entry, ok := c.Names[name]
	if !ok {
		if globalDebug {
			log.Printf("tilepaste: atlas has no entry named %q", name)
		}
		return 0, fmt.Errorf("%w: no entry named %q", ErrInvalidAtlasEntry, name)
	}
	return entry, nil
}

// LoadAtlasConfigFile reads an atlas description from path. A relative
// Image is resolved against the directory holding the description.
func LoadAtlasConfigFile(path string) (*AtlasConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetLoad, err)
	}
	cfg, err := LoadAtlasConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Image != "" && !filepath.IsAbs(cfg.Image) {
		cfg.Image = filepath.Join(filepath.Dir(path), cfg.Image)
	}
	if globalDebug {
		log.Printf("tilepaste: atlas %s: %dx%d grid, image %s", path, cfg.Cols, cfg.Rows, cfg.Image)
	}
	return cfg, nil
}
