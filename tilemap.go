package tilepaste

import (
	"fmt"
	"iter"
)

// Tile is the dynamic state of one map cell.
type Tile struct {
	// Entry is the atlas entry drawn for this cell.
	Entry int
}

// Cell is a tile together with its grid position, as produced by
// TileMap.Visible.
type Cell struct {
	X, Y int
	Tile Tile
}

// TileMap is a fixed-size grid of tiles stored row-major.
type TileMap struct {
	width  int
	height int
	tiles  []Tile // len = width * height

	// atlas, when set, bounds the entries Set accepts.
	atlas *GridAtlas
}

// MaxMapCells bounds width*height of a TileMap.
const MaxMapCells = 1 << 26

// NewTileMap allocates a width × height map with every cell on entry 0.
func NewTileMap(width, height int) (*TileMap, error) {
	if width <= 0 || height <= 0 || width > MaxMapCells/height {
		return nil, fmt.Errorf("%w: map size %dx%d", ErrInvalidConfig, width, height)
	}
	return &TileMap{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}, nil
}

// NewTileMapFor allocates a map whose entries are validated against atlas,
// filling every cell with fill.
func NewTileMapFor(atlas *GridAtlas, width, height, fill int) (*TileMap, error) {
	m, err := NewTileMap(width, height)
	if err != nil {
		return nil, err
	}
	m.atlas = atlas
	if err := m.Fill(fill); err != nil {
		return nil, err
	}
	return m, nil
}

// Width returns the map width in cells.
func (m *TileMap) Width() int { return m.width }

// Height returns the map height in cells.
func (m *TileMap) Height() int { return m.height }

// InBounds reports whether (x, y) is a cell of the map.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *TileMap) checkBounds(x, y int) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d map", ErrOutOfBounds, x, y, m.width, m.height)
	}
	return nil
}

func (m *TileMap) checkEntry(entry int) error {
	if m.atlas != nil {
		return m.atlas.checkEntry(entry)
	}
	if entry < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAtlasEntry, entry)
	}
	return nil
}

// Get returns the tile at (x, y).
func (m *TileMap) Get(x, y int) (Tile, error) {
	if err := m.checkBounds(x, y); err != nil {
		return Tile{}, err
	}
	return m.tiles[y*m.width+x], nil
}

// Set overwrites the atlas entry of the tile at (x, y).
func (m *TileMap) Set(x, y, entry int) error {
	if err := m.checkBounds(x, y); err != nil {
		return err
	}
	if err := m.checkEntry(entry); err != nil {
		return err
	}
	m.tiles[y*m.width+x].Entry = entry
	return nil
}

// Fill sets every cell to entry.
func (m *TileMap) Fill(entry int) error {
	if err := m.checkEntry(entry); err != nil {
		return err
	}
	for i := range m.tiles {
		m.tiles[i].Entry = entry
	}
	return nil
}

// Visible returns the cells covered by vp, clipped to the map, row by row.
// The sequence reads the map lazily and may be ranged over any number of
// times.
func (m *TileMap) Visible(vp Viewport) iter.Seq[Cell] {
	x0, y0 := max(vp.X, 0), max(vp.Y, 0)
	x1, y1 := min(vp.X+vp.Width, m.width), min(vp.Y+vp.Height, m.height)
	return func(yield func(Cell) bool) {
		for y := y0; y < y1; y++ {
			row := y * m.width
			for x := x0; x < x1; x++ {
				if !yield(Cell{X: x, Y: y, Tile: m.tiles[row+x]}) {
					return
				}
			}
		}
	}
}
