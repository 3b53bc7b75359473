package tilepaste

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func mustTileMap(t *testing.T, w, h int) *TileMap {
	t.Helper()
	m, err := NewTileMap(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNewTileMap_DefaultEntry(t *testing.T) {
	m := mustTileMap(t, 4, 3)
	if m.Width() != 4 || m.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", m.Width(), m.Height())
	}
	for y := range 3 {
		for x := range 4 {
			tile, err := m.Get(x, y)
			if err != nil || tile.Entry != 0 {
				t.Errorf("Get(%d, %d) = %+v, %v; want entry 0", x, y, tile, err)
			}
		}
	}
}

func TestNewTileMap_InvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"negative height", 5, -1},
		{"product overflows", math.MaxInt / 2, math.MaxInt / 2},
		{"product wraps to zero", math.MaxInt/4 + 1, 8},
		{"too many cells", MaxMapCells, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewTileMap(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("NewTileMap(%d, %d) = %v, want ErrInvalidConfig", tt.w, tt.h, err)
			}
			if m != nil {
				t.Error("map returned alongside error")
			}
		})
	}
}

func TestTileMap_SetGetRoundTrip(t *testing.T) {
	m := mustTileMap(t, 5, 4)
	for y := range 4 {
		for x := range 5 {
			v := y*5 + x + 1
			if err := m.Set(x, y, v); err != nil {
				t.Fatalf("Set(%d, %d): %v", x, y, err)
			}
		}
	}
	for y := range 4 {
		for x := range 5 {
			tile, err := m.Get(x, y)
			if err != nil {
				t.Fatalf("Get(%d, %d): %v", x, y, err)
			}
			if want := y*5 + x + 1; tile.Entry != want {
				t.Errorf("Get(%d, %d).Entry = %d, want %d", x, y, tile.Entry, want)
			}
		}
	}
}

func TestTileMap_OutOfBounds(t *testing.T) {
	m := mustTileMap(t, 5, 4)
	for _, p := range []Point{{-1, 0}, {0, -1}, {5, 0}, {0, 4}, {5, 4}, {-10, 100}} {
		tile, err := m.Get(p.X, p.Y)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d, %d) err = %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
		if tile != (Tile{}) {
			t.Errorf("Get(%d, %d) returned %+v alongside the error", p.X, p.Y, tile)
		}
		if err := m.Set(p.X, p.Y, 1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d, %d) err = %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
		if m.InBounds(p.X, p.Y) {
			t.Errorf("InBounds(%d, %d) = true", p.X, p.Y)
		}
	}
}

func TestTileMapFor_ValidatesEntries(t *testing.T) {
	a, _ := NewGridAtlas(4, 4)
	if _, err := NewTileMapFor(a, 3, 3, 16); !errors.Is(err, ErrInvalidAtlasEntry) {
		t.Errorf("fill 16 err = %v, want ErrInvalidAtlasEntry", err)
	}
	m, err := NewTileMapFor(a, 3, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if tile, _ := m.Get(2, 2); tile.Entry != 2 {
		t.Errorf("fill entry = %d, want 2", tile.Entry)
	}
	if err := m.Set(1, 1, 16); !errors.Is(err, ErrInvalidAtlasEntry) {
		t.Errorf("Set entry 16 err = %v, want ErrInvalidAtlasEntry", err)
	}
	if tile, _ := m.Get(1, 1); tile.Entry != 2 {
		t.Errorf("rejected Set changed the tile to %d", tile.Entry)
	}
	if err := m.Set(1, 1, -1); !errors.Is(err, ErrInvalidAtlasEntry) {
		t.Errorf("Set entry -1 err = %v, want ErrInvalidAtlasEntry", err)
	}
}

func cellPoints(m *TileMap, vp Viewport) []Point {
	var pts []Point
	for c := range m.Visible(vp) {
		pts = append(pts, Point{c.X, c.Y})
	}
	return pts
}

func TestVisible_CoversViewportRowByRow(t *testing.T) {
	m := mustTileMap(t, 5, 5)
	_ = m.Set(2, 1, 7)
	vp := NewViewport(1, 1, 3, 2, m)

	want := []Point{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {2, 2}, {3, 2}}
	if got := cellPoints(m, vp); !slices.Equal(got, want) {
		t.Errorf("Visible = %v, want %v", got, want)
	}
	for c := range m.Visible(vp) {
		tile, _ := m.Get(c.X, c.Y)
		if c.Tile != tile {
			t.Errorf("cell (%d, %d) tile %+v, map has %+v", c.X, c.Y, c.Tile, tile)
		}
	}
}

func TestVisible_Restartable(t *testing.T) {
	m := mustTileMap(t, 6, 6)
	vp := NewViewport(2, 3, 3, 3, m)
	seq := m.Visible(vp)

	var first, second []Cell
	for c := range seq {
		first = append(first, c)
	}
	for c := range seq {
		second = append(second, c)
	}
	if len(first) != 9 || !slices.Equal(first, second) {
		t.Errorf("second pass %v differs from first %v", second, first)
	}
}

func TestVisible_ReadsLazily(t *testing.T) {
	m := mustTileMap(t, 3, 3)
	vp := NewViewport(0, 0, 3, 3, m)
	seq := m.Visible(vp)
	_ = m.Set(0, 0, 9) // after the sequence was created
	for c := range seq {
		if c.Tile.Entry != 9 {
			t.Errorf("first cell entry = %d, want 9", c.Tile.Entry)
		}
		break
	}
}

func TestVisible_ClipsToMap(t *testing.T) {
	m := mustTileMap(t, 4, 4)
	// A hand-built viewport that hangs off the map is clipped.
	vp := Viewport{X: 2, Y: -1, Width: 4, Height: 3}
	want := []Point{{2, 0}, {3, 0}, {2, 1}, {3, 1}}
	if got := cellPoints(m, vp); !slices.Equal(got, want) {
		t.Errorf("Visible = %v, want %v", got, want)
	}
}
