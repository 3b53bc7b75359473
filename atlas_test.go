package tilepaste

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewGridAtlas_Invalid(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 2}} {
		if _, err := NewGridAtlas(dims[0], dims[1]); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("NewGridAtlas(%d, %d) err = %v, want ErrInvalidConfig", dims[0], dims[1], err)
		}
	}
}

func TestAtlasFromImageSize(t *testing.T) {
	a, err := AtlasFromImageSize(128, 64, 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	if a.Cols() != 4 || a.Rows() != 2 || a.Len() != 8 {
		t.Errorf("grid = %dx%d (%d entries), want 4x2 (8)", a.Cols(), a.Rows(), a.Len())
	}
	if _, err := AtlasFromImageSize(100, 64, 32, 32); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("uneven image err = %v, want ErrInvalidConfig", err)
	}
}

func TestRectFor_RowMajor(t *testing.T) {
	a, _ := NewGridAtlas(2, 2)
	tests := []struct {
		entry int
		want  UVRect
	}{
		// Row 0 is the top of the image, which is the top half of texture space.
		{0, UVRect{0, 0.5, 0.5, 1}},
		{1, UVRect{0.5, 0.5, 1, 1}},
		{2, UVRect{0, 0, 0.5, 0.5}},
		{3, UVRect{0.5, 0, 1, 0.5}},
	}
	for _, tt := range tests {
		got, err := a.RectFor(tt.entry)
		if err != nil {
			t.Fatalf("RectFor(%d): %v", tt.entry, err)
		}
		if got != tt.want {
			t.Errorf("RectFor(%d) = %+v, want %+v", tt.entry, got, tt.want)
		}
	}
}

func TestRectFor_InvalidEntry(t *testing.T) {
	a, _ := NewGridAtlas(4, 4)
	for _, entry := range []int{-1, 16, 17, 1000} {
		if _, err := a.RectFor(entry); !errors.Is(err, ErrInvalidAtlasEntry) {
			t.Errorf("RectFor(%d) err = %v, want ErrInvalidAtlasEntry", entry, err)
		}
	}
}

func TestRectFor_TilesUnitSquare(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 2}, {4, 4}, {3, 5}, {7, 2}} {
		a, _ := NewGridAtlas(dims[0], dims[1])
		rects := make([]UVRect, a.Len())
		var area float64
		for e := range rects {
			r, err := a.RectFor(e)
			if err != nil {
				t.Fatal(err)
			}
			if r.U0 < 0 || r.V0 < 0 || r.U1 > 1 || r.V1 > 1 || r.Width() <= 0 || r.Height() <= 0 {
				t.Errorf("%dx%d entry %d: %+v not inside unit square", dims[0], dims[1], e, r)
			}
			rects[e] = r
			area += float64(r.Width()) * float64(r.Height())
		}
		for i := range rects {
			for j := i + 1; j < len(rects); j++ {
				if rects[i].Overlaps(rects[j]) {
					t.Errorf("%dx%d entries %d and %d overlap", dims[0], dims[1], i, j)
				}
			}
		}
		if !approxEqual(area, 1, 1e-5) {
			t.Errorf("%dx%d total area = %v, want 1", dims[0], dims[1], area)
		}
		// Sample the centre of every grid cell: exactly one rect contains it.
		for cx := range dims[0] {
			for cy := range dims[1] {
				u := (float32(cx) + 0.5) / float32(dims[0])
				v := (float32(cy) + 0.5) / float32(dims[1])
				n := 0
				for _, r := range rects {
					if r.Contains(u, v) {
						n++
					}
				}
				if n != 1 {
					t.Errorf("%dx%d point (%v, %v) covered %d times", dims[0], dims[1], u, v, n)
				}
			}
		}
	}
}

func TestQuadFor_VertexOrder(t *testing.T) {
	a, _ := NewGridAtlas(2, 2)
	q, err := a.QuadFor(3)
	if err != nil {
		t.Fatal(err)
	}
	r, _ := a.RectFor(3)
	want := Quad{
		{X: -0.5, Y: -0.5, U: r.U0, V: r.V0}, // bottom-left
		{X: -0.5, Y: 0.5, U: r.U0, V: r.V1},  // top-left
		{X: 0.5, Y: -0.5, U: r.U1, V: r.V0},  // bottom-right
		{X: 0.5, Y: -0.5, U: r.U1, V: r.V0},  // bottom-right
		{X: -0.5, Y: 0.5, U: r.U0, V: r.V1},  // top-left
		{X: 0.5, Y: 0.5, U: r.U1, V: r.V1},   // top-right
	}
	if q != want {
		t.Errorf("QuadFor(3) = %+v\nwant %+v", q, want)
	}
}

func TestQuadFor_ConsistentWinding(t *testing.T) {
	a, _ := NewGridAtlas(4, 4)
	q, _ := a.QuadFor(0)
	for tri := 0; tri < 2; tri++ {
		p0, p1, p2 := q[tri*3], q[tri*3+1], q[tri*3+2]
		cross := (p1.X-p0.X)*(p2.Y-p0.Y) - (p1.Y-p0.Y)*(p2.X-p0.X)
		// Both triangles share one winding.
		if cross >= 0 {
			t.Errorf("triangle %d cross = %v, want < 0", tri, cross)
		}
	}
}

func TestQuadBank_SharedQuads(t *testing.T) {
	a, _ := NewGridAtlas(4, 4)
	b := NewQuadBank(a)
	q1, err := b.At(5)
	if err != nil {
		t.Fatal(err)
	}
	q2, _ := b.At(5)
	if q1 != q2 {
		t.Error("At returned different pointers for the same entry")
	}
	want, _ := a.QuadFor(5)
	if *q1 != want {
		t.Errorf("bank quad = %+v, want %+v", *q1, want)
	}
	if _, err := b.At(16); !errors.Is(err, ErrInvalidAtlasEntry) {
		t.Errorf("At(16) err = %v, want ErrInvalidAtlasEntry", err)
	}
	if b.Atlas() != a {
		t.Error("Atlas() does not return the source atlas")
	}
}

// --- AtlasConfig ---

const atlasJSON = `{
  "image": "assets/atlas.png",
  "cols": 4,
  "rows": 4,
  "names": {"grass": 0, "collected": 12, "collectible": 14, "player": 15}
}`

func TestLoadAtlasConfig(t *testing.T) {
	cfg, err := LoadAtlasConfig([]byte(atlasJSON))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Image != "assets/atlas.png" || cfg.Cols != 4 || cfg.Rows != 4 {
		t.Errorf("config = %+v", cfg)
	}
	e, err := cfg.Entry("collectible")
	if err != nil || e != 14 {
		t.Errorf("Entry(collectible) = %d, %v; want 14", e, err)
	}
	if _, err := cfg.Entry("lava"); !errors.Is(err, ErrInvalidAtlasEntry) {
		t.Errorf("Entry(lava) err = %v, want ErrInvalidAtlasEntry", err)
	}
	a, err := cfg.Atlas()
	if err != nil || a.Len() != 16 {
		t.Errorf("Atlas() = %v, %v", a, err)
	}
}

func TestLoadAtlasConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want error
	}{
		{"malformed", `{"cols": `, ErrAssetLoad},
		{"zero grid", `{"cols": 0, "rows": 4}`, ErrInvalidConfig},
		{"name out of range", `{"cols": 2, "rows": 2, "names": {"coin": 4}}`, ErrInvalidAtlasEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAtlasConfig([]byte(tt.json))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func writeAtlasJSON(t *testing.T, dir, image string) string {
	t.Helper()
	path := filepath.Join(dir, "atlas.json")
	data := []byte(`{"image": "` + filepath.ToSlash(image) + `", "cols": 4, "rows": 4, "names": {"coin": 14}}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAtlasConfigFile_ResolvesImageNextToDescription(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadAtlasConfigFile(writeAtlasJSON(t, dir, "tiles/atlas.png"))
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "tiles", "atlas.png"); cfg.Image != want {
		t.Errorf("Image = %q, want %q", cfg.Image, want)
	}
	if e, err := cfg.Entry("coin"); err != nil || e != 14 {
		t.Errorf("Entry(coin) = %d, %v", e, err)
	}
}

func TestLoadAtlasConfigFile_KeepsAbsoluteImage(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "atlas.png")
	cfg, err := LoadAtlasConfigFile(writeAtlasJSON(t, dir, abs))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Image != abs {
		t.Errorf("Image = %q, want %q", cfg.Image, abs)
	}
}

func TestLoadAtlasConfigFile_Errors(t *testing.T) {
	if _, err := LoadAtlasConfigFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, ErrAssetLoad) {
		t.Errorf("missing file err = %v, want ErrAssetLoad", err)
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"cols": 0, "rows": 4}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAtlasConfigFile(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("bad grid err = %v, want ErrInvalidConfig", err)
	}
}
