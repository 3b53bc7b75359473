package tilepaste

// Viewport is the window of map cells rendered each frame. X and Y are the
// top-left visible cell; Width and Height are visible cell counts.
//
// The origin is always clamped so the window stays inside the map it was
// created for: 0 <= X <= mapW-Width and 0 <= Y <= mapH-Height.
type Viewport struct {
	X, Y          int
	Width, Height int

	mapW, mapH int
}

// NewViewport creates a viewport over m. A window larger than the map is
// shrunk to the map size, and the origin is clamped.
func NewViewport(x, y, width, height int, m *TileMap) Viewport {
	v := Viewport{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		mapW:   m.Width(),
		mapH:   m.Height(),
	}
	v.clamp()
	return v
}

// MaxX returns the largest valid origin X.
func (v *Viewport) MaxX() int { return v.mapW - v.Width }

// MaxY returns the largest valid origin Y.
func (v *Viewport) MaxY() int { return v.mapH - v.Height }

// Pan moves the origin by (dx, dy). Each axis is clamped independently,
// for any magnitude of dx and dy.
func (v *Viewport) Pan(dx, dy int) {
	v.clamp()
	v.X = clampAdd(v.X, dx, 0, max(v.MaxX(), 0))
	v.Y = clampAdd(v.Y, dy, 0, max(v.MaxY(), 0))
}

// clampAdd returns a+d limited to [lo, hi] without overflowing. a must
// already lie in [lo, hi].
func clampAdd(a, d, lo, hi int) int {
	switch {
	case d > 0 && d > hi-a:
		return hi
	case d < 0 && d < lo-a:
		return lo
	}
	return a + d
}

// Up pans one cell toward row 0.
func (v *Viewport) Up() { v.Pan(0, -1) }

// Down pans one cell away from row 0.
func (v *Viewport) Down() { v.Pan(0, 1) }

// Left pans one cell toward column 0.
func (v *Viewport) Left() { v.Pan(-1, 0) }

// Right pans one cell away from column 0.
func (v *Viewport) Right() { v.Pan(1, 0) }

// Contains reports whether the cell (x, y) is inside the window.
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.Width && y >= v.Y && y < v.Y+v.Height
}

// Reveal pans the least distance that brings cell (x, y) into view.
func (v *Viewport) Reveal(x, y int) {
	if v.mapW > 0 && v.mapH > 0 {
		x = max(0, min(x, v.mapW-1))
		y = max(0, min(y, v.mapH-1))
	}
	var dx, dy int
	switch {
	case x < v.X:
		dx = x - v.X
	case x >= v.X+v.Width:
		dx = x - (v.X + v.Width - 1)
	}
	switch {
	case y < v.Y:
		dy = y - v.Y
	case y >= v.Y+v.Height:
		dy = y - (v.Y + v.Height - 1)
	}
	if dx != 0 || dy != 0 {
		v.Pan(dx, dy)
	}
}

// Clamp restores the viewport invariants after its fields were edited
// directly: the size is limited to 1..map size and the origin is clamped.
func (v *Viewport) Clamp() {
	v.clamp()
}

func (v *Viewport) clamp() {
	if v.mapW > 0 && v.mapH > 0 {
		v.Width = min(max(v.Width, 1), v.mapW)
		v.Height = min(max(v.Height, 1), v.mapH)
	}
	v.X = max(0, min(v.X, v.MaxX()))
	v.Y = max(0, min(v.Y, v.MaxY()))
}
