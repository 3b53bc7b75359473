package tilepaste

// Projector places tile quads in clip space. The zero value fits the whole
// viewport inside [-1, 1] on both axes.
type Projector struct {
	// TileScale is the clip-space edge length of a tile on the vertical
	// axis. Zero selects the largest scale that fits the viewport.
	TileScale float32
}

// TileSize returns the clip-space width and height of one tile. The width
// is divided by aspect so tiles stay square on non-square windows.
func (p Projector) TileSize(vp Viewport, aspect float32) (sx, sy float32) {
	if aspect <= 0 {
		aspect = 1
	}
	s := p.TileScale
	if s <= 0 {
		s = min(2*aspect/float32(max(vp.Width, 1)), 2/float32(max(vp.Height, 1)))
	}
	return s / aspect, s
}

// TransformFor returns the model matrix for the unit quad of cell
// (cellX, cellY) under vp. The viewport is centred on the origin of clip
// space; grid rows grow downward while clip-space y grows upward.
func (p Projector) TransformFor(cellX, cellY int, vp Viewport, aspect float32) Mat4 {
	sx, sy := p.TileSize(vp, aspect)
	rx := float32(cellX - vp.X)
	ry := float32(cellY - vp.Y)
	cx := float32(vp.Width-1) / 2
	cy := float32(vp.Height-1) / 2
	tx := (rx - cx) * sx
	ty := (cy - ry) * sy
	return Translate(tx, ty, 0).Mul(Scale(sx, sy, 1))
}
