package tilepaste

// Texture is a GPU image the atlas sprites are sampled from.
type Texture interface {
	Size() (width, height int)
}

// DrawCall is one tile draw: the shared quad for an atlas entry, the tile's
// model matrix and the texture to sample.
type DrawCall struct {
	Quad      *Quad
	Transform Mat4
	Texture   Texture
}

// Surface is the render target the frame loop draws into.
type Surface interface {
	// Clear fills the whole target with c.
	Clear(c Color)
	// Draw binds the call's texture, quad and matrix and draws one tile.
	Draw(call DrawCall) error
	// Present submits the finished frame.
	Present() error
}
