package tilepaste

import "errors"

var (
	// ErrOutOfBounds reports a grid access outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("tilepaste: out of bounds")
	// ErrInvalidAtlasEntry reports an atlas entry index outside [0, cols*rows).
	ErrInvalidAtlasEntry = errors.New("tilepaste: invalid atlas entry")
	// ErrAssetLoad reports a texture or config that could not be read or decoded.
	ErrAssetLoad = errors.New("tilepaste: asset load failure")
	// ErrInvalidConfig reports startup parameters that fail validation.
	ErrInvalidConfig = errors.New("tilepaste: invalid config")
)
