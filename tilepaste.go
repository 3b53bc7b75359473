package tilepaste

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlue is the clear color of the demo window.
var ColorBlue = Color{0, 0, 1, 1}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Point is a grid coordinate. X grows to the right, Y grows downward.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// UVRect is a sub-rectangle of a texture in normalized coordinates.
// The texture-space origin is the bottom-left corner of the image with V
// increasing upward, so (U0, V0) is the bottom-left corner of the rectangle
// and (U1, V1) the top-right.
type UVRect struct {
	U0, V0, U1, V1 float32
}

// Width returns the horizontal extent of the rectangle.
func (r UVRect) Width() float32 { return r.U1 - r.U0 }

// Height returns the vertical extent of the rectangle.
func (r UVRect) Height() float32 { return r.V1 - r.V0 }

// Contains reports whether the point (u, v) lies inside the rectangle.
// Points on the edge are considered inside.
func (r UVRect) Contains(u, v float32) bool {
	return u >= r.U0 && u <= r.U1 && v >= r.V0 && v <= r.V1
}

// Overlaps reports whether r and other share interior area.
// Rectangles that only share an edge do not overlap.
func (r UVRect) Overlaps(other UVRect) bool {
	return r.U0 < other.U1 && other.U0 < r.U1 &&
		r.V0 < other.V1 && other.V0 < r.V1
}
