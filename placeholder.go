package tilepaste

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
)

// placeholderBorder is the outline drawn around every placeholder cell.
var placeholderBorder = color.RGBA{40, 40, 45, 255}

// placeholderPalette colors ordinary entries; role entries override it.
var placeholderPalette = []color.RGBA{
	{80, 140, 70, 255},   // grass
	{70, 120, 60, 255},   // dark grass
	{150, 130, 90, 255},  // dirt
	{120, 120, 130, 255}, // stone
	{60, 90, 160, 255},   // water
	{139, 90, 60, 255},   // wood
	{100, 100, 110, 255}, // gravel
	{170, 160, 120, 255}, // sand
}

// PlaceholderAtlasImage paints a stand-in atlas of cellSize-pixel cells:
// a solid, outlined color per entry, with the collectible, collected and
// player entries in gold, dark gray and bright green.
func PlaceholderAtlasImage(atlas *GridAtlas, roles TileRoles, cellSize int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, atlas.Cols()*cellSize, atlas.Rows()*cellSize))
	for entry := range atlas.Len() {
		fill := placeholderPalette[entry%len(placeholderPalette)]
		switch entry {
		case roles.Collectible:
			fill = color.RGBA{255, 215, 0, 255}
		case roles.Collected:
			fill = color.RGBA{55, 55, 60, 255}
		case roles.Player:
			fill = color.RGBA{0, 255, 100, 255}
		}
		col, row := entry%atlas.Cols(), entry/atlas.Cols()
		cell := image.Rect(col*cellSize, row*cellSize, (col+1)*cellSize, (row+1)*cellSize)
		draw.Draw(img, cell, &image.Uniform{placeholderBorder}, image.Point{}, draw.Src)
		draw.Draw(img, cell.Inset(1), &image.Uniform{fill}, image.Point{}, draw.Src)
	}
	return img
}

// NewPlaceholderTexture uploads PlaceholderAtlasImage as a texture.
func NewPlaceholderTexture(atlas *GridAtlas, roles TileRoles, cellSize int) *EbitenTexture {
	return NewEbitenTexture(ebiten.NewImageFromImage(PlaceholderAtlasImage(atlas, roles, cellSize)))
}
