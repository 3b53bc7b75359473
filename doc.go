// Package tilepaste renders a large tile map through a scrolling viewport
// using [Ebitengine], with a player cursor that collects tiles.
//
// Every tile is drawn with the same unit quad geometry. A [GridAtlas] maps
// an integer entry to a sub-rectangle of one texture; a [QuadBank] builds
// one [Quad] per entry up front so draw calls share them by pointer. Per
// tile, a [Projector] produces the model matrix that places the quad in
// clip space relative to the [Viewport].
//
// # Quick start
//
// The simplest way to get going is [Run], which opens a window and drives
// the frame loop:
//
//	cfg := tilepaste.DefaultConfig()
//	atlas, _ := tilepaste.NewGridAtlas(cfg.AtlasCols, cfg.AtlasRows)
//	tex := tilepaste.NewPlaceholderTexture(atlas, cfg.Roles, 32)
//	game, err := tilepaste.NewGame(cfg, tex)
//	if err != nil {
//		log.Fatal(err)
//	}
//	tilepaste.Run(game, tilepaste.RunConfig{Title: "TilePaste", Width: 640, Height: 480})
//
// For full control, implement a [Surface] and call [Game.Frame] yourself
// with the frame's [Event] values. A frame draws the visible tiles and the
// player, presents, collects the player's tile if it is collectible, and
// then applies the events in order.
//
// # Coordinates
//
// Map cells are addressed (x, y) with y growing downward. Texture space has
// its origin at the bottom-left with V growing upward, while atlas row 0 is
// the top row of the image. Clip space spans [-1, 1] with y up.
//
// # Extras
//
// The runner draws a score overlay that pops on each collect (via
// [gween]) and an optional FPS counter. Collect events can be forwarded to
// an ECS world through the [Donburi] adapter in tilepaste/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tilepaste
