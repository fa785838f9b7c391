package platformer

import "image/color"

// tileFrameTicks is how many ticks each tile animation frame lasts.
const tileFrameTicks = 32

// SkyColor is the background the viewport is cleared to.
var SkyColor = color.RGBA{R: 92, G: 148, B: 252, A: 255}

// Canvas receives draw calls in viewport pixel coordinates, with (0, 0)
// at the top-left of a ViewportWidth x ViewportHeight area. Implementations
// clip anything outside their surface.
type Canvas interface {
	Fill(c color.RGBA)
	DrawTile(kind TileKind, frame, x, y int)
	DrawActor(sprite Sprite, flipped bool, x, y, w, h int)
}
