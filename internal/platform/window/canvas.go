// Package window hosts the platformer in a desktop window using Ebitengine.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// painter fills axis-aligned rectangles in viewport pixels.
type painter interface {
	FillRect(x, y, w, h float64, c color.Color)
}

// imagePainter paints onto an Ebitengine image by stretching a 1x1 white pixel.
type imagePainter struct {
	dst   *ebiten.Image
	pixel *ebiten.Image
}

func newImagePainter(dst, pixel *ebiten.Image) *imagePainter {
	return &imagePainter{dst: dst, pixel: pixel}
}

// FillRect draws one solid rectangle.
func (p *imagePainter) FillRect(x, y, w, h float64, c color.Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	p.dst.DrawImage(p.pixel, &op)
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// part is a rectangle in fractions of the sprite box.
type part struct {
	x, y, w, h float64
	c          color.RGBA
}

var (
	brick     = rgb(200, 76, 12)
	brickDark = rgb(136, 20, 0)
	mortar    = rgb(0, 0, 0)
	gold      = rgb(252, 188, 60)
	goldDark  = rgb(228, 92, 16)
	goldDim   = rgb(172, 124, 0)
	pipeGreen = rgb(0, 168, 0)
	pipeLight = rgb(128, 208, 16)
	hillGreen = rgb(0, 120, 0)
	stone     = rgb(188, 188, 188)
	stoneDark = rgb(116, 116, 116)
	white     = rgb(252, 252, 252)
	red       = rgb(216, 40, 0)
	skin      = rgb(252, 152, 56)
	overalls  = rgb(32, 56, 236)
)

// questionFrames holds the pulsing face colors of a question block.
var questionFrames = []color.RGBA{gold, goldDark, goldDim}

var tileParts = map[platformer.TileKind][]part{
	platformer.TileGround: {
		{0, 0, 1, 1, brick},
		{0, 0.48, 1, 0.04, brickDark},
		{0.48, 0, 0.04, 0.5, brickDark},
	},
	platformer.TileBreakable: {
		{0, 0, 1, 1, brick},
		{0, 0.24, 1, 0.04, mortar},
		{0, 0.74, 1, 0.04, mortar},
		{0.25, 0, 0.04, 0.25, mortar},
		{0.75, 0.28, 0.04, 0.46, mortar},
	},
	platformer.TileUsed: {
		{0, 0, 1, 1, brickDark},
		{0.08, 0.08, 0.84, 0.84, brick},
	},
	platformer.TilePipeTop: {
		{0, 0, 1, 1, pipeGreen},
		{0.12, 0, 0.12, 1, pipeLight},
		{0, 0.9, 1, 0.1, hillGreen},
	},
	platformer.TilePipeBody: {
		{0.06, 0, 0.88, 1, pipeGreen},
		{0.18, 0, 0.12, 1, pipeLight},
	},
	platformer.TileFlag: {
		{0.46, 0, 0.08, 1, white},
		{0.1, 0.1, 0.36, 0.3, pipeGreen},
	},
	platformer.TileBedrock: {
		{0, 0, 1, 1, stone},
		{0, 0.9, 1, 0.1, stoneDark},
		{0.9, 0, 0.1, 1, stoneDark},
	},
	platformer.TileHill: {
		{0.2, 0.3, 0.6, 0.7, hillGreen},
		{0, 0.6, 1, 0.4, hillGreen},
	},
	platformer.TileSolid: {
		{0, 0, 1, 1, stoneDark},
	},
}

// questionParts builds the question block for one animation frame.
func questionParts(frame int) []part {
	face := questionFrames[frame%len(questionFrames)]
	return []part{
		{0, 0, 1, 1, brickDark},
		{0.06, 0.06, 0.88, 0.88, face},
		{0.38, 0.22, 0.24, 0.1, brickDark},
		{0.56, 0.3, 0.1, 0.2, brickDark},
		{0.44, 0.5, 0.14, 0.1, brickDark},
		{0.44, 0.68, 0.12, 0.1, brickDark},
	}
}

// legs holds the leg pose for each walk frame and the jump.
var legs = map[platformer.Sprite][]part{
	platformer.SpriteWalk0: {{0.1, 0.85, 0.25, 0.15, brickDark}, {0.65, 0.85, 0.25, 0.15, brickDark}},
	platformer.SpriteWalk1: {{0.25, 0.85, 0.25, 0.15, brickDark}, {0.55, 0.85, 0.25, 0.15, brickDark}},
	platformer.SpriteWalk2: {{0.35, 0.85, 0.3, 0.15, brickDark}},
	platformer.SpriteWalk3: {{0.2, 0.85, 0.25, 0.15, brickDark}, {0.6, 0.8, 0.25, 0.12, brickDark}},
	platformer.SpriteJump:  {{0.05, 0.78, 0.25, 0.12, brickDark}, {0.7, 0.88, 0.25, 0.12, brickDark}},
	platformer.SpriteIdle:  {{0.2, 0.85, 0.25, 0.15, brickDark}, {0.55, 0.85, 0.25, 0.15, brickDark}},
}

var actorBody = []part{
	{0.2, 0, 0.6, 0.1, red},          // cap
	{0.2, 0.1, 0.7, 0.05, red},       // brim
	{0.25, 0.15, 0.5, 0.2, skin},     // face
	{0.6, 0.2, 0.2, 0.06, brickDark}, // moustache
	{0.15, 0.35, 0.7, 0.2, red},      // shirt
	{0.2, 0.5, 0.6, 0.35, overalls},
	{0, 0.4, 0.15, 0.15, skin},
	{0.85, 0.4, 0.15, 0.15, skin},
}

var defeatedParts = []part{
	{0.2, 0, 0.6, 0.2, red},
	{0.2, 0.2, 0.6, 0.3, skin},
	{0.3, 0.28, 0.1, 0.08, mortar},
	{0.6, 0.28, 0.1, 0.08, mortar},
	{0.1, 0.5, 0.8, 0.3, red},
	{0.25, 0.75, 0.5, 0.25, overalls},
	{0, 0.45, 0.1, 0.2, skin},
	{0.9, 0.45, 0.1, 0.2, skin},
}

// PixelCanvas draws the simulation as flat-colored rectangles.
type PixelCanvas struct {
	p painter
}

// NewPixelCanvas creates a canvas that paints through p.
func NewPixelCanvas(p painter) *PixelCanvas {
	return &PixelCanvas{p: p}
}

// Fill clears the viewport.
func (pc *PixelCanvas) Fill(c color.RGBA) {
	pc.p.FillRect(0, 0, platformer.ViewportWidth, platformer.ViewportHeight, c)
}

// DrawTile draws one block.
func (pc *PixelCanvas) DrawTile(kind platformer.TileKind, frame, x, y int) {
	parts := tileParts[kind]
	if kind == platformer.TileQuestion {
		parts = questionParts(frame)
	}
	pc.paint(parts, false, x, y, platformer.BlockSize, platformer.BlockSize)
}

// DrawActor draws the player.
func (pc *PixelCanvas) DrawActor(sprite platformer.Sprite, flipped bool, x, y, w, h int) {
	if sprite == platformer.SpriteDefeated {
		pc.paint(defeatedParts, false, x, y, w, h)
		return
	}
	pc.paint(actorBody, flipped, x, y, w, h)
	pc.paint(legs[sprite], flipped, x, y, w, h)
}

func (pc *PixelCanvas) paint(parts []part, flipped bool, x, y, w, h int) {
	for _, pt := range parts {
		px := pt.x
		if flipped {
			px = 1 - pt.x - pt.w
		}
		pc.p.FillRect(
			float64(x)+px*float64(w),
			float64(y)+pt.y*float64(h),
			pt.w*float64(w),
			pt.h*float64(h),
			pt.c,
		)
	}
}
