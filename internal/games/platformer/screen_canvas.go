package platformer

import (
	"image/color"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// look is a character-art pattern stretched over a sprite's cells.
type look struct {
	rows []string
	fg   []core.Color // Per animation frame for tiles, per row for the actor
	bg   core.Color   // ColorDefault keeps whatever is underneath
}

var tileLooks = map[TileKind]look{
	TileGround:    {rows: []string{"▀▄▀▄", "▄▀▄▀"}, fg: []core.Color{core.ColorOrange}, bg: core.ColorBrown},
	TileBreakable: {rows: []string{"┬┴┬┴", "┴┬┴┬"}, fg: []core.Color{core.ColorBlack}, bg: core.ColorOrange},
	TileQuestion: {
		rows: []string{"╭??╮", "╰──╯"},
		fg:   []core.Color{core.ColorBrightYellow, core.ColorYellow, core.ColorBrightWhite},
		bg:   core.ColorOrange,
	},
	TileUsed:     {rows: []string{"╭──╮", "╰──╯"}, fg: []core.Color{core.ColorBlack}, bg: core.ColorBrown},
	TilePipeTop:  {rows: []string{"▛▀▀▜", "▌  ▐"}, fg: []core.Color{core.ColorBrightGreen}, bg: core.ColorDarkGreen},
	TilePipeBody: {rows: []string{" ▌▐ ", " ▌▐ "}, fg: []core.Color{core.ColorBrightGreen}, bg: core.ColorDarkGreen},
	TileFlag:     {rows: []string{"▕▶  ", "▕   "}, fg: []core.Color{core.ColorBrightWhite}},
	TileBedrock:  {rows: []string{"▓▓▓▓", "▓▓▓▓"}, fg: []core.Color{core.ColorDarkGray}, bg: core.ColorGray},
	TileHill:     {rows: []string{"▗▄▄▖", "████"}, fg: []core.Color{core.ColorGreen}},
	TileSolid:    {rows: []string{"▒▒▒▒", "▒▒▒▒"}, fg: []core.Color{core.ColorGray}},
}

var actorRowColors = []core.Color{core.ColorRed, core.ColorOrange, core.ColorRed, core.ColorBlue}

var actorLooks = map[Sprite]look{
	SpriteWalk0:    {rows: []string{" ▄▄▖", " o▀ ", "▐██▌", "▗▘▝▖"}, fg: actorRowColors},
	SpriteWalk1:    {rows: []string{" ▄▄▖", " o▀ ", "▐██▌", " ▌▐ "}, fg: actorRowColors},
	SpriteWalk2:    {rows: []string{" ▄▄▖", " o▀ ", "▐██▌", " ▐▌ "}, fg: actorRowColors},
	SpriteWalk3:    {rows: []string{" ▄▄▖", " o▀ ", "▐██▌", "▝▖▗▘"}, fg: actorRowColors},
	SpriteJump:     {rows: []string{" ▄▄▖", "▗o▀▘", "▝██▘", "▗▘ ▝"}, fg: actorRowColors},
	SpriteDefeated: {rows: []string{"▗▄▄▖", "╳▄▄╳"}, fg: []core.Color{core.ColorRed, core.ColorOrange}},
	SpriteIdle:     {rows: []string{" ▄▄▖", " o▀ ", "▐██▌", " ▌▐ "}, fg: actorRowColors},
}

// mirrored maps a glyph to its left-right reflection.
var mirrored = map[rune]rune{
	'▖': '▗', '▗': '▖',
	'▘': '▝', '▝': '▘',
	'▌': '▐', '▐': '▌',
	'▛': '▜', '▜': '▛',
	'╭': '╮', '╮': '╭',
	'╰': '╯', '╯': '╰',
}

// ScreenCanvas draws the viewport into a terminal screen buffer, one cell
// per cellW x cellH pixels. The bottom of the viewport is pinned to the
// bottom of the screen so the ground stays visible on short terminals.
type ScreenCanvas struct {
	dst          *core.Screen
	cellW, cellH int
	originY      int
}

// NewScreenCanvas creates a canvas over dst.
func NewScreenCanvas(dst *core.Screen, cellW, cellH int) *ScreenCanvas {
	rows := (ViewportHeight + cellH - 1) / cellH
	return &ScreenCanvas{
		dst:     dst,
		cellW:   cellW,
		cellH:   cellH,
		originY: dst.Height() - rows,
	}
}

// Fill clears the screen to the sky color. Terminals use the palette's
// sky entry rather than the exact RGB value.
func (sc *ScreenCanvas) Fill(color.RGBA) {
	sc.dst.Fill(core.ColorSky)
}

// DrawTile draws one block.
func (sc *ScreenCanvas) DrawTile(kind TileKind, frame, x, y int) {
	lk, ok := tileLooks[kind]
	if !ok {
		return
	}
	fg := lk.fg[frame%len(lk.fg)]
	sc.stamp(lk, false, x, y, BlockSize, BlockSize, func(int) core.Color { return fg })
}

// DrawActor draws the player sprite.
func (sc *ScreenCanvas) DrawActor(sprite Sprite, flipped bool, x, y, w, h int) {
	lk, ok := actorLooks[sprite]
	if !ok {
		return
	}
	sc.stamp(lk, flipped, x, y, w, h, func(row int) core.Color { return lk.fg[row%len(lk.fg)] })
}

// stamp samples the pattern over the cells covered by a w x h pixel box.
func (sc *ScreenCanvas) stamp(lk look, flipped bool, x, y, w, h int, fgFor func(row int) core.Color) {
	cx0 := core.FloorDiv(x, sc.cellW)
	cy0 := sc.originY + core.FloorDiv(y+sc.cellH/2, sc.cellH)
	cols := core.Max(1, w/sc.cellW)
	rows := core.Max(1, h/sc.cellH)

	for cy := 0; cy < rows; cy++ {
		pr := cy * len(lk.rows) / rows
		pattern := []rune(lk.rows[pr])
		for cx := 0; cx < cols; cx++ {
			pc := cx * len(pattern) / cols
			if flipped {
				pc = len(pattern) - 1 - pc
			}
			r := pattern[pc]
			if flipped {
				if m, ok := mirrored[r]; ok {
					r = m
				}
			}

			sx, sy := cx0+cx, cy0+cy
			under := sc.dst.GetCell(sx, sy)
			bg := lk.bg
			if bg == core.ColorDefault {
				if r == ' ' {
					continue
				}
				bg = under.Bg
			}
			sc.dst.SetCell(sx, sy, core.Cell{Rune: r, Fg: fgFor(pr), Bg: bg})
		}
	}
}
