package platformer

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Level geometry in pixels and blocks.
const (
	BlockSize = 64 // Pixels per block side
	HBlocks   = 18 // Blocks visible horizontally
	VBlocks   = 14 // Blocks in a column; also characters per level line

	ViewportWidth  = HBlocks * BlockSize
	ViewportHeight = VBlocks * BlockSize
)

// Bump animation timing, in ticks.
const (
	bumpRiseTicks = 8
	bumpLastTick  = 16
)

// ErrEmptyLevel is returned when a level description contains no columns.
var ErrEmptyLevel = errors.New("level has no columns")

// Cell addresses one grid position. Rows grow downward on screen,
// so row VBlocks-1 is the bottom of the level.
type Cell struct {
	Col, Row int
}

// Obstacle is a solid tile, or a synthetic wall past either level edge.
type Obstacle struct {
	Col, Row int
	Kind     TileKind
}

// BumpState tracks the one tile currently playing its hit-bounce.
type BumpState struct {
	Cell  Cell
	Frame int // Ticks since the bump started
}

// Offset returns how far the bumping tile is raised, in pixels.
// The profile rises 3 px per tick, then falls 4 px per tick past its
// start, overshooting below rest before the bump clears.
func (b BumpState) Offset() int {
	if b.Frame < bumpRiseTicks {
		return 3 * b.Frame
	}
	return 3*(bumpRiseTicks-1) - 4*(b.Frame-bumpRiseTicks)
}

// TileGrid is the static level map plus the transient bump state.
type TileGrid struct {
	tiles  map[Cell]TileKind
	length int
	bump   *BumpState
}

// NewTileGrid creates an empty grid with the given number of columns.
func NewTileGrid(length int) *TileGrid {
	return &TileGrid{
		tiles:  make(map[Cell]TileKind),
		length: length,
	}
}

// LoadLevel reads a level description: one line per column, where
// character j of line n is the tile at column n, row VBlocks-1-j.
// The first line shorter than VBlocks characters ends the level.
func LoadLevel(r io.Reader) (*TileGrid, error) {
	g := NewTileGrid(0)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		if len(line) < VBlocks {
			break
		}
		for j := 0; j < VBlocks; j++ {
			if kind, ok := ParseTile(line[j]); ok {
				g.tiles[Cell{Col: g.length, Row: VBlocks - 1 - j}] = kind
			}
		}
		g.length++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading level: %w", err)
	}
	if g.length == 0 {
		return nil, ErrEmptyLevel
	}
	return g, nil
}

// Length returns the number of columns.
func (g *TileGrid) Length() int {
	return g.length
}

// Set places a tile, growing the level if col is past its end.
func (g *TileGrid) Set(col, row int, kind TileKind) {
	if kind == TileNone {
		delete(g.tiles, Cell{Col: col, Row: row})
		return
	}
	g.tiles[Cell{Col: col, Row: row}] = kind
	if col >= g.length {
		g.length = col + 1
	}
}

// TileAt returns the tile at (col, row), if any.
func (g *TileGrid) TileAt(col, row int) (TileKind, bool) {
	kind, ok := g.tiles[Cell{Col: col, Row: row}]
	return kind, ok
}

// inArea reports whether a cell lies inside the level's columns and rows.
func (g *TileGrid) inArea(col, row int) bool {
	return col >= 0 && col < g.length && row >= 0 && row < VBlocks
}

// ObstacleAt returns the solid obstacle covering pixel (x, y), if any.
// Cells inside the level answer by their tile; outside it, anything left
// of x = 0 is a wall at column -1 and anything at or past the start of
// the last column is a wall at column Length().
func (g *TileGrid) ObstacleAt(x, y int) (Obstacle, bool) {
	col := core.FloorDiv(x, BlockSize)
	row := core.FloorDiv(y, BlockSize)

	if g.inArea(col, row) {
		kind, ok := g.TileAt(col, row)
		if !ok || !kind.Solid() {
			return Obstacle{}, false
		}
		return Obstacle{Col: col, Row: row, Kind: kind}, true
	}

	switch {
	case x < 0:
		return Obstacle{Col: -1, Row: row, Kind: TileBedrock}, true
	case x >= (g.length-1)*BlockSize:
		return Obstacle{Col: g.length, Row: row, Kind: TileBedrock}, true
	}
	return Obstacle{}, false
}

// TriggerBump starts the bump animation on o if its kind is bumpable,
// replacing any bump already running.
func (g *TileGrid) TriggerBump(o Obstacle) {
	if !o.Kind.Bumpable() {
		return
	}
	g.bump = &BumpState{Cell: Cell{Col: o.Col, Row: o.Row}}
}

// AdvanceBump moves the running bump one tick forward and clears it
// once its last tick has passed.
func (g *TileGrid) AdvanceBump() {
	if g.bump == nil {
		return
	}
	g.bump.Frame++
	if g.bump.Frame > bumpLastTick {
		g.bump = nil
	}
}

// Bump returns the running bump, if any.
func (g *TileGrid) Bump() (BumpState, bool) {
	if g.bump == nil {
		return BumpState{}, false
	}
	return *g.bump, true
}

// Count returns how many tiles of each kind the level holds.
func (g *TileGrid) Count() map[TileKind]int {
	counts := make(map[TileKind]int)
	for _, kind := range g.tiles {
		counts[kind]++
	}
	return counts
}

// Draw renders the visible columns relative to the camera offset.
// animFrame selects each tile's animation frame, one step per 32 ticks.
func (g *TileGrid) Draw(c Canvas, xoffset, animFrame int) {
	start := core.FloorDiv(xoffset, BlockSize)
	dx := xoffset - start*BlockSize
	begin := core.Max(0, start-4)

	for col := begin; col < start+HBlocks+1; col++ {
		for row := VBlocks - 1; row >= 0; row-- {
			kind, ok := g.TileAt(col, row)
			if !ok {
				continue
			}
			x := (col-start)*BlockSize - dx
			y := row * BlockSize
			if b, ok := g.Bump(); ok && b.Cell == (Cell{Col: col, Row: row}) {
				y -= b.Offset()
			}
			frame := (animFrame / tileFrameTicks) % kind.Frames()
			c.DrawTile(kind, frame, x, y)
		}
	}
}
