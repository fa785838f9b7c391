package platformer

import (
	"errors"
	"image/color"
	"os"
	"strings"
	"testing"
)

// flatLevel builds a level of n columns with ground on row 12 and
// bedrock on row 13, minus the listed pit columns.
func flatLevel(n int, pits ...int) *TileGrid {
	g := NewTileGrid(n)
	isPit := make(map[int]bool, len(pits))
	for _, p := range pits {
		isPit[p] = true
	}
	for col := 0; col < n; col++ {
		if isPit[col] {
			continue
		}
		g.Set(col, VBlocks-2, TileGround)
		g.Set(col, VBlocks-1, TileBedrock)
	}
	return g
}

func TestLoadLevel(t *testing.T) {
	src := strings.Join([]string{
		"#=............",
		"#=....?.......",
		"#=....b...x...",
		"short",
		"#=............",
	}, "\n")

	g, err := LoadLevel(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadLevel failed: %v", err)
	}

	if g.Length() != 3 {
		t.Fatalf("Expected 3 columns (loading stops at short line), got %d", g.Length())
	}

	tests := []struct {
		col, row int
		want     TileKind
		ok       bool
	}{
		{0, 13, TileBedrock, true},
		{0, 12, TileGround, true},
		{0, 11, TileNone, false},
		{1, 7, TileQuestion, true},
		{2, 7, TileBreakable, true},
		{2, 3, TileSolid, true},
		{3, 13, TileNone, false},
	}

	for _, tt := range tests {
		got, ok := g.TileAt(tt.col, tt.row)
		if ok != tt.ok || got != tt.want {
			t.Errorf("TileAt(%d, %d) = %v, %v; want %v, %v", tt.col, tt.row, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoadLevelCRLF(t *testing.T) {
	g, err := LoadLevel(strings.NewReader("#=............\r\n#=............\r\n"))
	if err != nil {
		t.Fatalf("LoadLevel failed: %v", err)
	}
	if g.Length() != 2 {
		t.Errorf("Expected 2 columns, got %d", g.Length())
	}
}

func TestLoadLevelEmpty(t *testing.T) {
	for _, src := range []string{"", "\n", "too short\n#=............"} {
		_, err := LoadLevel(strings.NewReader(src))
		if !errors.Is(err, ErrEmptyLevel) {
			t.Errorf("LoadLevel(%q) error = %v, want ErrEmptyLevel", src, err)
		}
	}
}

func TestLoadLevelFile(t *testing.T) {
	g, err := LoadLevelFile("testdata/steps.txt")
	if err != nil {
		t.Fatalf("LoadLevelFile failed: %v", err)
	}
	if g.Length() != 24 {
		t.Errorf("Expected 24 columns, got %d", g.Length())
	}
	if kind, ok := g.TileAt(10, 11); !ok || kind != TileBedrock {
		t.Errorf("Expected step block at (10, 11), got %v, %v", kind, ok)
	}

	_, err = LoadLevelFile("testdata/missing.txt")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error for missing file, got %v", err)
	}
}

func TestBuiltinLevel(t *testing.T) {
	g := BuiltinLevel()
	if g.Length() <= HBlocks {
		t.Fatalf("Built-in level should be wider than the viewport, got %d columns", g.Length())
	}
	if kind, ok := g.TileAt(0, VBlocks-1); !ok || kind != TileBedrock {
		t.Errorf("Expected bedrock at bottom of column 0, got %v, %v", kind, ok)
	}
	if g.Count()[TileQuestion] == 0 {
		t.Error("Expected at least one question block in the built-in level")
	}
}

func TestObstacleAt(t *testing.T) {
	g := flatLevel(10)
	g.Set(4, 8, TileQuestion)
	g.Set(5, 11, TileHill)

	tests := []struct {
		name string
		x, y int
		ok   bool
		col  int
		row  int
		kind TileKind
	}{
		{"empty sky", 100, 100, false, 0, 0, TileNone},
		{"ground", 70, 12*BlockSize + 5, true, 1, 12, TileGround},
		{"question block", 4*BlockSize + 63, 8 * BlockSize, true, 4, 8, TileQuestion},
		{"hill is passable", 5*BlockSize + 10, 11*BlockSize + 10, false, 0, 0, TileNone},
		{"left of level", -1, 100, true, -1, 1, TileBedrock},
		{"left of level above", -10, -10, true, -1, -1, TileBedrock},
		{"last column inside area", 9*BlockSize + 1, 100, false, 0, 0, TileNone},
		{"past last column", 10 * BlockSize, 100, true, 10, 1, TileBedrock},
		{"last column above top", 9*BlockSize + 1, -5, true, 10, -1, TileBedrock},
		{"above top", 100, -5, false, 0, 0, TileNone},
		{"below bottom", 100, 20 * BlockSize, false, 0, 0, TileNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ok := g.ObstacleAt(tt.x, tt.y)
			if ok != tt.ok {
				t.Fatalf("ObstacleAt(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
			}
			if !ok {
				return
			}
			if o.Col != tt.col || o.Row != tt.row || o.Kind != tt.kind {
				t.Errorf("ObstacleAt(%d, %d) = %+v, want col=%d row=%d kind=%v",
					tt.x, tt.y, o, tt.col, tt.row, tt.kind)
			}
		})
	}
}

func TestBumpSequence(t *testing.T) {
	g := flatLevel(10)
	g.Set(4, 8, TileQuestion)

	want := []int{0, 3, 6, 9, 12, 15, 18, 21, 21, 17, 13, 9, 5, 1, -3, -7, -11}

	for round := 0; round < 2; round++ {
		g.TriggerBump(Obstacle{Col: 4, Row: 8, Kind: TileQuestion})

		for i, w := range want {
			b, ok := g.Bump()
			if !ok {
				t.Fatalf("round %d: bump cleared early at step %d", round, i)
			}
			if b.Cell != (Cell{Col: 4, Row: 8}) {
				t.Fatalf("round %d: bump cell = %+v", round, b.Cell)
			}
			if got := b.Offset(); got != w {
				t.Errorf("round %d step %d: offset = %d, want %d", round, i, got, w)
			}
			g.AdvanceBump()
		}

		if _, ok := g.Bump(); ok {
			t.Errorf("round %d: bump should clear after %d ticks", round, len(want))
		}
	}
}

func TestTriggerBumpIgnoresSolidTiles(t *testing.T) {
	g := flatLevel(10)
	g.TriggerBump(Obstacle{Col: 3, Row: 12, Kind: TileGround})
	if _, ok := g.Bump(); ok {
		t.Error("Ground tiles should not bump")
	}

	g.TriggerBump(Obstacle{Col: 3, Row: 8, Kind: TileBreakable})
	g.AdvanceBump()
	g.TriggerBump(Obstacle{Col: 5, Row: 8, Kind: TileUsed})
	b, ok := g.Bump()
	if !ok || b.Cell != (Cell{Col: 5, Row: 8}) || b.Frame != 0 {
		t.Errorf("New bump should replace the running one, got %+v, %v", b, ok)
	}
}

func TestParseTile(t *testing.T) {
	tests := []struct {
		code byte
		want TileKind
		ok   bool
	}{
		{'.', TileNone, false},
		{' ', TileNone, false},
		{'=', TileGround, true},
		{'b', TileBreakable, true},
		{'?', TileQuestion, true},
		{'!', TileUsed, true},
		{'r', TilePipeTop, true},
		{'-', TilePipeBody, true},
		{'f', TileFlag, true},
		{'#', TileBedrock, true},
		{'h', TileHill, true},
		{'Z', TileSolid, true},
	}

	for _, tt := range tests {
		got, ok := ParseTile(tt.code)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseTile(%q) = %v, %v; want %v, %v", tt.code, got, ok, tt.want, tt.ok)
		}
	}

	if TileQuestion.Frames() != 3 {
		t.Errorf("Question block should have 3 frames, got %d", TileQuestion.Frames())
	}
	if TileFlag.Solid() || TileHill.Solid() {
		t.Error("Flag and hill should be passable")
	}
	if !TileSolid.Solid() || TileSolid.Bumpable() {
		t.Error("Unknown tiles should be solid and not bumpable")
	}
}

type recordedTile struct {
	kind  TileKind
	frame int
	x, y  int
}

type recordingCanvas struct {
	fills  int
	tiles  []recordedTile
	actors []recordedActor
}

type recordedActor struct {
	sprite     Sprite
	flipped    bool
	x, y, w, h int
}

func (c *recordingCanvas) Fill(color.RGBA) { c.fills++ }

func (c *recordingCanvas) DrawTile(kind TileKind, frame, x, y int) {
	c.tiles = append(c.tiles, recordedTile{kind, frame, x, y})
}

func (c *recordingCanvas) DrawActor(sprite Sprite, flipped bool, x, y, w, h int) {
	c.actors = append(c.actors, recordedActor{sprite, flipped, x, y, w, h})
}

func TestGridDraw(t *testing.T) {
	g := NewTileGrid(40)
	g.Set(0, 8, TileQuestion)
	g.Set(10, 8, TileQuestion)
	g.Set(30, 8, TileGround)

	var c recordingCanvas
	g.TriggerBump(Obstacle{Col: 10, Row: 8, Kind: TileQuestion})
	g.AdvanceBump()
	g.AdvanceBump()
	g.Draw(&c, 4*BlockSize+10, 2*tileFrameTicks)

	// Column 0 lies within the lookback window; column 30 is past the lookahead.
	if len(c.tiles) != 2 {
		t.Fatalf("Expected 2 tiles drawn, got %d: %+v", len(c.tiles), c.tiles)
	}

	first := c.tiles[0]
	if first.x != -4*BlockSize-10 || first.y != 8*BlockSize || first.frame != 2 {
		t.Errorf("Unexpected draw for column 0: %+v", first)
	}

	bumped := c.tiles[1]
	if bumped.x != 6*BlockSize-10 || bumped.y != 8*BlockSize-6 {
		t.Errorf("Bumped tile should be raised 6px, got %+v", bumped)
	}
}
