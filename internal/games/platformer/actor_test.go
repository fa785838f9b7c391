package platformer

import "testing"

func TestNewActor(t *testing.T) {
	small := NewActor(10, 20, false)
	if small.W != BlockSize || small.H != BlockSize {
		t.Errorf("Small actor should be one block, got %dx%d", small.W, small.H)
	}

	big := NewActor(10, 20, true)
	if big.H != 2*BlockSize {
		t.Errorf("Big actor should be two blocks tall, got %d", big.H)
	}
	if big.Sprite != SpriteIdle || big.Flipped() {
		t.Errorf("New actor should be idle and facing right")
	}
}

func TestSurroundingObstacles(t *testing.T) {
	tests := []struct {
		name   string
		blocks []Cell
		x, y   int
		top    *Cell
		bottom *Cell
		left   *Cell
		right  *Cell
	}{
		{
			name:   "open air",
			blocks: nil,
			x:      128, y: 300,
		},
		{
			name:   "standing on ground",
			blocks: []Cell{{2, 12}, {3, 12}},
			x:      150, y: 639,
			bottom: &Cell{2, 12},
		},
		{
			name:   "second corner hits bottom",
			blocks: []Cell{{3, 12}},
			x:      150, y: 639,
			bottom: &Cell{3, 12},
		},
		{
			name:   "ceiling",
			blocks: []Cell{{2, 8}},
			x:      128, y: 576,
			top:    &Cell{2, 8},
		},
		{
			name:   "corner touch resolves vertically",
			blocks: []Cell{{3, 11}},
			x:      128, y: 600,
			bottom: &Cell{3, 11},
		},
		{
			name:   "side hit on a different row survives",
			blocks: []Cell{{3, 9}, {3, 11}},
			x:      128, y: 600,
			bottom: &Cell{3, 11},
			right:  &Cell{3, 9},
		},
		{
			name:   "side hits on the ceiling row are dropped",
			blocks: []Cell{{2, 9}, {1, 9}, {3, 9}},
			x:      128, y: 600,
			top:    &Cell{2, 9},
		},
		{
			name:   "side hit below the ceiling row survives",
			blocks: []Cell{{2, 9}, {1, 11}},
			x:      128, y: 600,
			top:    &Cell{2, 9},
			left:   &Cell{1, 11},
		},
		{
			name:   "left wall",
			blocks: []Cell{{1, 10}},
			x:      128, y: 640,
			left:   &Cell{1, 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTileGrid(10)
			for _, b := range tt.blocks {
				g.Set(b.Col, b.Row, TileBedrock)
			}

			a := NewActor(tt.x, tt.y, true)
			s := a.SurroundingObstacles(g)

			check := func(side string, got *Obstacle, want *Cell) {
				t.Helper()
				switch {
				case want == nil && got != nil:
					t.Errorf("%s: expected none, got (%d, %d)", side, got.Col, got.Row)
				case want != nil && got == nil:
					t.Errorf("%s: expected (%d, %d), got none", side, want.Col, want.Row)
				case want != nil && (got.Col != want.Col || got.Row != want.Row):
					t.Errorf("%s: expected (%d, %d), got (%d, %d)", side, want.Col, want.Row, got.Col, got.Row)
				}
			}
			check("top", s.Top, tt.top)
			check("bottom", s.Bottom, tt.bottom)
			check("left", s.Left, tt.left)
			check("right", s.Right, tt.right)
		})
	}
}

func TestSelectAnimationFrame(t *testing.T) {
	a := NewActor(0, 0, true)

	if got := a.SelectAnimationFrame(); got != SpriteIdle {
		t.Errorf("Resting actor should be idle, got %d", got)
	}

	a.VX = 1.9
	var walk []Sprite
	for i := 0; i < 5; i++ {
		walk = append(walk, a.SelectAnimationFrame())
	}
	want := []Sprite{SpriteWalk1, SpriteWalk2, SpriteWalk3, SpriteWalk0, SpriteWalk1}
	for i := range want {
		if walk[i] != want[i] {
			t.Fatalf("Walk cycle = %v, want %v", walk, want)
		}
	}

	a.Jumping = 2
	if got := a.SelectAnimationFrame(); got != SpriteJump {
		t.Errorf("Jumping actor should use the jump sprite, got %d", got)
	}

	// Leaving the jump restarts the walk cycle at frame 1.
	a.Jumping = 0
	if got := a.SelectAnimationFrame(); got != SpriteWalk1 {
		t.Errorf("Walk after jump should restart at frame 1, got %d", got)
	}

	a.Dead = true
	if got := a.SelectAnimationFrame(); got != SpriteDefeated {
		t.Errorf("Dead actor should use the defeated sprite, got %d", got)
	}
}

func TestActorDraw(t *testing.T) {
	a := NewActor(0, 0, true)
	a.Facing = -1

	var c recordingCanvas
	a.Draw(&c, 100, 200)
	if len(c.actors) != 1 {
		t.Fatalf("Expected one actor draw, got %d", len(c.actors))
	}
	got := c.actors[0]
	if !got.flipped || got.w != BlockSize || got.h != 2*BlockSize || got.x != 100 || got.y != 200 {
		t.Errorf("Unexpected actor draw: %+v", got)
	}

	a.Dead = true
	a.SelectAnimationFrame()
	a.Draw(&c, 100, 200)
	dead := c.actors[1]
	if dead.sprite != SpriteDefeated || dead.flipped || dead.h != BlockSize {
		t.Errorf("Defeated sprite should be one unflipped block, got %+v", dead)
	}
}
