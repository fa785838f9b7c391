package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Sprite indexes the player sprite sheet.
type Sprite int

const (
	SpriteWalk0    Sprite = iota // Walk cycle occupies 0..3
	SpriteWalk1
	SpriteWalk2
	SpriteWalk3
	SpriteJump
	SpriteDefeated
	SpriteIdle
)

const walkFrames = 4

// Surroundings holds the obstacles touching each edge of the actor.
type Surroundings struct {
	Top, Bottom, Left, Right *Obstacle
}

// Actor is the player's kinematic and animation state.
// Positions are whole pixels; velocities keep their fractional part
// between ticks.
type Actor struct {
	X, Y    int
	VX, VY  float64
	W, H    int
	Big     bool
	Facing  int // +1 right, -1 left
	Jumping int // Ticks of jump thrust used since last landing
	OnFloor bool
	Dead    bool

	Sprite    Sprite
	walkFrame int
}

// NewActor creates a standing actor with its top-left corner at (x, y).
func NewActor(x, y int, big bool) *Actor {
	a := &Actor{
		X:      x,
		Y:      y,
		W:      BlockSize,
		H:      BlockSize,
		Big:    big,
		Facing: 1,
		Sprite: SpriteIdle,
	}
	if big {
		a.H = 2 * BlockSize
	}
	return a
}

// Bounds returns the actor's bounding box in level pixels.
func (a *Actor) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.W, a.H)
}

// firstObstacle samples two points and keeps the first solid hit.
func firstObstacle(g *TileGrid, x1, y1, x2, y2 int) *Obstacle {
	if o, ok := g.ObstacleAt(x1, y1); ok {
		return &o
	}
	if o, ok := g.ObstacleAt(x2, y2); ok {
		return &o
	}
	return nil
}

// SurroundingObstacles probes just outside each edge of the bounding box,
// sampling both corners of the edge. A side hit on the same row as the
// top or bottom hit is dropped, so a corner touch resolves vertically only.
func (a *Actor) SurroundingObstacles(g *TileGrid) Surroundings {
	b := a.Bounds()

	s := Surroundings{
		Top:    firstObstacle(g, b.X, b.Y-1, b.Right()-1, b.Y-1),
		Bottom: firstObstacle(g, b.X, b.Bottom()+1, b.Right(), b.Bottom()+1),
		Left:   firstObstacle(g, b.X-1, b.Y+1, b.X-1, b.Bottom()-1),
		Right:  firstObstacle(g, b.Right()+1, b.Y+1, b.Right()+1, b.Bottom()-1),
	}

	for _, v := range []*Obstacle{s.Top, s.Bottom} {
		if v == nil {
			continue
		}
		if s.Right != nil && s.Right.Row == v.Row {
			s.Right = nil
		}
		if s.Left != nil && s.Left.Row == v.Row {
			s.Left = nil
		}
	}
	return s
}

// SelectAnimationFrame picks the sprite for the current state and
// advances the walk cycle by one frame when walking.
func (a *Actor) SelectAnimationFrame() Sprite {
	switch {
	case a.Dead:
		a.Sprite = SpriteDefeated
	case a.VX == 0 && a.VY == 0:
		a.Sprite = SpriteIdle
		a.walkFrame = 1
	case a.Jumping > 0:
		a.Sprite = SpriteJump
		a.walkFrame = 1
	default:
		a.Sprite = Sprite(a.walkFrame)
		a.walkFrame = (a.walkFrame + 1) % walkFrames
	}
	return a.Sprite
}

// Flipped reports whether the sprite is mirrored to face left.
func (a *Actor) Flipped() bool {
	return a.Facing < 0
}

// Draw renders the actor with its top-left corner at (x, y).
func (a *Actor) Draw(c Canvas, x, y int) {
	if a.Sprite == SpriteDefeated {
		c.DrawActor(a.Sprite, false, x, y, BlockSize, BlockSize)
		return
	}
	c.DrawActor(a.Sprite, a.Flipped(), x, y, a.W, a.H)
}
