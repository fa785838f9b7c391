package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Camera holds the horizontal scroll offset in pixels.
type Camera struct {
	Offset int
}

// MaxOffset returns the largest offset allowed for a level of the given length.
// It is negative when the level is shorter than the viewport.
func MaxOffset(levelLength int) int {
	return BlockSize * (levelLength - HBlocks - 1)
}

// Update scrolls so the actor stays inside the middle third of the viewport,
// then clamps the offset to the level.
func (c *Camera) Update(actorX, viewportWidth, levelLength int) {
	left := viewportWidth / 3
	right := viewportWidth * 2 / 3

	x := actorX - c.Offset
	switch {
	case x > right:
		c.Offset += x - right
	case x < left:
		c.Offset += x - left
	}
	c.Offset = core.Clamp(c.Offset, 0, MaxOffset(levelLength))
}
