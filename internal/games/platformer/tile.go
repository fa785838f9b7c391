package platformer

// TileKind identifies the terrain or decoration occupying one cell.
type TileKind uint8

const (
	TileNone      TileKind = iota // No tile; never stored in a grid
	TileGround                    // '='
	TileBreakable                 // 'b'
	TileQuestion                  // '?'
	TileUsed                      // '!'
	TilePipeTop                   // 'r'
	TilePipeBody                  // '-'
	TileFlag                      // 'f'
	TileBedrock                   // '#'
	TileHill                      // 'h'
	TileSolid                     // any other character: invisible-style solid block
)

// tileSpec holds the fixed properties of a tile kind.
type tileSpec struct {
	code     byte
	name     string
	frames   int
	bumpable bool
	passable bool
}

var tileSpecs = [...]tileSpec{
	TileNone:      {code: '.', name: "none", frames: 1, passable: true},
	TileGround:    {code: '=', name: "ground", frames: 1},
	TileBreakable: {code: 'b', name: "breakable", frames: 1, bumpable: true},
	TileQuestion:  {code: '?', name: "question", frames: 3, bumpable: true},
	TileUsed:      {code: '!', name: "used", frames: 1, bumpable: true},
	TilePipeTop:   {code: 'r', name: "pipe-top", frames: 1},
	TilePipeBody:  {code: '-', name: "pipe-body", frames: 1},
	TileFlag:      {code: 'f', name: "flag", frames: 1, passable: true},
	TileBedrock:   {code: '#', name: "bedrock", frames: 1},
	TileHill:      {code: 'h', name: "hill", frames: 1, passable: true},
	TileSolid:     {code: 0, name: "solid", frames: 1},
}

// ParseTile maps a level file character to a tile kind.
// '.' and ' ' are empty and report false.
func ParseTile(code byte) (TileKind, bool) {
	switch code {
	case '.', ' ':
		return TileNone, false
	}
	for k, spec := range tileSpecs {
		if spec.code == code && TileKind(k) != TileNone {
			return TileKind(k), true
		}
	}
	return TileSolid, true
}

func (k TileKind) spec() tileSpec {
	if int(k) >= len(tileSpecs) {
		return tileSpecs[TileSolid]
	}
	return tileSpecs[k]
}

// Code returns the level file character for the kind.
// TileSolid has no single code and returns '%'.
func (k TileKind) Code() byte {
	if c := k.spec().code; c != 0 {
		return c
	}
	return '%'
}

// String returns the kind's name.
func (k TileKind) String() string {
	return k.spec().name
}

// Frames returns the number of animation frames the kind cycles through.
func (k TileKind) Frames() int {
	return k.spec().frames
}

// Bumpable reports whether striking the tile from below starts a bump.
func (k TileKind) Bumpable() bool {
	return k.spec().bumpable
}

// Solid reports whether the tile blocks movement.
func (k TileKind) Solid() bool {
	return !k.spec().passable
}
