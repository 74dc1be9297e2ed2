// Package labmap defines the tile, position and map types.
package labmap

// Tile is the content of one grid cell.
type Tile uint8

const (
	// Open is a walkable tile.
	Open Tile = iota
	// Obstacle blocks the guard; the guard turns right in front of it.
	Obstacle
	// Start is the guard's starting tile. It is walkable.
	Start
)

// Glyphs used by Parse and Render.
const (
	GlyphOpen     = '.'
	GlyphObstacle = '#'
	GlyphStart    = '^'
)

// Glyph returns the rune used to draw t.
func (t Tile) Glyph() rune {
	switch t {
	case Obstacle:
		return GlyphObstacle
	case Start:
		return GlyphStart
	default:
		return GlyphOpen
	}
}

func (t Tile) String() string {
	switch t {
	case Open:
		return "open"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	default:
		return "unknown"
	}
}

// tileOf maps an input rune to a Tile. Anything unrecognised is Open.
func tileOf(r rune) Tile {
	switch r {
	case GlyphObstacle:
		return Obstacle
	case GlyphStart:
		return Start
	default:
		return Open
	}
}

// Position is a (row, col) coordinate. (0,0) is the top-left corner;
// Row grows downward and Col grows rightward.
type Position struct {
	Row, Col int
}

// Offset returns the position dr rows and dc columns away from p.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// LabMap is a rectangular grid of tiles with exactly one Start tile.
// Rows and Cols are fixed at construction. tiles is row-major: tiles[r*Cols+c].
type LabMap struct {
	Rows, Cols int
	tiles      []Tile
	start      Position
}
