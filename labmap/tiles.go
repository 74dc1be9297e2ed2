package labmap

import "strings"

// Clone returns a deep copy of m. The copy may be mutated with Set without
// affecting m.
// Complexity: O(R×C).
func (m *LabMap) Clone() *LabMap {
	tiles := make([]Tile, len(m.tiles))
	copy(tiles, m.tiles)
	return &LabMap{
		Rows:  m.Rows,
		Cols:  m.Cols,
		tiles: tiles,
		start: m.start,
	}
}

// Set changes the tile at p in place. It refuses to touch the start tile or
// to create a second one, so the map stays well-formed.
// Set is not safe for concurrent use; give each goroutine its own Clone.
func (m *LabMap) Set(p Position, t Tile) error {
	if !m.InBounds(p) {
		return ErrOutOfBounds
	}
	if p == m.start || t == Start {
		return ErrNotOpen
	}
	m.tiles[m.index(p)] = t
	return nil
}

// WithObstacle returns a copy of m with the Open tile at p turned into an
// Obstacle. m itself is unchanged.
func (m *LabMap) WithObstacle(p Position) (*LabMap, error) {
	if !m.InBounds(p) {
		return nil, ErrOutOfBounds
	}
	if m.At(p) != Open {
		return nil, ErrNotOpen
	}
	c := m.Clone()
	c.tiles[c.index(p)] = Obstacle
	return c, nil
}

// OpenTiles lists every Open tile in row-major order. The start tile and
// obstacles are never included.
// Complexity: O(R×C).
func (m *LabMap) OpenTiles() []Position {
	out := make([]Position, 0, len(m.tiles))
	for i, t := range m.tiles {
		if t == Open {
			out = append(out, m.Position(i))
		}
	}
	return out
}

// Render draws the map one row per line. When mark is non-nil and returns
// ok for a position, its rune replaces the tile glyph there.
func (m *LabMap) Render(mark func(Position) (rune, bool)) string {
	var b strings.Builder
	b.Grow(m.Rows * (m.Cols + 1))
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			p := Position{Row: r, Col: c}
			if mark != nil {
				if g, ok := mark(p); ok {
					b.WriteRune(g)
					continue
				}
			}
			b.WriteRune(m.tiles[m.index(p)].Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the map without overlays.
func (m *LabMap) String() string {
	return m.Render(nil)
}
