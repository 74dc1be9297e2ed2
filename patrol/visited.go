package patrol

import "github.com/katalvlaran/lvpatrol/labmap"

// Visited is the set of (position, direction) states recorded during one run.
// It stores a direction bitmask per tile, so membership checks are O(1) and
// the distinct-tile count is maintained incrementally. It only grows.
type Visited struct {
	m     *labmap.LabMap
	dirs  []uint8
	tiles int
}

// NewVisited returns an empty set sized for m.
func NewVisited(m *labmap.LabMap) *Visited {
	return &Visited{m: m, dirs: make([]uint8, m.Size())}
}

// Contains reports whether (p, d) has been recorded.
func (v *Visited) Contains(p labmap.Position, d Direction) bool {
	return v.dirs[v.m.Index(p)]&bit(d) != 0
}

// Record adds (p, d) and reports whether it was new.
func (v *Visited) Record(p labmap.Position, d Direction) bool {
	i := v.m.Index(p)
	if v.dirs[i]&bit(d) != 0 {
		return false
	}
	if v.dirs[i] == 0 {
		v.tiles++
	}
	v.dirs[i] |= bit(d)
	return true
}

// Has reports whether p was recorded in any direction.
func (v *Visited) Has(p labmap.Position) bool {
	return v.dirs[v.m.Index(p)] != 0
}

// Tiles returns the number of distinct positions recorded, direction ignored.
func (v *Visited) Tiles() int {
	return v.tiles
}

// Directions returns the directions recorded at p, in Up, Right, Down, Left order.
func (v *Visited) Directions(p labmap.Position) []Direction {
	mask := v.dirs[v.m.Index(p)]
	var out []Direction
	for d := Up; d < numDirections; d++ {
		if mask&bit(d) != 0 {
			out = append(out, d)
		}
	}
	return out
}

// Positions lists the recorded positions in row-major order.
func (v *Visited) Positions() []labmap.Position {
	out := make([]labmap.Position, 0, v.tiles)
	for i, mask := range v.dirs {
		if mask != 0 {
			out = append(out, v.m.Position(i))
		}
	}
	return out
}

func bit(d Direction) uint8 {
	return 1 << (d % numDirections)
}
