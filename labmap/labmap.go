package labmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// New builds a LabMap from one string per row.
// Returns a *MalformedGridError if rows is empty, ragged, or does not hold
// exactly one start tile.
// Complexity: O(R×C) time and memory.
func New(rows []string) (*LabMap, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, malformed(0, ErrEmptyGrid)
	}
	cols := utf8.RuneCountInString(rows[0])
	m := &LabMap{
		Rows:  len(rows),
		Cols:  cols,
		tiles: make([]Tile, 0, len(rows)*cols),
	}
	found := false
	for r, row := range rows {
		if utf8.RuneCountInString(row) != cols {
			return nil, malformed(r+1, ErrNonRectangular)
		}
		c := 0
		for _, ch := range row {
			t := tileOf(ch)
			if t == Start {
				if found {
					return nil, malformed(r+1, ErrMultipleStarts)
				}
				found = true
				m.start = Position{Row: r, Col: c}
			}
			m.tiles = append(m.tiles, t)
			c++
		}
	}
	if !found {
		return nil, malformed(0, ErrNoStart)
	}

	return m, nil
}

// Parse reads a map from r, one row per line. Trailing blank lines are
// ignored; a blank line between rows counts as a ragged row.
func Parse(r io.Reader) (*LabMap, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("labmap: read: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return New(rows)
}

// ReadFile opens path and parses it with Parse.
func ReadFile(path string) (*LabMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("labmap: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// InBounds reports whether p lies within the map.
// Complexity: O(1).
func (m *LabMap) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.Rows && p.Col >= 0 && p.Col < m.Cols
}

// At returns the tile at p. Reading outside the map is a programming error
// and panics; callers check InBounds first.
// Complexity: O(1).
func (m *LabMap) At(p Position) Tile {
	if !m.InBounds(p) {
		panic(fmt.Sprintf("labmap: At(%d,%d) outside %dx%d map", p.Row, p.Col, m.Rows, m.Cols))
	}
	return m.tiles[m.index(p)]
}

// Start returns the position of the start tile.
func (m *LabMap) Start() Position {
	return m.start
}

// Size returns the number of tiles, Rows×Cols.
func (m *LabMap) Size() int {
	return m.Rows * m.Cols
}

// Index maps p to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (m *LabMap) Index(p Position) int {
	return m.index(p)
}

// Position converts a row-major index back to a Position.
// Complexity: O(1).
func (m *LabMap) Position(idx int) Position {
	return Position{Row: idx / m.Cols, Col: idx % m.Cols}
}

func (m *LabMap) index(p Position) int {
	return p.Row*m.Cols + p.Col
}
