package patrol

import (
	"fmt"

	"github.com/katalvlaran/lvpatrol/labmap"
)

// ctxCheckEvery is how many steps Run takes between context checks.
const ctxCheckEvery = 1024

// Advance performs one step of guard g on map m, recording into v.
//
//   - Tile ahead off the map: record (pos, dir) if absent, return ExitedGrid.
//   - Tile ahead is an obstacle: turn right in place, return Turned.
//     Nothing is recorded since the guard has not moved.
//   - Otherwise: if (pos, dir) is already in v return LoopDetected and
//     change nothing; else record it, step forward and return Moved.
//
// Complexity: O(1).
func Advance(g *Guard, m *labmap.LabMap, v *Visited) Outcome {
	next := g.Dir.Ahead(g.Pos)
	if !m.InBounds(next) {
		v.Record(g.Pos, g.Dir)
		return ExitedGrid
	}
	if m.At(next) == labmap.Obstacle {
		g.Dir = g.Dir.TurnRight()
		return Turned
	}
	if !v.Record(g.Pos, g.Dir) {
		return LoopDetected
	}
	g.Pos = next
	return Moved
}

// Run walks a fresh guard from m's start tile until it leaves the map or
// repeats a state. Result.Tiles is the number of distinct tiles visited.
//
// Four turns in a row mean the guard is boxed in and would spin forever
// without recording anything; that is reported as LoopDetected.
//
// Returns ErrNilMap, ErrStepLimit, a context error, or an OnStep error.
// Complexity: O(R×C×4) time, O(R×C) memory.
func Run(m *labmap.LabMap, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	o := buildOptions(opts)
	return run(m, &o, o.OnStep)
}

// run is shared by Run and the search workers; hook may be nil.
func run(m *labmap.LabMap, o *Options, hook func(Guard, Outcome) error) (*Result, error) {
	limit := o.MaxSteps
	if limit <= 0 {
		limit = stepBound(m)
	}

	g := NewGuard(m)
	v := NewVisited(m)
	res := &Result{Visited: v}
	turns := 0

	for {
		if res.Steps >= limit {
			return nil, fmt.Errorf("%w: %d steps on %dx%d map", ErrStepLimit, res.Steps, m.Rows, m.Cols)
		}
		if res.Steps%ctxCheckEvery == 0 {
			if err := o.Ctx.Err(); err != nil {
				return nil, err
			}
		}

		out := Advance(&g, m, v)
		res.Steps++
		if out == Turned {
			turns++
			if turns == numDirections {
				out = LoopDetected
			}
		} else {
			turns = 0
		}

		if hook != nil {
			if err := hook(g, out); err != nil {
				return nil, err
			}
		}
		if out.Terminal() {
			res.Outcome = out
			res.Loop = out == LoopDetected
			res.Tiles = v.Tiles()
			return res, nil
		}
	}
}
