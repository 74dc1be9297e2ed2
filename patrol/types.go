// Package patrol defines the guard, direction, outcome and option types.
package patrol

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvpatrol/labmap"
)

var (
	// ErrNilMap is returned when a nil map is passed to Run or the search.
	ErrNilMap = errors.New("patrol: map is nil")

	// ErrStepLimit indicates the run exceeded its step ceiling without
	// exiting or detecting a loop.
	ErrStepLimit = errors.New("patrol: step limit exceeded")
)

// Direction is the guard's facing. The zero value is Up.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// numDirections is the size of the direction cycle.
const numDirections = 4

// deltas maps each Direction to its (row, col) unit vector.
var deltas = [numDirections][2]int{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

// TurnRight returns the direction 90° clockwise from d.
func (d Direction) TurnRight() Direction {
	return (d + 1) % numDirections
}

// Delta returns the (row, col) unit vector for d.
func (d Direction) Delta() (dr, dc int) {
	v := deltas[d%numDirections]
	return v[0], v[1]
}

// Ahead returns the position one tile in front of p when facing d.
func (d Direction) Ahead(p labmap.Position) labmap.Position {
	dr, dc := d.Delta()
	return p.Offset(dr, dc)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "invalid"
	}
}

// Guard is the walking agent: where it stands and which way it faces.
type Guard struct {
	Pos labmap.Position
	Dir Direction
}

// NewGuard places a guard on m's start tile, facing Up.
func NewGuard(m *labmap.LabMap) Guard {
	return Guard{Pos: m.Start(), Dir: Up}
}

// Outcome is the result of a single Advance.
type Outcome uint8

const (
	// Moved: the guard recorded its state and stepped forward.
	Moved Outcome = iota
	// Turned: an obstacle was ahead; the guard turned right in place.
	Turned
	// ExitedGrid: the tile ahead is off the map. Terminal.
	ExitedGrid
	// LoopDetected: the current state was already recorded. Terminal.
	LoopDetected
)

// Terminal reports whether o ends a run.
func (o Outcome) Terminal() bool {
	return o == ExitedGrid || o == LoopDetected
}

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Turned:
		return "turned"
	case ExitedGrid:
		return "exited"
	case LoopDetected:
		return "loop"
	default:
		return "invalid"
	}
}

// Result summarises one Run.
type Result struct {
	// Tiles is the number of distinct positions the guard occupied.
	Tiles int

	// Loop is true when the run ended with LoopDetected.
	Loop bool

	// Steps counts Advance calls, turns included.
	Steps int

	// Outcome is the terminal outcome, ExitedGrid or LoopDetected.
	Outcome Outcome

	// Visited holds every recorded (position, direction) state.
	Visited *Visited
}

// Option configures Run and the placement search.
type Option func(*Options)

// Options holds configurable parameters for Run and LoopPlacements.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxSteps caps Advance calls per run. Zero means the default bound
	// derived from the map size (see stepBound).
	MaxSteps int

	// Workers is the number of goroutines for the placement search.
	// Defaults to runtime.GOMAXPROCS(0); values < 1 are treated as 1.
	Workers int

	// Logger receives debug output from the search. Defaults to a no-op logger.
	Logger *zap.Logger

	// OnStep, if non-nil, is called after every Advance of Run with the
	// guard state after the step. Returning an error aborts the run.
	// It is not called during the placement search.
	OnStep func(g Guard, o Outcome) error
}

// DefaultOptions returns Options with a background context, the default
// step bound, one worker per CPU, a no-op logger and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
	}
}

// WithContext sets the context checked during long runs and the search.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps overrides the per-run step ceiling. n <= 0 keeps the default.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSteps = n
		}
	}
}

// WithWorkers sets the number of search goroutines. n <= 0 keeps the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithLogger installs a zap logger. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnStep installs a per-step hook for Run.
func WithOnStep(fn func(g Guard, o Outcome) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}

// stepBound is the default ceiling on Advance calls for m: every one of the
// R×C×4 states can be recorded once, and each move is preceded by at most
// three turns.
func stepBound(m *labmap.LabMap) int {
	return m.Size()*numDirections*numDirections + numDirections
}
