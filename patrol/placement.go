package patrol

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpatrol/labmap"
)

// CountLoopPlacements returns how many single-obstacle placements make the
// guard loop. See LoopPlacements.
func CountLoopPlacements(m *labmap.LabMap, opts ...Option) (int, error) {
	ps, err := LoopPlacements(m, opts...)
	if err != nil {
		return 0, err
	}
	return len(ps), nil
}

// LoopPlacements tries an extra obstacle on every Open tile of m (never the
// start tile, never an existing obstacle), runs a fresh guard against each
// modified map, and returns the placements that end in LoopDetected,
// sorted row-major. m is not modified.
//
// Candidates are spread over Options.Workers goroutines. Each worker owns a
// private Clone of m and restores the candidate tile after every run.
// The first error cancels the remaining work and is returned.
//
// Complexity: O(open × R×C×4) time, O(workers × R×C) memory.
func LoopPlacements(m *labmap.LabMap, opts ...Option) ([]labmap.Position, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	o := buildOptions(opts)
	candidates := m.OpenTiles()
	workers := o.Workers
	if workers > len(candidates) {
		workers = len(candidates)
	}
	log := o.Logger.With(zap.Int("candidates", len(candidates)), zap.Int("workers", workers))
	log.Debug("placement search started")

	if len(candidates) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(o.Ctx)
	jobs := make(chan labmap.Position)
	found := make([][]labmap.Position, workers)

	g.Go(func() error {
		defer close(jobs)
		for _, p := range candidates {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	wo := o
	wo.Ctx = ctx
	for w := 0; w < workers; w++ {
		w := w
		arena := m.Clone()
		g.Go(func() error {
			hits, err := searchWorker(arena, jobs, &wo)
			found[w] = hits
			log.Debug("placement worker done", zap.Int("worker", w), zap.Int("loops", len(hits)))
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []labmap.Position
	for _, hits := range found {
		out = append(out, hits...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	log.Debug("placement search finished", zap.Int("loops", len(out)))

	return out, nil
}

// searchWorker drains jobs, toggling each candidate to an obstacle on its
// own arena, running the guard, and toggling it back.
func searchWorker(arena *labmap.LabMap, jobs <-chan labmap.Position, o *Options) ([]labmap.Position, error) {
	var hits []labmap.Position
	for p := range jobs {
		if err := arena.Set(p, labmap.Obstacle); err != nil {
			return nil, fmt.Errorf("patrol: place obstacle at (%d,%d): %w", p.Row, p.Col, err)
		}
		res, err := run(arena, o, nil)
		if rerr := arena.Set(p, labmap.Open); rerr != nil && err == nil {
			err = rerr
		}
		if err != nil {
			return nil, fmt.Errorf("patrol: obstacle at (%d,%d): %w", p.Row, p.Col, err)
		}
		if res.Loop {
			hits = append(hits, p)
		}
	}
	return hits, nil
}
