// Package flood implements multi-source breadth-first flood propagation
// over a terrain.Terrain, returning the full set of submerged cells for a
// given sea level.
package flood

import (
	"fmt"

	"github.com/katalvlaran/floodgrid/terrain"
)

// neighborOffsets are the 4-directional (row, col) deltas: up, down,
// left, right. Flooding never crosses diagonals.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// queueItem pairs a cell with its propagation distance from the sources.
type queueItem struct {
	loc   terrain.GridLocation
	depth int
}

// walker encapsulates mutable flood state for one invocation.
type walker struct {
	terrain  *terrain.Terrain
	seaLevel float64
	opts     Options
	rows     int
	cols     int
	queue    []queueItem
	res      *Result
}

// Flood computes the flooded set of t at seaLevel, applying any number of
// functional Options. Every water source with elevation ≤ seaLevel seeds
// the frontier; flooding then spreads to 4-adjacent cells whose elevations
// are ≤ seaLevel, each cell visited at most once.
//
// The computation is pure: t is never mutated, no state survives the call,
// and identical arguments always yield identical results. seaLevel is an
// ordinary float64 — negative or extreme values need no special casing
// (a NaN sea level floods nothing, since no elevation compares ≤ NaN).
//
// Returns ErrTerrainNil or ErrInvalidTerrain for invalid input,
// ErrOptionViolation for bad options, the context's error on cancellation,
// or any user-supplied hook error.
// Complexity: O(W×H) time and memory.
func Flood(t *terrain.Terrain, seaLevel float64, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrTerrainNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Defensive invariant check; a Terrain built by terrain.New always passes.
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTerrain, err)
	}

	rows, cols := t.Dimensions()
	sources := t.WaterSources()
	w := &walker{
		terrain:  t,
		seaLevel: seaLevel,
		opts:     o,
		rows:     rows,
		cols:     cols,
		queue:    make([]queueItem, 0, len(sources)),
		res:      newResult(rows, cols),
	}

	// Seed the frontier with every source already at or below the water
	// line; a source above it must wait for the sea to reach it.
	for _, src := range sources {
		h, err := t.ElevationAt(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTerrain, err)
		}
		if h <= seaLevel && !w.res.Flooded(src) {
			w.enqueue(src, 0)
		}
	}

	// Main loop
	return w.res, w.loop()
}

// enqueue marks loc flooded at distance d, calls OnFlood, and adds it to
// the frontier.
func (w *walker) enqueue(loc terrain.GridLocation, d int) {
	w.res.mark(loc, d)
	w.opts.OnFlood(loc, d)
	w.queue = append(w.queue, queueItem{loc: loc, depth: d})
}

// loop processes the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.spread(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.loc)
	if err := w.opts.OnVisit(item.loc, item.depth); err != nil {
		return fmt.Errorf("flood: OnVisit error at %v: %w", item.loc, err)
	}
	return nil
}

// spread floods each in-bounds, unflooded 4-neighbor of item whose
// elevation is at or below the sea level, honoring MaxSpread.
func (w *walker) spread(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxSpread > 0 && nextDepth > w.opts.MaxSpread {
		return nil
	}
	for _, d := range neighborOffsets {
		n := terrain.GridLocation{Row: item.loc.Row + d[0], Col: item.loc.Col + d[1]}
		if !n.InBounds(w.rows, w.cols) || w.res.Flooded(n) {
			continue
		}
		h, err := w.terrain.ElevationAt(n)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTerrain, err)
		}
		if h <= w.seaLevel {
			w.enqueue(n, nextDepth)
		}
	}
	return nil
}
