// Package flood provides tunable options and error definitions for the
// flood computation.
package flood

import (
	"context"
	"errors"
	"fmt"

	"github.com/boljen/go-bitmap"

	"github.com/katalvlaran/floodgrid/terrain"
)

// Sentinel errors for flood execution.
var (
	// ErrTerrainNil is returned if a nil terrain pointer is passed.
	ErrTerrainNil = errors.New("flood: terrain is nil")

	// ErrInvalidTerrain is returned when the terrain fails its invariants.
	// Defensive only: a Terrain built by terrain.New always passes.
	ErrInvalidTerrain = errors.New("flood: invalid terrain")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flood: invalid option supplied")
)

// Option configures flood behavior via functional arguments.
// If an Option is invalid (e.g. negative spread), it is recorded
// internally and surfaced as ErrOptionViolation when Flood is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize flood execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnFlood is called when a cell is marked flooded and enqueued.
	// Receives the cell and its propagation distance from the sources.
	OnFlood func(loc terrain.GridLocation, depth int)

	// OnVisit is called when a flooded cell is dequeued for expansion.
	// If it returns an error, the flood aborts and propagates that error.
	OnVisit func(loc terrain.GridLocation, depth int) error

	// MaxSpread, if > 0, stops propagation beyond this distance from the
	// sources. A value of 0 explicitly disables the limit.
	MaxSpread int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no spread limit (MaxSpread == 0)
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnFlood:   func(terrain.GridLocation, int) {},
		OnVisit:   func(terrain.GridLocation, int) error { return nil },
		MaxSpread: 0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnFlood registers a callback to run when a cell floods.
func WithOnFlood(fn func(loc terrain.GridLocation, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFlood = fn
		}
	}
}

// WithOnVisit registers a callback to run when a cell is expanded;
// returning an error from this callback stops the flood.
func WithOnVisit(fn func(loc terrain.GridLocation, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxSpread bounds propagation distance from the sources.
//
//	d > 0: limit to distance d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxSpread(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxSpread cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxSpread = 0
		default:
			o.MaxSpread = d
		}
	}
}

// Result holds the outcome of one flood computation:
//   - Order: flooded cells in the sequence they were expanded.
//   - Depth: map from cell to its propagation distance from the sources.
//
// Membership queries go through Flooded, which is backed by a per-cell
// bitmap rather than the Depth map, so they stay O(1) with one bit per cell.
type Result struct {
	Order []terrain.GridLocation
	Depth map[terrain.GridLocation]int

	rows, cols int
	count      int
	flooded    bitmap.Bitmap
}

// newResult allocates a Result sized for a rows×cols grid.
func newResult(rows, cols int) *Result {
	return &Result{
		Order:   make([]terrain.GridLocation, 0),
		Depth:   make(map[terrain.GridLocation]int),
		rows:    rows,
		cols:    cols,
		flooded: bitmap.New(rows * cols),
	}
}

// Flooded reports whether loc is submerged. Out-of-bounds locations are
// never flooded. Complexity: O(1).
func (r *Result) Flooded(loc terrain.GridLocation) bool {
	if !loc.InBounds(r.rows, r.cols) {
		return false
	}
	return r.flooded.Get(loc.Index(r.cols))
}

// Count returns the number of flooded cells. Complexity: O(1).
func (r *Result) Count() int {
	return r.count
}

// Locations returns the flooded cells in expansion order.
// The slice is a fresh copy. Complexity: O(F).
func (r *Result) Locations() []terrain.GridLocation {
	out := make([]terrain.GridLocation, len(r.Order))
	copy(out, r.Order)
	return out
}

// Mask returns the flooded set as a rows×cols boolean matrix, the shape
// display collaborators consume. Complexity: O(W×H).
func (r *Result) Mask() [][]bool {
	mask := make([][]bool, r.rows)
	for row := 0; row < r.rows; row++ {
		mask[row] = make([]bool, r.cols)
		for col := 0; col < r.cols; col++ {
			mask[row][col] = r.flooded.Get(row*r.cols + col)
		}
	}
	return mask
}

// mark sets loc flooded. Callers guarantee loc is in bounds and unmarked.
func (r *Result) mark(loc terrain.GridLocation, depth int) {
	r.flooded.Set(loc.Index(r.cols), true)
	r.Depth[loc] = depth
	r.count++
}
