package terrain

import (
	"fmt"
	"math"
)

// Terrain is an immutable rectangular elevation grid with a set of
// water-source locations. Construct it with New; all fields are private
// and every accessor is a pure read, so a Terrain may be shared across
// goroutines without locking.
type Terrain struct {
	rows, cols int
	heights    [][]float64
	sources    []GridLocation
	sourceSet  map[GridLocation]struct{}
}

// New constructs a Terrain from a non-empty, rectangular height grid and a
// list of in-bounds water sources. Both inputs are deep-copied so later
// mutation of the arguments cannot affect the Terrain.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNonFiniteElevation or
// ErrSourceOutOfBounds on invalid input. An empty source list is legal:
// such a terrain simply never floods.
// Complexity: O(W×H + S) time and memory.
func New(heights [][]float64, sources []GridLocation) (*Terrain, error) {
	if len(heights) == 0 || len(heights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(heights), len(heights[0])

	grid := make([][]float64, rows)
	for r, row := range heights {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, h := range row {
			if math.IsNaN(h) || math.IsInf(h, 0) {
				return nil, fmt.Errorf("%w: %v at %v", ErrNonFiniteElevation, h, GridLocation{Row: r, Col: c})
			}
		}
		grid[r] = make([]float64, cols)
		copy(grid[r], row)
	}

	srcs := make([]GridLocation, len(sources))
	set := make(map[GridLocation]struct{}, len(sources))
	for i, s := range sources {
		if !s.InBounds(rows, cols) {
			return nil, fmt.Errorf("%w: %v outside %d×%d grid", ErrSourceOutOfBounds, s, rows, cols)
		}
		srcs[i] = s
		set[s] = struct{}{}
	}

	return &Terrain{
		rows:      rows,
		cols:      cols,
		heights:   grid,
		sources:   srcs,
		sourceSet: set,
	}, nil
}

// Dimensions returns the grid size as (rows, cols).
// Complexity: O(1).
func (t *Terrain) Dimensions() (rows, cols int) {
	return t.rows, t.cols
}

// ElevationAt returns the height at loc.
// Returns ErrOutOfBounds if loc lies outside the grid; the coordinate is
// never clamped or wrapped.
// Complexity: O(1).
func (t *Terrain) ElevationAt(loc GridLocation) (float64, error) {
	if !loc.InBounds(t.rows, t.cols) {
		return 0, fmt.Errorf("%w: %v outside %d×%d grid", ErrOutOfBounds, loc, t.rows, t.cols)
	}
	return t.heights[loc.Row][loc.Col], nil
}

// IsWaterSource reports whether loc is one of the configured flood origins.
// Returns ErrOutOfBounds if loc lies outside the grid.
// Complexity: O(1).
func (t *Terrain) IsWaterSource(loc GridLocation) (bool, error) {
	if !loc.InBounds(t.rows, t.cols) {
		return false, fmt.Errorf("%w: %v outside %d×%d grid", ErrOutOfBounds, loc, t.rows, t.cols)
	}
	_, ok := t.sourceSet[loc]
	return ok, nil
}

// WaterSources returns the configured flood origins, in construction order.
// The slice is a fresh copy; callers may not mutate the Terrain through it.
// Complexity: O(S).
func (t *Terrain) WaterSources() []GridLocation {
	out := make([]GridLocation, len(t.sources))
	copy(out, t.sources)
	return out
}

// MinMaxElevation returns the lowest and highest heights in the grid.
// Useful for normalizing elevations into a display gradient range.
// Complexity: O(W×H).
func (t *Terrain) MinMaxElevation() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range t.heights {
		for _, h := range row {
			if h < min {
				min = h
			}
			if h > max {
				max = h
			}
		}
	}
	return min, max
}

// Validate re-checks the construction invariants: non-empty rectangular
// grid, finite heights, in-bounds sources. A Terrain built by New always
// passes; the check exists as a defensive backstop for consumers handed a
// Terrain of unknown provenance.
// Complexity: O(W×H + S).
func (t *Terrain) Validate() error {
	if t.rows < 1 || t.cols < 1 || len(t.heights) != t.rows {
		return ErrEmptyGrid
	}
	for r, row := range t.heights {
		if len(row) != t.cols {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), t.cols)
		}
		for c, h := range row {
			if math.IsNaN(h) || math.IsInf(h, 0) {
				return fmt.Errorf("%w: %v at %v", ErrNonFiniteElevation, h, GridLocation{Row: r, Col: c})
			}
		}
	}
	for _, s := range t.sources {
		if !s.InBounds(t.rows, t.cols) {
			return fmt.Errorf("%w: %v outside %d×%d grid", ErrSourceOutOfBounds, s, t.rows, t.cols)
		}
	}
	return nil
}
