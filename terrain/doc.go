// Package terrain defines the immutable data model for a rectangular
// elevation grid with designated water-source cells.
//
// What:
//
//   - GridLocation is a (row, col) value type used as a grid address and
//     as a set/queue element by traversal code.
//   - Terrain wraps a rectangular [][]float64 height grid plus a set of
//     in-bounds water-source locations. It is deep-copied on construction
//     and read-only afterwards.
//   - All accessors are bounds-checked; out-of-bounds access returns
//     ErrOutOfBounds, never a clamped or wrapped coordinate.
//
// Why:
//
//   - Flood simulation: the flood package computes reachability over a
//     Terrain without ever mutating it.
//   - Display: renderers read elevations and normalize them against
//     MinMaxElevation.
//
// Lifecycle:
//
//	A Terrain is built once, by a loader, from already-validated data.
//	There is no in-place mutation; a changed landscape means a new Terrain.
//	Because it is immutable, a single Terrain may be shared freely across
//	goroutines and repeated flood computations.
//
// Errors:
//
//   - ErrEmptyGrid: the height grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonFiniteElevation: a height is NaN or ±Inf.
//   - ErrSourceOutOfBounds: a water source lies outside the grid.
//   - ErrOutOfBounds: a coordinate access fell outside grid dimensions.
package terrain
