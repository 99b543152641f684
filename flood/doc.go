// Package flood computes which cells of a terrain are submerged at a given
// sea level, by multi-source breadth-first reachability from the terrain's
// water sources.
//
// What:
//
//   - Flood(t, seaLevel) returns the full set of flooded GridLocations:
//     every cell reachable from a water source through a chain of
//     4-adjacent cells whose elevations are all ≤ seaLevel.
//   - A water source itself floods only if its own elevation is ≤ seaLevel;
//     a source sitting above the water line contributes nothing.
//   - The same ≤ comparison gates sources and propagation steps, so a cell
//     exactly at sea level is always flooded, consistently.
//
// Why:
//
//   - Rising-tides visualization: recompute the flooded set as the user
//     raises or lowers the water line.
//   - Terrain analysis: find basins protected by higher ground; a low
//     pocket walled off from every source stays dry regardless of its own
//     elevation, because reachability, not elevation alone, decides.
//
// Semantics:
//
//	BFS is used because it models physically simultaneous flood advance and
//	yields a deterministic, distance-ordered visit sequence useful for
//	tracing. Reachability under a fixed threshold is order-independent, so
//	any traversal order produces the same final set. Each call recomputes
//	from scratch: no state is carried between invocations, and repeated
//	calls with identical arguments return identical sets. The traversal is
//	iterative; no recursion, so grid size never risks stack exhaustion.
//
// Complexity:
//
//   - Flood: O(W×H) time, O(W×H) memory — every cell enqueued at most once.
//
// Options:
//
//   - WithContext: cancellation checked once per dequeue.
//   - WithOnFlood / WithOnVisit: tracing hooks; OnVisit may abort the run.
//   - WithMaxSpread: bound propagation distance from the sources.
//
// Errors:
//
//   - ErrTerrainNil: a nil terrain pointer was passed.
//   - ErrInvalidTerrain: the terrain failed its invariants (defensive; a
//     Terrain built by terrain.New always passes).
//   - ErrOptionViolation: an invalid Option was supplied.
package flood
