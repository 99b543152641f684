// Package floodgrid simulates the flooding of terrain grids as sea level
// rises or falls.
//
// 🌊 What is floodgrid?
//
//	A small, focused library plus two command-line tools:
//		• terrain/   — immutable elevation grids with water-source cells
//		• flood/     — multi-source BFS flood propagation at a sea level
//		• terrainio/ — .terrain file loading, validation & download cache
//		• render/    — threshold gradients and PNG snapshots
//		• cmd/floodview — interactive viewer (raise the sea with +/-)
//		• cmd/floodmap  — one-shot PNG snapshots
//
// ✨ Why floodgrid?
//
//   - Correctness first — the one gating rule (elevation ≤ sea level) is
//     applied identically to sources and spreading water, so results are
//     deterministic and monotone in the sea level
//   - Pure computation — flooding never mutates the terrain and carries no
//     state between calls; terrains are safe to share across goroutines
//   - Clear failure modes — malformed terrain files are rejected at load
//     time with a descriptive error; the engine never repairs bad data
//
// Quick ASCII example, a 3×3 terrain with one source (S) at the corner and
// a peak (5) in the middle, flooded at sea level 0:
//
//	S 0 0        ~ ~ ~
//	0 5 0   →    ~ 5 ~
//	0 0 0        ~ ~ ~
//
// The ring floods; the peak stays dry until the sea reaches 5.
//
//	go get github.com/katalvlaran/floodgrid
package floodgrid
