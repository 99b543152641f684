// Package render maps terrain elevations and flood results to colors and
// images.
//
// What:
//
//   - Gradient interpolates colors across ascending thresholds; At(t)
//     blends linearly between the two surrounding stops.
//   - ElevationGradient is the standard land palette, running dark green
//     through yellow-green, maize and gold up to sienna.
//   - Renderer paints a Terrain into an image: flooded cells take the
//     water color, dry cells take the gradient color of their elevation
//     normalized over the terrain's min/max range.
//
// Why:
//
//   - Snapshot tooling: render a PNG of a terrain at one sea level.
//   - Interactive viewers reuse Gradient for per-cell colors and do their
//     own blitting.
//
// Errors:
//
//   - ErrNoStops: a gradient needs at least one stop.
//   - ErrDuplicateStop: two stops may not share a threshold.
//   - ErrTerrainNil: Renderer methods need a terrain.
package render
