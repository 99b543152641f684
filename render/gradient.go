package render

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

// Sentinel errors for gradient construction.
var (
	// ErrNoStops indicates a gradient with no color stops.
	ErrNoStops = errors.New("render: gradient needs at least one stop")
	// ErrDuplicateStop indicates two stops sharing a threshold.
	ErrDuplicateStop = errors.New("render: duplicate gradient threshold")
)

// Stop pairs a color with the threshold at which it applies.
type Stop struct {
	T float64
	C color.RGBA
}

// Gradient is a sequence of color stops sorted by ascending threshold.
// At interpolates linearly between neighboring stops; thresholds outside
// the stop range clamp to the nearest end.
type Gradient struct {
	stops []Stop
}

// NewGradient builds a Gradient from the given stops, sorting them by
// threshold. Returns ErrNoStops for an empty list and ErrDuplicateStop if
// two stops share a threshold.
func NewGradient(stops ...Stop) (*Gradient, error) {
	if len(stops) == 0 {
		return nil, ErrNoStops
	}
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].T == sorted[i-1].T {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateStop, sorted[i].T)
		}
	}
	return &Gradient{stops: sorted}, nil
}

// AddStop inserts a stop, keeping the gradient sorted.
// Returns ErrDuplicateStop if the threshold is already occupied.
func (g *Gradient) AddStop(s Stop) error {
	for _, have := range g.stops {
		if have.T == s.T {
			return fmt.Errorf("%w: %v", ErrDuplicateStop, s.T)
		}
	}
	g.stops = append(g.stops, s)
	sort.Slice(g.stops, func(i, j int) bool { return g.stops[i].T < g.stops[j].T })
	return nil
}

// At returns the gradient color at threshold t. Between two stops the RGB
// channels are interpolated linearly; below the first or above the last
// stop the end color is returned unchanged.
// Complexity: O(S) in the number of stops.
func (g *Gradient) At(t float64) color.RGBA {
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.T {
		return first.C
	}
	if t >= last.T {
		return last.C
	}
	for i := 1; i < len(g.stops); i++ {
		if t > g.stops[i].T {
			continue
		}
		lo, hi := g.stops[i-1], g.stops[i]
		progress := (t - lo.T) / (hi.T - lo.T)
		return color.RGBA{
			R: lerp(lo.C.R, hi.C.R, progress),
			G: lerp(lo.C.G, hi.C.G, progress),
			B: lerp(lo.C.B, hi.C.B, progress),
			A: 255,
		}
	}
	return last.C
}

// lerp blends one 8-bit channel between a and b by progress in [0,1].
func lerp(a, b uint8, progress float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*progress)
}

// WaterColor is the color flooded cells are drawn with (prussian blue).
var WaterColor = color.RGBA{R: 0, G: 49, B: 83, A: 255}

// ElevationGradient returns the standard land palette: pakistan green at
// 0.0, yellow-green at 0.1, maize at 0.25, metallic gold at 0.4 and sienna
// at 1.01. Thresholds cover elevations normalized into [0,1].
func ElevationGradient() *Gradient {
	g, _ := NewGradient(
		Stop{T: 0.0, C: color.RGBA{R: 0, G: 102, B: 0, A: 255}},
		Stop{T: 0.1, C: color.RGBA{R: 154, G: 205, B: 50, A: 255}},
		Stop{T: 0.25, C: color.RGBA{R: 251, G: 236, B: 93, A: 255}},
		Stop{T: 0.4, C: color.RGBA{R: 212, G: 175, B: 55, A: 255}},
		Stop{T: 1.01, C: color.RGBA{R: 166, G: 60, B: 20, A: 255}},
	)
	return g
}
