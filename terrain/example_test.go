// File: terrain/example_test.go
package terrain_test

import (
	"fmt"

	"github.com/katalvlaran/floodgrid/terrain"
)

// ExampleNew demonstrates constructing a terrain and reading it back.
// Scenario:
//
//   - 2×3 grid of heights, one water source on the low corner.
//   - All access is bounds-checked; the terrain is immutable afterwards.
func ExampleNew() {
	tr, _ := terrain.New(
		[][]float64{
			{0.0, 1.0, 2.0},
			{1.0, 2.0, 3.0},
		},
		[]terrain.GridLocation{{Row: 0, Col: 0}},
	)

	rows, cols := tr.Dimensions()
	fmt.Printf("dimensions: %d×%d\n", rows, cols)

	h, _ := tr.ElevationAt(terrain.GridLocation{Row: 1, Col: 2})
	fmt.Println("elevation at (1, 2):", h)

	for _, src := range tr.WaterSources() {
		fmt.Println("source:", src)
	}

	// Output:
	// dimensions: 2×3
	// elevation at (1, 2): 3
	// source: (0, 0)
}
