package terrain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/floodgrid/terrain"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged, non-finite and
// out-of-bounds inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		heights [][]float64
		sources []terrain.GridLocation
		err     error
	}{
		{"EmptyRows", [][]float64{}, nil, terrain.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, nil, terrain.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, nil, terrain.ErrNonRectangular},
		{"NaNHeight", [][]float64{{0, math.NaN()}}, nil, terrain.ErrNonFiniteElevation},
		{"InfHeight", [][]float64{{0, math.Inf(1)}}, nil, terrain.ErrNonFiniteElevation},
		{"SourceBelowBounds", [][]float64{{0, 0}}, []terrain.GridLocation{{Row: -1, Col: 0}}, terrain.ErrSourceOutOfBounds},
		{"SourceBeyondBounds", [][]float64{{0, 0}}, []terrain.GridLocation{{Row: 0, Col: 2}}, terrain.ErrSourceOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.New(tc.heights, tc.sources)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v, %v) error = %v; want %v", tc.heights, tc.sources, err, tc.err)
			}
		})
	}
}

// TestNew_EmptySourcesLegal confirms a terrain without water sources is
// valid; it simply never floods.
func TestNew_EmptySourcesLegal(t *testing.T) {
	tr, err := terrain.New([][]float64{{1, 2}, {3, 4}}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := tr.WaterSources(); len(got) != 0 {
		t.Errorf("WaterSources() = %v; want empty", got)
	}
}

// TestNew_DeepCopies confirms that mutating the input after construction
// does not leak into the Terrain.
func TestNew_DeepCopies(t *testing.T) {
	heights := [][]float64{{1, 2}, {3, 4}}
	sources := []terrain.GridLocation{{Row: 0, Col: 0}}
	tr, err := terrain.New(heights, sources)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	heights[0][0] = 99
	sources[0] = terrain.GridLocation{Row: 1, Col: 1}

	h, err := tr.ElevationAt(terrain.GridLocation{Row: 0, Col: 0})
	if err != nil {
		t.Fatalf("ElevationAt error: %v", err)
	}
	if h != 1 {
		t.Errorf("ElevationAt(0,0) = %v after input mutation; want 1", h)
	}
	if got := tr.WaterSources()[0]; got != (terrain.GridLocation{Row: 0, Col: 0}) {
		t.Errorf("WaterSources()[0] = %v after input mutation; want (0, 0)", got)
	}
}

// TestWaterSources_ReturnsCopy confirms callers cannot mutate the Terrain
// through the slice WaterSources returns.
func TestWaterSources_ReturnsCopy(t *testing.T) {
	tr, err := terrain.New([][]float64{{0, 0}}, []terrain.GridLocation{{Row: 0, Col: 1}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	got := tr.WaterSources()
	got[0] = terrain.GridLocation{Row: 0, Col: 0}

	if again := tr.WaterSources()[0]; again != (terrain.GridLocation{Row: 0, Col: 1}) {
		t.Errorf("WaterSources()[0] = %v after caller mutation; want (0, 1)", again)
	}
}

//----------------------------------------------------------------------------//
// Accessor Tests
//----------------------------------------------------------------------------//

func mustTerrain(t *testing.T) *terrain.Terrain {
	t.Helper()
	tr, err := terrain.New(
		[][]float64{
			{0.5, 1.5, 2.5},
			{3.5, 4.5, 5.5},
		},
		[]terrain.GridLocation{{Row: 0, Col: 0}, {Row: 1, Col: 2}},
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return tr
}

func TestDimensions(t *testing.T) {
	tr := mustTerrain(t)
	rows, cols := tr.Dimensions()
	if rows != 2 || cols != 3 {
		t.Errorf("Dimensions() = (%d,%d); want (2,3)", rows, cols)
	}
}

func TestElevationAt(t *testing.T) {
	tr := mustTerrain(t)

	h, err := tr.ElevationAt(terrain.GridLocation{Row: 1, Col: 1})
	if err != nil {
		t.Fatalf("ElevationAt error: %v", err)
	}
	if h != 4.5 {
		t.Errorf("ElevationAt(1,1) = %v; want 4.5", h)
	}

	outside := []terrain.GridLocation{
		{Row: -1, Col: 0}, {Row: 2, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 3},
	}
	for _, loc := range outside {
		if _, err := tr.ElevationAt(loc); !errors.Is(err, terrain.ErrOutOfBounds) {
			t.Errorf("ElevationAt(%v) error = %v; want ErrOutOfBounds", loc, err)
		}
	}
}

func TestIsWaterSource(t *testing.T) {
	tr := mustTerrain(t)

	cases := []struct {
		loc  terrain.GridLocation
		want bool
	}{
		{terrain.GridLocation{Row: 0, Col: 0}, true},
		{terrain.GridLocation{Row: 1, Col: 2}, true},
		{terrain.GridLocation{Row: 0, Col: 1}, false},
		{terrain.GridLocation{Row: 1, Col: 1}, false},
	}
	for _, tc := range cases {
		got, err := tr.IsWaterSource(tc.loc)
		if err != nil {
			t.Fatalf("IsWaterSource(%v) error: %v", tc.loc, err)
		}
		if got != tc.want {
			t.Errorf("IsWaterSource(%v) = %v; want %v", tc.loc, got, tc.want)
		}
	}

	if _, err := tr.IsWaterSource(terrain.GridLocation{Row: 9, Col: 9}); !errors.Is(err, terrain.ErrOutOfBounds) {
		t.Errorf("IsWaterSource out of bounds error = %v; want ErrOutOfBounds", err)
	}
}

func TestMinMaxElevation(t *testing.T) {
	tr := mustTerrain(t)
	min, max := tr.MinMaxElevation()
	if min != 0.5 || max != 5.5 {
		t.Errorf("MinMaxElevation() = (%v,%v); want (0.5,5.5)", min, max)
	}
}

func TestValidate_BuiltTerrainPasses(t *testing.T) {
	if err := mustTerrain(t).Validate(); err != nil {
		t.Errorf("Validate() = %v; want nil", err)
	}
}

//----------------------------------------------------------------------------//
// GridLocation Tests
//----------------------------------------------------------------------------//

func TestGridLocation_InBounds(t *testing.T) {
	cases := []struct {
		loc  terrain.GridLocation
		want bool
	}{
		{terrain.GridLocation{Row: 0, Col: 0}, true},
		{terrain.GridLocation{Row: 2, Col: 4}, true},
		{terrain.GridLocation{Row: -1, Col: 0}, false},
		{terrain.GridLocation{Row: 3, Col: 0}, false},
		{terrain.GridLocation{Row: 0, Col: 5}, false},
		{terrain.GridLocation{Row: 0, Col: -1}, false},
	}
	for _, tc := range cases {
		if got := tc.loc.InBounds(3, 5); got != tc.want {
			t.Errorf("%v.InBounds(3,5) = %v; want %v", tc.loc, got, tc.want)
		}
	}
}

func TestGridLocation_IndexRoundTrip(t *testing.T) {
	const cols = 7
	for row := 0; row < 4; row++ {
		for col := 0; col < cols; col++ {
			loc := terrain.GridLocation{Row: row, Col: col}
			if got := terrain.Locate(loc.Index(cols), cols); got != loc {
				t.Errorf("Locate(Index(%v)) = %v; want %v", loc, got, loc)
			}
		}
	}
}

func TestGridLocation_String(t *testing.T) {
	loc := terrain.GridLocation{Row: 2, Col: 5}
	if got := loc.String(); got != "(2, 5)" {
		t.Errorf("String() = %q; want %q", got, "(2, 5)")
	}
}
