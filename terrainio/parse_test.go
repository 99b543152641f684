package terrainio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodgrid/terrain"
	"github.com/katalvlaran/floodgrid/terrainio"
)

const validBody = `local
3
3
1
0 0
0.0 1.0 2.0
1.0 5.5 2.0
2.0 2.0 2.0
`

func TestParse_Valid(t *testing.T) {
	tr, err := terrainio.Parse(strings.NewReader(validBody))
	require.NoError(t, err)

	rows, cols := tr.Dimensions()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)

	h, err := tr.ElevationAt(terrain.GridLocation{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, 5.5, h)

	assert.Equal(t, []terrain.GridLocation{{Row: 0, Col: 0}}, tr.WaterSources())
}

// TestParse_SplitSourceLines accepts a source whose row and column sit on
// two consecutive lines, a layout older terrain files use.
func TestParse_SplitSourceLines(t *testing.T) {
	body := `local
2
2
2
0
1
1 0
1 2
3 4
`
	tr, err := terrainio.Parse(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, []terrain.GridLocation{{Row: 0, Col: 1}, {Row: 1, Col: 0}}, tr.WaterSources())
}

func TestParse_RemoteHeader(t *testing.T) {
	body := "https://example.com/island.data\n"
	_, err := terrainio.Parse(strings.NewReader(body))
	assert.ErrorIs(t, err, terrainio.ErrRemoteTerrain)
	assert.Contains(t, err.Error(), "example.com")
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
	}{
		{"Empty", "", terrainio.ErrTruncated},
		{"MissingDimensions", "local\n", terrainio.ErrTruncated},
		{"ZeroRows", "local\n0\n3\n", terrainio.ErrBadValue},
		{"NegativeCols", "local\n3\n-2\n", terrainio.ErrBadValue},
		{"BothDimensionsBad", "local\n0\n0\n", terrainio.ErrBadValue},
		{"DimensionNotANumber", "local\nthree\n3\n", terrainio.ErrBadValue},
		{"ZeroSources", "local\n2\n2\n0\n", terrainio.ErrBadValue},
		{"SourceRowTooBig", "local\n2\n2\n1\n2 0\n", terrainio.ErrSourceOutOfRange},
		{"SourceColNegative", "local\n2\n2\n1\n0 -1\n", terrainio.ErrSourceOutOfRange},
		{"BadHeightToken", "local\n1\n2\n1\n0 0\nfoo 1\n", terrainio.ErrBadValue},
		{"NaNHeight", "local\n1\n2\n1\n0 0\nNaN 1\n", terrainio.ErrBadValue},
		{"TruncatedHeights", "local\n2\n2\n1\n0 0\n1 2 3\n", terrainio.ErrTruncated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrainio.Parse(strings.NewReader(tc.body))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_ExtraHeightsIgnored: values beyond rows×cols are tolerated,
// matching how the format has always been read.
func TestParse_ExtraHeightsIgnored(t *testing.T) {
	body := `local
1
2
1
0 0
7 8 9 10
`
	tr, err := terrainio.Parse(strings.NewReader(body))
	require.NoError(t, err)

	h, err := tr.ElevationAt(terrain.GridLocation{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, 8.0, h)
}
