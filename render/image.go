package render

import (
	"errors"
	"image"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/floodgrid/flood"
	"github.com/katalvlaran/floodgrid/terrain"
)

// ErrTerrainNil is returned when a Renderer is given a nil terrain.
var ErrTerrainNil = errors.New("render: terrain is nil")

// normEpsilon keeps the top of the normalized range strictly below 1, so
// the highest cell lands inside the gradient rather than on its edge.
const normEpsilon = 1e-6

// Renderer paints terrains into images. Zero values are not usable;
// construct with NewRenderer and adjust fields as needed.
type Renderer struct {
	// Gradient colors dry cells by normalized elevation.
	Gradient *Gradient
	// Water colors flooded cells.
	Water Stop
	// CellSize is the square pixel size of one grid cell.
	CellSize int
}

// NewRenderer returns a Renderer with the standard elevation palette,
// prussian-blue water and 4×4 pixel cells.
func NewRenderer() *Renderer {
	return &Renderer{
		Gradient: ElevationGradient(),
		Water:    Stop{C: WaterColor},
		CellSize: 4,
	}
}

// Image renders t as an RGBA image, coloring every cell flooded in res
// with the water color and every dry cell with the gradient color of its
// normalized elevation. res may be nil, which renders a fully dry terrain.
// Complexity: O(W×H×CellSize²).
func (r *Renderer) Image(t *terrain.Terrain, res *flood.Result) (image.Image, error) {
	if t == nil {
		return nil, ErrTerrainNil
	}
	rows, cols := t.Dimensions()
	minH, maxH := t.MinMaxElevation()
	span := maxH - minH + normEpsilon

	cell := r.CellSize
	if cell < 1 {
		cell = 1
	}
	im := image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell))

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			loc := terrain.GridLocation{Row: row, Col: col}
			c := r.Water.C
			if res == nil || !res.Flooded(loc) {
				h, err := t.ElevationAt(loc)
				if err != nil {
					return nil, err
				}
				c = r.Gradient.At((h - minH) / span)
			}
			for dy := 0; dy < cell; dy++ {
				for dx := 0; dx < cell; dx++ {
					im.SetRGBA(col*cell+dx, row*cell+dy, c)
				}
			}
		}
	}
	return im, nil
}

// SavePNG renders t (flooded per res) and writes it to path as a PNG.
func (r *Renderer) SavePNG(path string, t *terrain.Terrain, res *flood.Result) error {
	im, err := r.Image(t, res)
	if err != nil {
		return err
	}
	ctx := gg.NewContextForRGBA(im.(*image.RGBA))
	return ctx.SavePNG(path)
}
