package app

import (
	"image/color"

	"github.com/katalvlaran/floodgrid/flood"
	"github.com/katalvlaran/floodgrid/render"
	"github.com/katalvlaran/floodgrid/terrain"
)

// fillFloodRGBA writes one RGBA pixel per cell into buf: the water color
// for flooded cells, the precomputed base color otherwise.
func fillFloodRGBA(buf []byte, base []color.RGBA, res *flood.Result, cols int) {
	for i, c := range base {
		if res.Flooded(terrain.Locate(i, cols)) {
			c = render.WaterColor
		}
		o := i * 4
		buf[o+0] = c.R
		buf[o+1] = c.G
		buf[o+2] = c.B
		buf[o+3] = c.A
	}
}
