// Package app adapts a loaded terrain to the ebiten.Game interface: an
// interactive flood view where the keyboard raises and lowers the sea.
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/floodgrid/flood"
	"github.com/katalvlaran/floodgrid/render"
	"github.com/katalvlaran/floodgrid/terrain"
)

// stepIncrement is how much ]/[ change the per-keypress sea-level step.
const stepIncrement = 0.1

// Game renders a terrain and its flooded region, refloods when the sea
// level changes, and implements ebiten.Game.
type Game struct {
	terrain  *terrain.Terrain
	gradient *render.Gradient

	waterHeight float64
	stepSize    float64
	scale       int

	rows, cols int
	base       []color.RGBA // per-cell dry colors, fixed per terrain
	pixels     []byte
	frame      *ebiten.Image
	dirty      bool
}

// New constructs a Game over t. The sea starts at waterHeight and moves in
// stepSize increments; each cell is drawn scale×scale pixels.
func New(t *terrain.Terrain, gradient *render.Gradient, scale int, waterHeight, stepSize float64) (*Game, error) {
	rows, cols := t.Dimensions()
	g := &Game{
		terrain:     t,
		gradient:    gradient,
		waterHeight: waterHeight,
		stepSize:    stepSize,
		scale:       scale,
		rows:        rows,
		cols:        cols,
		pixels:      make([]byte, rows*cols*4),
		frame:       ebiten.NewImage(cols, rows),
		dirty:       true,
	}
	if err := g.buildBaseColors(); err != nil {
		return nil, err
	}
	return g, nil
}

// buildBaseColors precomputes each cell's dry color from its normalized
// elevation. Dry colors never change, only the flooded overlay does.
func (g *Game) buildBaseColors() error {
	minH, maxH := g.terrain.MinMaxElevation()
	span := maxH - minH + 1e-6

	g.base = make([]color.RGBA, g.rows*g.cols)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			h, err := g.terrain.ElevationAt(terrain.GridLocation{Row: row, Col: col})
			if err != nil {
				return err
			}
			g.base[row*g.cols+col] = g.gradient.At((h - minH) / span)
		}
	}
	return nil
}

// Update handles key input and refloods when the sea level changed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.waterHeight += g.stepSize
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.waterHeight -= g.stepSize
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRightBracket) {
		g.stepSize += stepIncrement
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeftBracket) {
		g.stepSize -= stepIncrement
	}

	if g.dirty {
		if err := g.reflood(); err != nil {
			return err
		}
		g.dirty = false
	}
	return nil
}

// reflood recomputes the flooded set at the current level and refills the
// pixel buffer.
func (g *Game) reflood() error {
	res, err := flood.Flood(g.terrain, g.waterHeight)
	if err != nil {
		return err
	}
	fillFloodRGBA(g.pixels, g.base, res, g.cols)
	g.frame.WritePixels(g.pixels)
	return nil
}

// Draw blits the current frame scaled up and overlays the control hints.
func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.frame, op)

	hud := fmt.Sprintf("Water level: %.2f (change with +/-)\nLevel change step size: %.2f (change with ]/[)",
		g.waterHeight, g.stepSize)
	ebitenutil.DebugPrint(screen, hud)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cols * g.scale, g.rows * g.scale
}
