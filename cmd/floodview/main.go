// Command floodview opens an interactive window showing a terrain and its
// flooded region. Keys: +/- raise or lower the sea level, ]/[ grow or
// shrink the step, Esc or Q quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katalvlaran/floodgrid/internal/app"
	"github.com/katalvlaran/floodgrid/internal/config"
	"github.com/katalvlaran/floodgrid/terrainio"
)

func main() {
	var (
		terrainName = flag.String("terrain", "", "terrain file to load (no extension)")
		configPath  = flag.String("config", "", "optional HCL config file")
		scale       = flag.Int("scale", 0, "pixels per grid cell (overrides config)")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *scale > 0 {
		cfg.Scale = *scale
	}
	gradient, err := cfg.Gradient()
	if err != nil {
		log.Fatal(err)
	}

	loader := terrainio.NewLoader(cfg.TerrainDir, cfg.CacheDir)
	if *terrainName == "" {
		listTerrains(loader)
		os.Exit(2)
	}

	t, err := loader.Load(*terrainName)
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(t, gradient, cfg.Scale, cfg.WaterHeight, cfg.StepSize)
	if err != nil {
		log.Fatal(err)
	}

	rows, cols := t.Dimensions()
	ebiten.SetWindowTitle("floodview — " + *terrainName)
	ebiten.SetWindowSize(cols*cfg.Scale, rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// listTerrains prints the available terrain names, five per row, the way
// the terrain picker always has.
func listTerrains(loader *terrainio.Loader) {
	names, err := loader.Available()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Available terrain files:")
	for i, name := range names {
		if i > 0 && i%5 == 0 {
			fmt.Println()
		}
		fmt.Print(name, " ")
	}
	fmt.Println()
	fmt.Println("\nRun again with -terrain <name>.")
}
