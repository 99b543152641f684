// Command floodmap renders a single PNG snapshot of a terrain flooded at a
// given sea level.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/katalvlaran/floodgrid/flood"
	"github.com/katalvlaran/floodgrid/internal/config"
	"github.com/katalvlaran/floodgrid/render"
	"github.com/katalvlaran/floodgrid/terrainio"
)

func main() {
	var (
		terrainName = flag.String("terrain", "", "terrain file to load (no extension)")
		level       = flag.Float64("level", 0, "sea level to flood at")
		out         = flag.String("o", "flood.png", "output PNG path")
		configPath  = flag.String("config", "", "optional HCL config file")
		cellSize    = flag.Int("cell", 4, "pixels per grid cell")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *terrainName == "" {
		log.Fatal("floodmap: -terrain is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	gradient, err := cfg.Gradient()
	if err != nil {
		log.Fatal(err)
	}

	loader := terrainio.NewLoader(cfg.TerrainDir, cfg.CacheDir)
	t, err := loader.Load(*terrainName)
	if err != nil {
		log.Fatal(err)
	}

	res, err := flood.Flood(t, *level)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("flood computed", "terrain", *terrainName, "level", *level, "flooded", res.Count())

	r := render.NewRenderer()
	r.Gradient = gradient
	r.CellSize = *cellSize
	if err := r.SavePNG(*out, t, res); err != nil {
		log.Fatal(err)
	}
	logger.Info("snapshot written", "path", *out)
}
