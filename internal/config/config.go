// Package config holds the file-backed configuration shared by the
// floodgrid command-line tools. The file is HCL; every field is optional
// and falls back to the defaults the original tools shipped with.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/katalvlaran/floodgrid/render"
)

// ErrBadConfig wraps all config validation failures.
var ErrBadConfig = errors.New("config: invalid configuration")

// Config is the decoded tool configuration.
type Config struct {
	// TerrainDir holds the .terrain files offered to the user.
	TerrainDir string `hcl:"terrain_dir,optional"`
	// CacheDir receives downloaded remote terrains.
	CacheDir string `hcl:"cache_dir,optional"`
	// Scale is the square pixel size of one grid cell on screen.
	Scale int `hcl:"scale,optional"`
	// WaterHeight is the sea level the viewer starts at.
	WaterHeight float64 `hcl:"water_height,optional"`
	// StepSize is the initial per-keypress sea-level increment.
	StepSize float64 `hcl:"step_size,optional"`
	// Stops optionally replaces the standard elevation palette.
	Stops []Stop `hcl:"stop,block"`
}

// Stop is one palette entry: a threshold in the normalized elevation
// range and an RGB color.
type Stop struct {
	T float64 `hcl:"t"`
	R int     `hcl:"r"`
	G int     `hcl:"g"`
	B int     `hcl:"b"`
}

// Default returns the configuration the tools run with when no file is
// given: terrains/ and DownloadCache/ beside the working directory,
// water at 0 rising in steps of 1.
func Default() Config {
	return Config{
		TerrainDir:  "terrains",
		CacheDir:    "DownloadCache",
		Scale:       4,
		WaterHeight: 0.0,
		StepSize:    1.0,
	}
}

// Load reads and validates the HCL file at path. An empty path yields
// Default(). Fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	var file Config
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return cfg, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	if file.TerrainDir != "" {
		cfg.TerrainDir = file.TerrainDir
	}
	if file.CacheDir != "" {
		cfg.CacheDir = file.CacheDir
	}
	if file.Scale != 0 {
		cfg.Scale = file.Scale
	}
	if file.WaterHeight != 0 {
		cfg.WaterHeight = file.WaterHeight
	}
	if file.StepSize != 0 {
		cfg.StepSize = file.StepSize
	}
	cfg.Stops = file.Stops

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale must be positive, got %d", ErrBadConfig, c.Scale)
	}
	if c.StepSize <= 0 {
		return fmt.Errorf("%w: step_size must be positive, got %v", ErrBadConfig, c.StepSize)
	}
	for _, s := range c.Stops {
		if s.R < 0 || s.R > 255 || s.G < 0 || s.G > 255 || s.B < 0 || s.B > 255 {
			return fmt.Errorf("%w: RGB values must be in [0,255], got (%d,%d,%d)", ErrBadConfig, s.R, s.G, s.B)
		}
	}
	return nil
}

// Gradient builds the render gradient: the configured stops if any were
// given, the standard elevation palette otherwise.
func (c Config) Gradient() (*render.Gradient, error) {
	if len(c.Stops) == 0 {
		return render.ElevationGradient(), nil
	}
	stops := make([]render.Stop, len(c.Stops))
	for i, s := range c.Stops {
		stops[i] = render.Stop{
			T: s.T,
			C: color.RGBA{R: uint8(s.R), G: uint8(s.G), B: uint8(s.B), A: 255},
		}
	}
	g, err := render.NewGradient(stops...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	return g, nil
}
