package terrainio

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/floodgrid/terrain"
)

// terrainExt is the extension terrain description files carry.
const terrainExt = ".terrain"

// Loader resolves terrain names against a directory of .terrain files and
// fetches remote terrains through a local download cache.
// The zero value is not usable; construct with NewLoader.
type Loader struct {
	// TerrainDir holds the .terrain files offered to the user.
	TerrainDir string
	// CacheDir receives downloaded remote terrain data and key files.
	CacheDir string
	// Client performs remote fetches.
	Client *http.Client
	// Log receives load progress; never nil.
	Log *slog.Logger
}

// NewLoader constructs a Loader over the given terrain and cache
// directories, using http.DefaultClient and slog.Default().
func NewLoader(terrainDir, cacheDir string) *Loader {
	return &Loader{
		TerrainDir: terrainDir,
		CacheDir:   cacheDir,
		Client:     http.DefaultClient,
		Log:        slog.Default(),
	}
}

// Available lists the names (without extension) of every .terrain file in
// TerrainDir, in directory order.
func (l *Loader) Available() ([]string, error) {
	entries, err := os.ReadDir(l.TerrainDir)
	if err != nil {
		return nil, fmt.Errorf("terrainio: listing %s: %w", l.TerrainDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) != terrainExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), terrainExt))
	}
	return names, nil
}

// Load reads and validates <TerrainDir>/<name>.terrain. If the file's
// header names a URL, the data is fetched through the download cache.
// name is given without extension or path, matching what Available lists.
func (l *Loader) Load(name string) (*terrain.Terrain, error) {
	path := filepath.Join(l.TerrainDir, name+terrainExt)
	l.Log.Info("loading terrain file", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("terrainio: %w", err)
	}
	defer f.Close()

	t, remote, err := parseStream(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if remote != "" {
		return l.LoadRemote(remote)
	}
	return t, nil
}
