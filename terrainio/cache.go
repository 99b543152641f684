package terrainio

import (
	"bufio"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/katalvlaran/floodgrid/terrain"
)

// cachePaths returns the key and data file paths for a source URL.
// The pair is keyed by the SHA-1 of the URL: the .key file records the URL
// so hash collisions or stale cache dirs are detected, the .data file
// holds the fetched terrain body.
func (l *Loader) cachePaths(url string) (keyPath, dataPath string) {
	sum := sha1.Sum([]byte(url))
	name := hex.EncodeToString(sum[:])
	return filepath.Join(l.CacheDir, name+".key"), filepath.Join(l.CacheDir, name+".data")
}

// isKeyFor reports whether the key file at keyPath records url.
// An unreadable or missing key file counts as "not the key".
func isKeyFor(keyPath, url string) bool {
	f, err := os.Open(keyPath)
	if err != nil {
		return false
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	return line == url
}

// LoadRemote returns the terrain behind url, serving from the download
// cache when the cached copy is still keyed to url and fetching it
// otherwise. The fetched body is itself a terrain file and may redirect
// again; redirects are followed.
func (l *Loader) LoadRemote(url string) (*terrain.Terrain, error) {
	l.Log.Info("loading remote terrain", "url", url)
	keyPath, dataPath := l.cachePaths(url)

	if fileExists(keyPath) && fileExists(dataPath) && isKeyFor(keyPath, url) {
		l.Log.Info("terrain found in cache", "data", dataPath)
	} else {
		l.Log.Info("cache miss, downloading", "url", url)
		if err := l.download(url, keyPath, dataPath); err != nil {
			return nil, err
		}
		l.Log.Info("download successful", "data", dataPath)
	}

	f, err := os.Open(dataPath)
	if err != nil {
		return nil, fmt.Errorf("terrainio: %w", err)
	}
	defer f.Close()

	t, remote, err := parseStream(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dataPath, err)
	}
	if remote != "" {
		return l.LoadRemote(remote)
	}
	return t, nil
}

// download fetches url into dataPath and records url in keyPath.
// The key file is written only after the data file, so a failed download
// never leaves a valid-looking cache entry behind.
func (l *Loader) download(url, keyPath, dataPath string) error {
	if err := os.MkdirAll(l.CacheDir, 0o755); err != nil {
		return fmt.Errorf("terrainio: creating cache dir: %w", err)
	}

	resp, err := l.Client.Get(url)
	if err != nil {
		return fmt.Errorf("terrainio: fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("terrainio: fetching %s: unexpected status %s", url, resp.Status)
	}

	data, err := os.Create(dataPath)
	if err != nil {
		return fmt.Errorf("terrainio: %w", err)
	}
	if _, err = io.Copy(data, resp.Body); err != nil {
		data.Close()
		return fmt.Errorf("terrainio: writing %s: %w", dataPath, err)
	}
	if err = data.Close(); err != nil {
		return fmt.Errorf("terrainio: writing %s: %w", dataPath, err)
	}

	if err = os.WriteFile(keyPath, []byte(url), 0o644); err != nil {
		return fmt.Errorf("terrainio: writing %s: %w", keyPath, err)
	}
	return nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
