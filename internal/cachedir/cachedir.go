// Package cachedir resolves the process-wide dataset cache directory. The
// resolution order is the GEODATASETS_CACHE environment variable, the
// cache_dir config key, and finally the platform cache convention
// (os.UserCacheDir()/geodatasets).
package cachedir

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/geopandas/geodatasets/internal/config"
)

// cacheName is the directory created under the platform cache root.
const cacheName = "geodatasets"

var loadConfigOnce sync.Once

// Root returns the cache directory without creating it.
func Root() (string, error) {
	if v := os.Getenv(config.EnvVar("CACHE")); v != "" {
		return v, nil
	}
	loadConfigOnce.Do(config.Load)
	if v := config.Get(config.KeyCacheDir); v != "" {
		return v, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolving user cache directory: %w", err)
	}
	return filepath.Join(base, cacheName), nil
}

// Ensure returns the cache directory, creating it if necessary.
func Ensure() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("creating cache directory %s: %w", root, err)
	}
	return root, nil
}
