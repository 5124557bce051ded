package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/geopandas/geodatasets/internal/config"
)

func TestLoadRegistry_Builtin(t *testing.T) {
	config.Load()
	root, err := loadRegistry()
	if err != nil {
		t.Fatalf("loadRegistry error: %v", err)
	}
	if _, err := root.DatasetAt("geoda.airbnb"); err != nil {
		t.Errorf("built-in dataset missing: %v", err)
	}
}

func TestLoadRegistry_ExtraDatasets(t *testing.T) {
	doc := `{
		"osm": {
			"roads": {
				"url": "https://example.org/roads.zip",
				"hash": "0011",
				"filename": "roads.zip"
			}
		}
	}`
	path := filepath.Join(t.TempDir(), "extra.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GEODATASETS_EXTRA_DATASETS", path)
	config.Load()

	root, err := loadRegistry()
	if err != nil {
		t.Fatalf("loadRegistry error: %v", err)
	}
	if _, err := root.DatasetAt("osm.roads"); err != nil {
		t.Errorf("extra dataset missing: %v", err)
	}
	if _, err := root.DatasetAt("geoda.airbnb"); err != nil {
		t.Errorf("built-in dataset missing after merge: %v", err)
	}
}
