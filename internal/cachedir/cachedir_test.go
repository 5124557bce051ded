package cachedir

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRoot_EnvOverride(t *testing.T) {
	t.Setenv("GEODATASETS_CACHE", "/tmp/custom-cache")
	got, err := Root()
	if err != nil {
		t.Fatalf("Root error: %v", err)
	}
	if got != "/tmp/custom-cache" {
		t.Errorf("Root() = %q, want /tmp/custom-cache", got)
	}
}

func TestEnsure_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	t.Setenv("GEODATASETS_CACHE", dir)

	got, err := Ensure()
	if err != nil {
		t.Fatalf("Ensure error: %v", err)
	}
	if got != dir {
		t.Errorf("Ensure() = %q, want %q", got, dir)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("cache directory was not created: %v", err)
	}
}
