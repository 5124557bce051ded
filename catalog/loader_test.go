package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleDoc = `{
  "geoda": {
    "airbnb": {
      "url": "https://example.org/airbnb.zip",
      "hash": "deadbeef",
      "filename": "airbnb.zip",
      "name": "geoda.airbnb"
    },
    "guerry": {
      "url": "https://example.org/guerry.zip",
      "hash": "cafebabe",
      "filename": "guerry.zip",
      "geometry_type": "POLYGON",
      "nrows": 85
    }
  },
  "nybb": {
    "url": "https://example.org/nybb.zip",
    "hash": "unknown",
    "filename": "nybb.zip",
    "members": ["nybb/nybb.shp", "nybb/nybb.dbf"]
  }
}`

func TestLoad_BuildsTree(t *testing.T) {
	root, err := Load([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	flat := root.Flatten()
	if len(flat) != 3 {
		t.Fatalf("flatten size = %d, want 3", len(flat))
	}

	airbnb := flat["geoda.airbnb"]
	if airbnb == nil {
		t.Fatal("geoda.airbnb missing from flatten")
	}
	if airbnb.URL != "https://example.org/airbnb.zip" {
		t.Errorf("URL = %q", airbnb.URL)
	}

	// Name defaults to the dotted document path when not set explicitly.
	guerry := flat["geoda.guerry"]
	if guerry == nil {
		t.Fatal("geoda.guerry missing from flatten")
	}
	if guerry.NRows != 85 || guerry.GeometryType != "POLYGON" {
		t.Errorf("guerry fields = %d, %q", guerry.NRows, guerry.GeometryType)
	}

	// Top-level values holding a url are datasets, not groups.
	nybb, err := root.Dataset("nybb")
	if err != nil {
		t.Fatalf("Dataset(nybb) error: %v", err)
	}
	if !nybb.Unverified() {
		t.Error("nybb should be unverified")
	}
	if len(nybb.Members) != 2 {
		t.Errorf("Members = %v", nybb.Members)
	}
}

func TestLoad_PreservesDocumentOrder(t *testing.T) {
	root, err := Load([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"geoda.airbnb", "geoda.guerry", "nybb"}
	got := root.Names()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestLoad_InvalidDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing hash", `{"p": {"d": {"url": "u", "filename": "f"}}}`},
		{"empty members", `{"p": {"d": {"url": "u", "hash": "h", "filename": "f", "members": []}}}`},
		{"bad geometry", `{"p": {"d": {"url": "u", "hash": "h", "filename": "f", "geometry_type": "CUBE"}}}`},
		{"non-object provider", `{"p": "not an object"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			var invalid *InvalidDocumentError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected *InvalidDocumentError, got %v", err)
			}
			if len(invalid.Issues) == 0 {
				t.Error("expected at least one validation issue")
			}
		})
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	if _, err := Load([]byte(`{"geoda": `)); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}

func TestLoadFile_YAML(t *testing.T) {
	doc := `
osm:
  roads:
    url: https://example.org/roads.zip
    hash: "0011"
    filename: roads.zip
    geometry_type: LINESTRING
`
	path := filepath.Join(t.TempDir(), "extra.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	root, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	d, err := root.DatasetAt("osm.roads")
	if err != nil {
		t.Fatalf("DatasetAt error: %v", err)
	}
	if d.GeometryType != "LINESTRING" {
		t.Errorf("GeometryType = %q", d.GeometryType)
	}
	if d.Name != "osm.roads" {
		t.Errorf("Name = %q, want osm.roads", d.Name)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
