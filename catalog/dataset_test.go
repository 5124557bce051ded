package catalog

import (
	"errors"
	"testing"
)

func TestNewDataset_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]any
		missing int
	}{
		{"all present", map[string]any{"name": "a.b", "url": "u", "hash": "h", "filename": "f"}, 0},
		{"no url", map[string]any{"name": "a.b", "hash": "h", "filename": "f"}, 1},
		{"empty hash", map[string]any{"name": "a.b", "url": "u", "hash": "", "filename": "f"}, 1},
		{"only name", map[string]any{"name": "a.b"}, 3},
		{"empty", map[string]any{}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDataset(tt.fields)
			if tt.missing == 0 {
				if err != nil {
					t.Fatalf("NewDataset error: %v", err)
				}
				return
			}
			var mf *MissingFieldsError
			if !errors.As(err, &mf) {
				t.Fatalf("expected *MissingFieldsError, got %v", err)
			}
			if len(mf.Fields) != tt.missing {
				t.Errorf("missing fields = %v, want %d entries", mf.Fields, tt.missing)
			}
		})
	}
}

func TestWith_MutatesInPlaceAndReturnsSelf(t *testing.T) {
	d := mustDataset(t, map[string]any{
		"name": "a.b", "url": "u", "hash": "h", "filename": "f",
	})

	got := d.With(map[string]any{"license": "CC-0"})
	if got != d {
		t.Fatal("With did not return the same dataset")
	}
	if d.License != "CC-0" {
		t.Errorf("License = %q, want %q", d.License, "CC-0")
	}

	// Later values win per key.
	d.With(map[string]any{"license": "MIT", "custom": "x"})
	if d.License != "MIT" {
		t.Errorf("License = %q, want %q", d.License, "MIT")
	}
	v, ok := d.Get("custom")
	if !ok || v != "x" {
		t.Errorf(`Get("custom") = %v, %v; want "x", true`, v, ok)
	}
}

func TestWith_TypedFields(t *testing.T) {
	d := mustDataset(t, map[string]any{
		"name": "a.b", "url": "u", "hash": "h", "filename": "f",
	})
	d.With(map[string]any{
		"nrows":   float64(77), // JSON numbers decode as float64
		"ncols":   20,
		"members": []any{"inner/a.shp", "inner/a.dbf"},
	})
	if d.NRows != 77 || d.NCols != 20 {
		t.Errorf("NRows, NCols = %d, %d; want 77, 20", d.NRows, d.NCols)
	}
	if len(d.Members) != 2 || d.Members[0] != "inner/a.shp" {
		t.Errorf("Members = %v", d.Members)
	}
}

func TestCopy_Independent(t *testing.T) {
	d := mustDataset(t, map[string]any{
		"name": "a.b", "url": "u", "hash": "h", "filename": "f",
		"members": []any{"m1"}, "custom": "x",
	})

	c := d.Copy()
	if c == d {
		t.Fatal("Copy returned the same pointer")
	}

	c.With(map[string]any{"license": "MIT", "custom": "y"})
	c.Members[0] = "changed"
	if d.License != "" {
		t.Errorf("original License mutated: %q", d.License)
	}
	if v, _ := d.Get("custom"); v != "x" {
		t.Errorf("original custom attribute mutated: %v", v)
	}
	if d.Members[0] != "m1" {
		t.Errorf("original Members mutated: %v", d.Members)
	}
}

func TestUnverified(t *testing.T) {
	tests := []struct {
		hash string
		want bool
	}{
		{"deadbeef", false},
		{UnverifiedHash, true},
		{"", true},
	}
	for _, tt := range tests {
		d := &Dataset{Hash: tt.hash}
		if got := d.Unverified(); got != tt.want {
			t.Errorf("Unverified() with hash %q = %v, want %v", tt.hash, got, tt.want)
		}
	}
}
