package catalog

import (
	"errors"
	"testing"
)

func TestQueryName_SeparatorAndCaseInsensitive(t *testing.T) {
	root := testTree(t)

	queries := []string{
		"geoda.airbnb",
		"geoda airbnb",
		"GeoDa AirBnB",
		"geoda_airbnb",
		"geoda-airbnb",
		"geoda/airbnb",
		"geodaairbnb",
	}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			d, err := root.QueryName(q)
			if err != nil {
				t.Fatalf("QueryName(%q) error: %v", q, err)
			}
			if d.Name != "geoda.airbnb" {
				t.Errorf("QueryName(%q) = %q, want geoda.airbnb", q, d.Name)
			}
		})
	}
}

func TestQueryName_ExactNameMatchesTraversal(t *testing.T) {
	root := testTree(t)
	for _, name := range root.Names() {
		d, err := root.QueryName(name)
		if err != nil {
			t.Fatalf("QueryName(%q) error: %v", name, err)
		}
		want, err := root.DatasetAt(name)
		if err != nil {
			t.Fatal(err)
		}
		if d != want {
			t.Errorf("QueryName(%q) and DatasetAt(%q) disagree", name, name)
		}
	}
}

func TestQueryName_PartialToken(t *testing.T) {
	root := testTree(t)
	d, err := root.QueryName("airbnb")
	if err != nil {
		t.Fatalf("QueryName error: %v", err)
	}
	if d != root.Flatten()["geoda.airbnb"] {
		t.Errorf("QueryName(airbnb) = %q, want geoda.airbnb", d.Name)
	}
}

func TestQueryName_NoMatch(t *testing.T) {
	root := testTree(t)
	for _, q := range []string{"does not exist", "", "..."} {
		_, err := root.QueryName(q)
		var nm *NoMatchError
		if !errors.As(err, &nm) {
			t.Fatalf("QueryName(%q): expected *NoMatchError, got %v", q, err)
		}
	}
}

func TestQueryName_Deterministic(t *testing.T) {
	root := testTree(t)
	first, err := root.QueryName("guerry")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20; i++ {
		d, err := root.QueryName("guerry")
		if err != nil {
			t.Fatal(err)
		}
		if d != first {
			t.Fatal("QueryName returned a different dataset on repeat call")
		}
	}
}

// Tied scores resolve to the first candidate in depth-first insertion order.
func TestQueryName_TieBreakInsertionOrder(t *testing.T) {
	root := NewBunch()
	for _, provider := range []string{"alpha", "beta"} {
		sub := NewBunch()
		d := mustDataset(t, map[string]any{
			"name":     provider + ".rivers",
			"url":      "https://example.org/" + provider + ".zip",
			"hash":     "00",
			"filename": provider + ".zip",
		})
		if err := sub.Add("rivers", d); err != nil {
			t.Fatal(err)
		}
		if err := root.Add(provider, sub); err != nil {
			t.Fatal(err)
		}
	}

	d, err := root.QueryName("rivers")
	if err != nil {
		t.Fatalf("QueryName error: %v", err)
	}
	if d.Name != "alpha.rivers" {
		t.Errorf("tie broke to %q, want alpha.rivers", d.Name)
	}
}

func TestTokenScore(t *testing.T) {
	tests := []struct {
		query string
		name  string
		want  float64
	}{
		{"geoda airbnb", "geoda.airbnb", 1},
		{"airbnb", "geoda.airbnb", 1},
		{"air", "geoda.airbnb", 0.75},
		{"xyz", "geoda.airbnb", 0},
		{"geoda nothere", "geoda.airbnb", 0.5},
	}
	for _, tt := range tests {
		got := tokenScore(splitTokens(tt.query), splitTokens(tt.name))
		if got != tt.want {
			t.Errorf("tokenScore(%q, %q) = %v, want %v", tt.query, tt.name, got, tt.want)
		}
	}
}
