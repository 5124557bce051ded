package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"go.yaml.in/yaml/v3"
)

// Load validates a JSON registry document and builds the Bunch tree from it.
//
// Top-level keys are providers. A value holding a "url" key is a dataset;
// anything else is a nested group, recursively. Each dataset's name defaults
// to its dotted document path unless set explicitly in the document.
//
// The document is walked with gjson, which preserves the key order of the
// source text; the resulting tree therefore keeps insertion order, which the
// query tie-break depends on.
func Load(data []byte) (*Bunch, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	root := NewBunch()
	if err := buildInto(root, gjson.ParseBytes(data), ""); err != nil {
		return nil, err
	}
	return root, nil
}

// LoadFile reads a registry document from disk. Files ending in .yaml or .yml
// are converted to JSON before validation; everything else is read as JSON.
func LoadFile(path string) (*Bunch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, err
		}
	}
	return Load(data)
}

func buildInto(b *Bunch, obj gjson.Result, prefix string) error {
	var walkErr error
	obj.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		full := name
		if prefix != "" {
			full = prefix + "." + name
		}

		if value.Get("url").Exists() {
			fields, ok := value.Value().(map[string]any)
			if !ok {
				walkErr = fmt.Errorf("item %q is not an object", full)
				return false
			}
			if _, set := fields["name"]; !set {
				fields["name"] = full
			}
			d, err := NewDataset(fields)
			if err != nil {
				walkErr = fmt.Errorf("dataset %q: %w", full, err)
				return false
			}
			if err := b.Add(name, d); err != nil {
				walkErr = fmt.Errorf("item %q: %w", full, err)
				return false
			}
			return true
		}

		sub := NewBunch()
		if err := buildInto(sub, value, full); err != nil {
			walkErr = err
			return false
		}
		if err := b.Add(name, sub); err != nil {
			walkErr = fmt.Errorf("item %q: %w", full, err)
			return false
		}
		return true
	})
	return walkErr
}

// yamlToJSON decodes YAML into generic values, normalizes them to
// JSON-compatible types, and re-encodes as JSON.
func yamlToJSON(data []byte) ([]byte, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	return jsonData, nil
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible
// types. yaml v3 can yield map[interface{}]interface{} keys in nested
// documents, which encoding/json refuses.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[k] = normalizeYAML(item)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, item := range val {
			a[i] = normalizeYAML(item)
		}
		return a
	default:
		return val
	}
}
