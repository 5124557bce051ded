package catalog

import "sort"

// UnverifiedHash marks a dataset whose content digest is not pinned.
// Resolution of such datasets skips integrity verification.
const UnverifiedHash = "unknown"

// GeometryTypes lists the recognised values of the geometry_type attribute.
var GeometryTypes = []string{"POINT", "LINESTRING", "POLYGON", "MIXED"}

// Dataset is the metadata record for one downloadable dataset.
//
// Name, URL, Hash and Filename are always present; everything else is
// optional. Attributes beyond the canonical set live in a free-form map and
// are reachable through Get.
type Dataset struct {
	Name     string // fully-qualified dotted name, e.g. "geoda.airbnb"
	URL      string
	Hash     string // content digest, or UnverifiedHash
	Filename string // local file name; suffix drives archive detection

	License      string
	Attribution  string
	Description  string
	GeometryType string
	Details      string
	NRows        int
	NCols        int

	// Members lists archive-internal paths to extract instead of using the
	// downloaded file as-is. Order is preserved from the source document.
	Members []string

	extra map[string]any
}

func (d *Dataset) isNode() {}

// NewDataset builds a Dataset from a field map as found in a registry
// document. It fails with MissingFieldsError unless name, url, hash and
// filename are all present.
func NewDataset(fields map[string]any) (*Dataset, error) {
	d := &Dataset{}
	d.With(fields)

	var missing []string
	for _, req := range []string{"name", "url", "hash", "filename"} {
		if v, ok := d.Get(req); !ok || v == "" {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}
	return d, nil
}

// With merges the given fields into the dataset and returns the dataset
// itself. Later values win per key. Canonical fields are updated in place;
// anything else lands in the free-form attribute map.
func (d *Dataset) With(fields map[string]any) *Dataset {
	// Apply in sorted key order so repeated calls behave identically.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		d.set(k, fields[k])
	}
	return d
}

func (d *Dataset) set(key string, value any) {
	switch key {
	case "name":
		d.Name = asString(value)
	case "url":
		d.URL = asString(value)
	case "hash":
		d.Hash = asString(value)
	case "filename":
		d.Filename = asString(value)
	case "license":
		d.License = asString(value)
	case "attribution":
		d.Attribution = asString(value)
	case "description":
		d.Description = asString(value)
	case "geometry_type":
		d.GeometryType = asString(value)
	case "details":
		d.Details = asString(value)
	case "nrows":
		d.NRows = asInt(value)
	case "ncols":
		d.NCols = asInt(value)
	case "members":
		d.Members = asStrings(value)
	default:
		if d.extra == nil {
			d.extra = make(map[string]any)
		}
		d.extra[key] = value
	}
}

// Get returns the attribute stored under key, canonical or free-form.
// Canonical fields that are unset report ok = false.
func (d *Dataset) Get(key string) (any, bool) {
	switch key {
	case "name":
		return d.Name, d.Name != ""
	case "url":
		return d.URL, d.URL != ""
	case "hash":
		return d.Hash, d.Hash != ""
	case "filename":
		return d.Filename, d.Filename != ""
	case "license":
		return d.License, d.License != ""
	case "attribution":
		return d.Attribution, d.Attribution != ""
	case "description":
		return d.Description, d.Description != ""
	case "geometry_type":
		return d.GeometryType, d.GeometryType != ""
	case "details":
		return d.Details, d.Details != ""
	case "nrows":
		return d.NRows, d.NRows != 0
	case "ncols":
		return d.NCols, d.NCols != 0
	case "members":
		return d.Members, len(d.Members) > 0
	}
	v, ok := d.extra[key]
	return v, ok
}

// Copy returns an independent shallow copy of the dataset.
func (d *Dataset) Copy() *Dataset {
	c := *d
	if d.Members != nil {
		c.Members = append([]string(nil), d.Members...)
	}
	if d.extra != nil {
		c.extra = make(map[string]any, len(d.extra))
		for k, v := range d.extra {
			c.extra[k] = v
		}
	}
	return &c
}

// Unverified reports whether the dataset carries no usable content digest.
func (d *Dataset) Unverified() bool {
	return d.Hash == "" || d.Hash == UnverifiedHash
}

// stringValues returns every string-typed attribute value, used by keyword
// filtering.
func (d *Dataset) stringValues() []string {
	vals := []string{
		d.Name, d.URL, d.Hash, d.Filename, d.License, d.Attribution,
		d.Description, d.GeometryType, d.Details,
	}
	vals = append(vals, d.Members...)
	for _, v := range d.extra {
		if s, ok := v.(string); ok {
			vals = append(vals, s)
		}
	}
	return vals
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asStrings(v any) []string {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
