package catalog

import "strings"

// FilterOption narrows the datasets kept by Filter.
type FilterOption func(*filterConfig)

type filterConfig struct {
	keyword      string
	name         string
	geometryType string
	predicate    func(*Dataset) bool
}

// WithKeyword keeps datasets where the keyword appears in any string-valued
// attribute, case-insensitively.
func WithKeyword(keyword string) FilterOption {
	return func(c *filterConfig) {
		c.keyword = keyword
	}
}

// WithName keeps datasets whose name contains the given string,
// case-insensitively.
func WithName(name string) FilterOption {
	return func(c *filterConfig) {
		c.name = name
	}
}

// WithGeometryType keeps datasets of the given geometry type. Case and
// separator characters in the argument are ignored, so "Line String" matches
// LINESTRING.
func WithGeometryType(geometryType string) FilterOption {
	return func(c *filterConfig) {
		c.geometryType = geometryType
	}
}

// WithPredicate keeps datasets for which fn returns true. When set, all other
// filter conditions are ignored.
func WithPredicate(fn func(*Dataset) bool) FilterOption {
	return func(c *filterConfig) {
		c.predicate = fn
	}
}

// Filter returns a new Bunch holding only the datasets that satisfy every
// given condition. Groups left without any matching dataset are pruned.
// The receiver is not modified.
func (b *Bunch) Filter(opts ...FilterOption) *Bunch {
	var cfg filterConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return b.filter(&cfg)
}

func (b *Bunch) filter(cfg *filterConfig) *Bunch {
	out := NewBunch()
	for _, key := range b.keys {
		switch child := b.children[key].(type) {
		case *Dataset:
			if cfg.matches(child) {
				// Add cannot fail here: keys are unique in the source tree.
				_ = out.Add(key, child)
			}
		case *Bunch:
			sub := child.filter(cfg)
			if sub.Len() > 0 {
				_ = out.Add(key, sub)
			}
		}
	}
	return out
}

func (cfg *filterConfig) matches(d *Dataset) bool {
	if cfg.predicate != nil {
		return cfg.predicate(d)
	}

	if cfg.keyword != "" {
		kw := strings.ToLower(cfg.keyword)
		found := false
		for _, v := range d.stringValues() {
			if strings.Contains(strings.ToLower(v), kw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if cfg.name != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(cfg.name)) {
		return false
	}

	if cfg.geometryType != "" {
		want := strings.ToUpper(normalizeName(cfg.geometryType))
		if strings.ToUpper(d.GeometryType) != want {
			return false
		}
	}

	return true
}
