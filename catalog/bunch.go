package catalog

import (
	"fmt"
	"strings"
)

// Node is a member of a Bunch tree: either a *Dataset leaf or a nested *Bunch.
type Node interface {
	isNode()
}

// Bunch is a named tree node mapping string keys to Datasets or nested
// Bunches. Insertion order of keys is preserved.
//
// There is no dynamic attribute dispatch in Go, so all data access flows
// through Get, At and the typed accessors; a dataset keyed "flatten" can
// never shadow the method set.
type Bunch struct {
	keys     []string
	children map[string]Node
}

func (b *Bunch) isNode() {}

// NewBunch returns an empty Bunch.
func NewBunch() *Bunch {
	return &Bunch{children: make(map[string]Node)}
}

// Add attaches child under key. It fails when the key is already taken or
// when attaching the child would make the tree cyclic.
func (b *Bunch) Add(key string, child Node) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if _, ok := b.children[key]; ok {
		return fmt.Errorf("duplicate key %q", key)
	}
	if sub, ok := child.(*Bunch); ok && sub.contains(b) {
		return fmt.Errorf("adding %q would create a cycle", key)
	}
	b.keys = append(b.keys, key)
	b.children[key] = child
	return nil
}

// contains reports whether b is, or transitively holds, the target Bunch.
func (b *Bunch) contains(target *Bunch) bool {
	if b == target {
		return true
	}
	for _, key := range b.keys {
		if sub, ok := b.children[key].(*Bunch); ok && sub.contains(target) {
			return true
		}
	}
	return false
}

// Get returns the direct child stored under key.
func (b *Bunch) Get(key string) (Node, error) {
	child, ok := b.children[key]
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return child, nil
}

// Sub returns the direct child under key as a nested Bunch.
func (b *Bunch) Sub(key string) (*Bunch, error) {
	child, err := b.Get(key)
	if err != nil {
		return nil, err
	}
	sub, ok := child.(*Bunch)
	if !ok {
		return nil, fmt.Errorf("item %q is a dataset, not a group", key)
	}
	return sub, nil
}

// Dataset returns the direct child under key as a Dataset.
func (b *Bunch) Dataset(key string) (*Dataset, error) {
	child, err := b.Get(key)
	if err != nil {
		return nil, err
	}
	d, ok := child.(*Dataset)
	if !ok {
		return nil, fmt.Errorf("item %q is a group, not a dataset", key)
	}
	return d, nil
}

// At traverses a dotted path from this node and returns whatever it lands on.
func (b *Bunch) At(path string) (Node, error) {
	var node Node = b
	for _, key := range strings.Split(path, ".") {
		cur, ok := node.(*Bunch)
		if !ok {
			return nil, &KeyNotFoundError{Key: key, Path: path}
		}
		child, ok := cur.children[key]
		if !ok {
			return nil, &KeyNotFoundError{Key: key, Path: path}
		}
		node = child
	}
	return node, nil
}

// DatasetAt traverses a dotted path and requires a Dataset at the end.
func (b *Bunch) DatasetAt(path string) (*Dataset, error) {
	node, err := b.At(path)
	if err != nil {
		return nil, err
	}
	d, ok := node.(*Dataset)
	if !ok {
		return nil, fmt.Errorf("path %q names a group, not a dataset", path)
	}
	return d, nil
}

// Keys returns the direct child keys in insertion order.
func (b *Bunch) Keys() []string {
	return append([]string(nil), b.keys...)
}

// Len returns the number of direct children.
func (b *Bunch) Len() int {
	return len(b.keys)
}

// Flatten collapses the tree into a single-level map from fully-qualified
// dataset name to Dataset. It is a pure read; repeated calls on an unchanged
// Bunch yield the same entries.
func (b *Bunch) Flatten() map[string]*Dataset {
	flat := make(map[string]*Dataset)
	b.walk(func(d *Dataset) {
		flat[d.Name] = d
	})
	return flat
}

// Names returns the fully-qualified dataset names in depth-first insertion
// order. This order is the documented tie-break for name queries.
func (b *Bunch) Names() []string {
	var names []string
	b.walk(func(d *Dataset) {
		names = append(names, d.Name)
	})
	return names
}

func (b *Bunch) walk(visit func(*Dataset)) {
	for _, key := range b.keys {
		switch child := b.children[key].(type) {
		case *Dataset:
			visit(child)
		case *Bunch:
			child.walk(visit)
		}
	}
}

// Merge grafts the direct children of other onto b, preserving their order.
// It fails on the first key collision, leaving earlier grafts in place.
func (b *Bunch) Merge(other *Bunch) error {
	for _, key := range other.keys {
		if err := b.Add(key, other.children[key]); err != nil {
			return err
		}
	}
	return nil
}
