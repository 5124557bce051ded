package geodatasets

import (
	"sync"

	"github.com/geopandas/geodatasets/catalog"
	"github.com/geopandas/geodatasets/fetch"
	"github.com/geopandas/geodatasets/internal/cachedir"
)

// Retriever is the narrow interface the resolver needs from the download
// engine. fetch.Client satisfies it.
type Retriever interface {
	Retrieve(url, knownHash, fname, cacheRoot string, members []string) (string, error)
}

// Resolver turns dataset references into URLs or verified local paths.
// It performs no recovery of its own: lookup and fetch failures surface to
// the caller as catalog and fetch error types.
type Resolver struct {
	root      *catalog.Bunch
	retriever Retriever

	cacheRoot string
	cacheOnce sync.Once
	cacheErr  error
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCacheDir pins the cache directory instead of resolving it from the
// environment, config and platform convention.
func WithCacheDir(dir string) Option {
	return func(r *Resolver) {
		r.cacheRoot = dir
	}
}

// WithRetriever swaps the download engine (useful for testing).
func WithRetriever(rt Retriever) Option {
	return func(r *Resolver) {
		r.retriever = rt
	}
}

// NewResolver creates a Resolver over the given registry tree.
func NewResolver(root *catalog.Bunch, opts ...Option) *Resolver {
	r := &Resolver{root: root}
	for _, opt := range opts {
		opt(r)
	}
	if r.retriever == nil {
		r.retriever = fetch.New()
	}
	return r
}

// Lookup resolves a reference to a dataset. Dotted names are tried as a
// direct path first; anything that does not traverse falls back to the fuzzy
// name query, so "geoda.airbnb", "geoda airbnb" and "GeoDa AirBnB" all
// resolve. Fails with *catalog.NoMatchError when neither finds a dataset.
func (r *Resolver) Lookup(name string) (*catalog.Dataset, error) {
	if d, err := r.root.DatasetAt(name); err == nil {
		return d, nil
	}
	return r.root.QueryName(name)
}

// GetURL resolves a reference and returns the dataset's remote URL.
// No network or filesystem I/O happens.
func (r *Resolver) GetURL(name string) (string, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	return d.URL, nil
}

// GetPath resolves a reference and returns a verified local path,
// downloading the dataset on first use.
func (r *Resolver) GetPath(name string) (string, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	return r.PathTo(d)
}

// Fetch downloads each named dataset into the cache, discarding the paths.
func (r *Resolver) Fetch(names ...string) error {
	for _, name := range names {
		if _, err := r.GetPath(name); err != nil {
			return err
		}
	}
	return nil
}

// PathTo materializes an already-resolved dataset and returns its local
// path. Datasets with an unverified hash are downloaded without integrity
// checking; all others fail with *fetch.IntegrityError on digest mismatch.
func (r *Resolver) PathTo(d *catalog.Dataset) (string, error) {
	cacheRoot, err := r.cacheDir()
	if err != nil {
		return "", err
	}

	knownHash := d.Hash
	if d.Unverified() {
		knownHash = ""
	}
	return r.retriever.Retrieve(d.URL, knownHash, d.Filename, cacheRoot, d.Members)
}

// cacheDir resolves the cache root once per resolver.
func (r *Resolver) cacheDir() (string, error) {
	r.cacheOnce.Do(func() {
		if r.cacheRoot != "" {
			return
		}
		r.cacheRoot, r.cacheErr = cachedir.Ensure()
	})
	return r.cacheRoot, r.cacheErr
}
