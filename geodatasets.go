// Package geodatasets ships a registry of open geospatial dataset metadata
// and resolves dataset names to verified, locally cached files.
//
// The registry is a nested namespace of providers and datasets, queryable by
// loose name ("GeoDa AirBnB", "geoda_airbnb" and "geoda.airbnb" all resolve
// to the same dataset). GetURL answers without touching the network; GetPath
// downloads on first use, verifies the content digest, extracts archive
// members where the dataset declares them, and returns a local path.
package geodatasets

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/geopandas/geodatasets/catalog"
)

//go:embed data/database.json
var databaseJSON []byte

var (
	dataOnce sync.Once
	dataRoot *catalog.Bunch

	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Data returns the process-wide dataset registry, built once from the
// embedded database. The returned Bunch is never mutated after construction
// and is safe for concurrent reads.
//
// Data panics if the embedded database does not validate; that is a build
// defect, not a runtime condition.
func Data() *catalog.Bunch {
	dataOnce.Do(func() {
		root, err := catalog.Load(databaseJSON)
		if err != nil {
			panic(fmt.Sprintf("geodatasets: embedded database is invalid: %v", err))
		}
		dataRoot = root
	})
	return dataRoot
}

// Default returns the shared resolver over Data, built on first use.
func Default() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = NewResolver(Data())
	})
	return defaultResolver
}

// GetURL returns the remote URL of the named dataset without any network or
// filesystem I/O. Name formatting does not matter; see Bunch.QueryName.
func GetURL(name string) (string, error) {
	return Default().GetURL(name)
}

// GetPath returns the local path of the named dataset, downloading and
// verifying it first when it is not in the cache yet.
func GetPath(name string) (string, error) {
	return Default().GetPath(name)
}

// Fetch downloads the named datasets into the cache without returning their
// paths. Useful to pre-populate the cache before going offline.
func Fetch(names ...string) error {
	return Default().Fetch(names...)
}
