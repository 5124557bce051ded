package cli

import (
	"fmt"

	"github.com/geopandas/geodatasets"
	"github.com/geopandas/geodatasets/catalog"
	"github.com/geopandas/geodatasets/internal/config"
)

// loadRegistry returns the built-in registry, with the extra_datasets
// document grafted on when one is configured.
func loadRegistry() (*catalog.Bunch, error) {
	builtin := geodatasets.Data()

	extraPath := config.Get(config.KeyExtraDatasets)
	if extraPath == "" {
		return builtin, nil
	}

	extra, err := catalog.LoadFile(extraPath)
	if err != nil {
		return nil, fmt.Errorf("loading extra datasets from %s: %w", extraPath, err)
	}

	merged := catalog.NewBunch()
	if err := merged.Merge(builtin); err != nil {
		return nil, fmt.Errorf("merging built-in datasets: %w", err)
	}
	if err := merged.Merge(extra); err != nil {
		return nil, fmt.Errorf("merging extra datasets from %s: %w", extraPath, err)
	}
	return merged, nil
}

// newResolver builds a resolver over the full registry.
func newResolver() (*geodatasets.Resolver, error) {
	root, err := loadRegistry()
	if err != nil {
		return nil, err
	}
	return geodatasets.NewResolver(root), nil
}
