// Package cli defines the geodatasets command tree: url, path, fetch,
// search, config and version.
package cli
