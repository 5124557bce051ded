// Package fetch implements the download-and-cache engine behind dataset
// resolution. It retrieves a URL into a cache directory, skips the download
// when a valid copy is already present, verifies content digests, and can
// extract named members from zip and tar.gz archives. Failures are reported
// distinctly: *FetchError for network and filesystem trouble, *IntegrityError
// for digest mismatches, *ExtractionError for missing archive members.
package fetch
