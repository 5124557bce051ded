package fetch

import "fmt"

// FetchError reports a network or filesystem failure while retrieving a file.
// It wraps the underlying cause.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IntegrityError reports a downloaded file whose content digest does not
// match the expected one. No path to the offending file is ever returned.
type IntegrityError struct {
	URL      string
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("hash mismatch for %s: expected %s, got %s", e.URL, e.Expected, e.Actual)
}

// ExtractionError reports a declared archive member that was not found inside
// the downloaded archive.
type ExtractionError struct {
	Archive string
	Member  string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("member %q not found in archive %s", e.Member, e.Archive)
}
