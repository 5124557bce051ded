package catalog

import (
	"fmt"
	"strings"
)

// KeyNotFoundError reports a key or dotted-path lookup that found no child.
type KeyNotFoundError struct {
	Key  string // the key that was missing
	Path string // the full path being traversed, empty for single-key lookups
}

func (e *KeyNotFoundError) Error() string {
	if e.Path != "" && e.Path != e.Key {
		return fmt.Sprintf("no item %q while resolving path %q", e.Key, e.Path)
	}
	return fmt.Sprintf("no item %q", e.Key)
}

// NoMatchError reports a name query that no dataset matched closely enough.
type NoMatchError struct {
	Query string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no matching item found for the query %q", e.Query)
}

// MissingFieldsError reports dataset construction with required fields absent.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("the attributes name, url, hash and filename are required to initialise a dataset; missing: %s",
		strings.Join(e.Fields, ", "))
}

// InvalidDocumentError reports a registry document that failed schema validation.
type InvalidDocumentError struct {
	Issues []ValidationIssue
}

func (e *InvalidDocumentError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			msgs = append(msgs, issue.Path+": "+issue.Message)
			continue
		}
		msgs = append(msgs, issue.Message)
	}
	return "invalid dataset document: " + strings.Join(msgs, "; ")
}
