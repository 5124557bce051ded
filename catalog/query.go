package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Characters treated as separators when normalizing names and queries.
const querySeparators = ". ,-_/"

// queryThreshold is the minimum token score a candidate must reach before a
// query is considered matched at all.
const queryThreshold = 0.6

var queryFolder = cases.Fold()

// QueryName returns the dataset whose fully-qualified name best matches the
// free-text query. Matching is insensitive to letter case and to separator
// characters (dots, spaces, dashes, underscores, slashes).
//
// An exact match of the normalized query against a normalized name wins
// outright. Otherwise candidates are scored by token overlap and the highest
// score wins; ties go to the first candidate in depth-first insertion order.
// QueryName fails with NoMatchError when no candidate clears the threshold.
func (b *Bunch) QueryName(query string) (*Dataset, error) {
	flat := b.Flatten()
	names := b.Names()

	cleaned := normalizeName(query)
	if cleaned != "" {
		for _, name := range names {
			if normalizeName(name) == cleaned {
				return flat[name], nil
			}
		}
	}

	queryToks := splitTokens(query)
	if len(queryToks) == 0 {
		return nil, &NoMatchError{Query: query}
	}

	var (
		best      *Dataset
		bestScore float64
	)
	for _, name := range names {
		score := tokenScore(queryToks, splitTokens(name))
		if score > bestScore {
			bestScore = score
			best = flat[name]
		}
	}
	if best == nil || bestScore < queryThreshold {
		return nil, &NoMatchError{Query: query}
	}
	return best, nil
}

// normalizeName folds case and strips all separator characters, so that
// "GeoDa AirBnB", "geoda_airbnb" and "geoda.airbnb" normalize identically.
func normalizeName(s string) string {
	folded := queryFolder.String(s)
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(querySeparators, r) {
			return -1
		}
		return r
	}, folded)
}

// splitTokens folds case and splits on separator characters, dropping empties.
func splitTokens(s string) []string {
	folded := queryFolder.String(s)
	return strings.FieldsFunc(folded, func(r rune) bool {
		return strings.ContainsRune(querySeparators, r)
	})
}

// tokenScore is the mean per-token similarity of the query tokens against the
// candidate tokens. A query token scores 1 for an exact token match, 0.75
// when one token contains the other, and 0 otherwise. Pure function.
func tokenScore(queryToks, nameToks []string) float64 {
	if len(queryToks) == 0 {
		return 0
	}
	var total float64
	for _, qt := range queryToks {
		var best float64
		for _, nt := range nameToks {
			switch {
			case qt == nt:
				best = 1
			case best < 0.75 && len(qt) >= 3 && len(nt) >= 3 &&
				(strings.Contains(nt, qt) || strings.Contains(qt, nt)):
				best = 0.75
			}
			if best == 1 {
				break
			}
		}
		total += best
	}
	return total / float64(len(queryToks))
}
