package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Name folds s for case-insensitive comparison.
func Name(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Contains reports whether s contains query, ignoring case. An empty query
// matches everything.
func Contains(s, query string) bool {
	return strings.Contains(Name(s), Name(query))
}
