package onboarding

import "strings"

// Filter returns the entries of catalog whose lower-cased text contains the
// lower-cased query, preserving catalog order. An empty query returns a copy
// of the whole catalog. The result is never nil.
func Filter[T ~string](query string, catalog []T) []T {
	out := make([]T, 0, len(catalog))
	if query == "" {
		return append(out, catalog...)
	}
	lower := strings.ToLower(query)
	for _, v := range catalog {
		if strings.Contains(strings.ToLower(string(v)), lower) {
			out = append(out, v)
		}
	}
	return out
}
