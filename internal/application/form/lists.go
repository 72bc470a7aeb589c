package form

import (
	"slices"
	"strings"
)

// AddUnique appends the trimmed value unless it is blank or already present.
// It reports whether the list changed.
func AddUnique(list []string, value string) ([]string, bool) {
	value = strings.TrimSpace(value)
	if value == "" || slices.Contains(list, value) {
		return list, false
	}
	return append(slices.Clone(list), value), true
}

// Remove drops every occurrence of value
func Remove(list []string, value string) []string {
	return slices.DeleteFunc(slices.Clone(list), func(s string) bool { return s == value })
}

// RemoveAt drops the element at index i; out of range indexes are ignored
func RemoveAt[E any](list []E, i int) []E {
	if i < 0 || i >= len(list) {
		return list
	}
	return slices.Delete(slices.Clone(list), i, i+1)
}

// SplitList parses a comma separated list, trimming and de-duplicating
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		out, _ = AddUnique(out, part)
	}
	return out
}
