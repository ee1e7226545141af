// Package strings provides string helpers shared by configuration parsing.
package strings

import "strings"

// SplitList splits a comma-separated value, trimming each element and
// dropping empties and duplicates. Order is preserved.
//
//	SplitList(" a, b,,a ") // []string{"a", "b"}
func SplitList(raw string) []string {
	return splitList(raw, false)
}

// SplitListLower is SplitList with case-insensitive deduplication; elements
// are returned lowercased.
func SplitListLower(raw string) []string {
	return splitList(raw, true)
}

func splitList(raw string, lower bool) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if lower {
			p = strings.ToLower(p)
		}
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}
