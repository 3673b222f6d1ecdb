package property

import "strings"

// NormalizeImageURLs trims every entry and drops blanks, preserving order.
// Duplicates are kept; the admin console relies on positional ordering.
// The result is not capped; Validate rejects lists over MaxImages so an
// oversized upload fails loudly instead of being silently truncated.
func NormalizeImageURLs(urls []string) []string {
	cleaned := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		cleaned = append(cleaned, u)
	}
	return cleaned
}
