package utils

import "strings"

// NormalizeMessage lowercases text for keyword matching and folds typographic
// apostrophes so "can’t" matches "can't".
func NormalizeMessage(text string) string {
	text = strings.ReplaceAll(text, "’", "'")
	text = strings.ReplaceAll(text, "‘", "'")
	return strings.ToLower(text)
}

// ContainsAny reports whether text contains any of the keywords.
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
