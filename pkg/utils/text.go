package utils

import (
	"strings"
	"unicode/utf8"
)

// SplitParagraphs splits long-form text on blank-line boundaries and keeps
// paragraphs whose trimmed rune count exceeds minLen. This is a simple
// character-count filter; it deliberately does not try to merge short
// fragments into neighbours.
func SplitParagraphs(text string, minLen int) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")

	var paras []string
	for _, block := range strings.Split(normalized, "\n\n") {
		p := strings.TrimSpace(block)
		if utf8.RuneCountInString(p) > minLen {
			paras = append(paras, p)
		}
	}
	return paras
}

// Truncate caps a string at limit runes.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
