package services

import (
	"regexp"
	"strings"

	"bmaBack/internal/models"
)

// tagPattern matches markup tags for best-effort stripping. Unclosed tags are
// left alone rather than rejected; the stored text comes from a rich-text
// widget and is not guaranteed to be well formed.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// ExtractNumberedEntries turns a free-text field (defects, technician notes)
// into an ordered, 1-based numbered list. Tags are replaced with line breaks
// so block elements separate entries, then lines are trimmed and blanks
// dropped. Order is the original line order; duplicates are kept. Empty input
// yields an empty list, not an error.
func ExtractNumberedEntries(raw string) []models.NumberedEntry {
	entries := []models.NumberedEntry{}
	if raw == "" {
		return entries
	}

	text := tagPattern.ReplaceAllString(raw, "\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, models.NumberedEntry{No: len(entries) + 1, Text: line})
	}
	return entries
}
