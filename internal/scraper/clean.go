package scraper

import (
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CleanText NFC-normalizes scraped text, collapses runs of spaces inside
// each line, and drops blank lines. Line breaks between paragraphs stay.
func CleanText(s string) string {
	normalized, _, err := transform.String(norm.NFC, s)
	if err != nil {
		normalized = s
	}

	lines := strings.Split(normalized, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// OrDefault returns the cleaned text, or def when nothing is left.
func OrDefault(s, def string) string {
	if c := CleanText(s); c != "" {
		return c
	}
	return def
}
