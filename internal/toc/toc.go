// Package toc extracts the on-page table of contents from a Markdown body.
package toc

import (
	"regexp"
	"strings"
)

// Entry is one second- or third-level heading.
type Entry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

var (
	headingRE = regexp.MustCompile(`(?m)^(#{2,3})[ \t]+([^\r\n]+)`)
	nonAnchor = regexp.MustCompile(`[^a-z0-9]+`)
)

// Extract returns the level-2 and level-3 ATX headings of body in document order.
// Headings of any other level are ignored, and code spans lose their backticks.
// Every matching line yields an entry, even when nothing is left of its text.
func Extract(body string) []Entry {
	matches := headingRE.FindAllStringSubmatch(body, -1)
	entries := make([]Entry, 0, len(matches))
	for _, m := range matches {
		text := strings.ReplaceAll(m[2], "`", "")
		entries = append(entries, Entry{
			ID:    Anchor(text),
			Text:  text,
			Level: len(m[1]),
		})
	}
	return entries
}

// Anchor derives the fragment identifier for a heading: lowercase, every run of
// characters outside [a-z0-9] collapsed to a single hyphen, outer hyphens trimmed.
func Anchor(text string) string {
	return strings.Trim(nonAnchor.ReplaceAllString(strings.ToLower(text), "-"), "-")
}
