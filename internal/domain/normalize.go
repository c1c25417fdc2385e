package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseTags splits a comma-separated tag string into tokens. Each token is
// trimmed and empty tokens are dropped. Duplicates are kept; the tag set of
// a link absorbs them. Never fails: blank input yields an empty slice.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, p)
	}
	return tags
}

// NormalizeTagName prepares a tag name for storage and lookup:
//   - Unicode NFC composition
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
func NormalizeTagName(name string) string {
	return NormalizeText(norm.NFC.String(name))
}

// NormalizeText trims, lowercases and compresses inner whitespace.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// UniqueTagNames normalizes names and drops duplicates, keeping first
// occurrence order.
func UniqueTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = NormalizeTagName(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// FormatTags joins tag names into the comma-separated form ParseTags reads.
func FormatTags(names []string) string {
	return strings.Join(names, ", ")
}
