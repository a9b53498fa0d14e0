package utils

import (
	"strings"
)

// SplitTags derives the list form of a comma-joined tag string: split on
// comma, trim whitespace, drop empty entries, order preserved.
func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags builds the canonical stored form: comma-joined, trimmed,
// empty entries dropped.
func JoinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return strings.Join(cleaned, ",")
}

// NormalizeTags canonicalizes a raw comma-separated string as received
// from a client.
func NormalizeTags(s string) string {
	return JoinTags(strings.Split(s, ","))
}
