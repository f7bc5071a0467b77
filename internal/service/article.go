// File: internal/service/article.go
package service

import (
	"strings"
	"unicode/utf8"
)

// excerptLimit caps the auto-generated excerpt length, in characters.
const excerptLimit = 240

// MakeExcerpt returns the provided excerpt, or the head of content when
// the excerpt is blank. The cut counts runes, not bytes, so multi-byte
// content never gets split mid-character.
func MakeExcerpt(content, excerpt string) string {
	if strings.TrimSpace(excerpt) != "" {
		return excerpt
	}
	if utf8.RuneCountInString(content) <= excerptLimit {
		return content
	}
	return string([]rune(content)[:excerptLimit])
}

// JoinCategories serializes the ordered tag list to the stored CSV form.
// Duplicates are allowed; order is preserved.
func JoinCategories(categories []string) string {
	return strings.Join(categories, ",")
}

// SplitCategories reverses JoinCategories, trimming whitespace and
// dropping empty items.
func SplitCategories(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
