package search

import (
	"regexp"
	"strings"
)

var tokenRegex = regexp.MustCompile(`(?i)[A-Za-z0-9_]+`)

var stopWords = map[string]bool{
	"the": true, "and": true, "of": true, "in": true, "to": true,
	"for": true, "on": true, "with": true, "a": true, "an": true,
	"or": true, "any": true, "this": true, "its": true,
}

// Tokenize lowercases, splits on word boundaries and drops stop words and
// duplicates, preserving first-seen order.
func Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	matches := tokenRegex.FindAllString(text, -1)

	out := make([]string, 0, len(matches))
	seen := map[string]struct{}{}
	for _, m := range matches {
		t := strings.ToLower(m)
		if stopWords[t] {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
