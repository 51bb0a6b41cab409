package search

import (
	"regexp"
	"strings"
)

// -------------------------
// Tokenization
// -------------------------

var tokenRegex = regexp.MustCompile(`[A-Za-z0-9]+`)
var stopWords = map[string]bool{
	"the": true, "and": true, "of": true, "in": true, "to": true,
	"for": true, "on": true, "with": true, "a": true, "an": true,
}

// Tokenize lowercases the text and splits it into unique alphanumeric
// tokens, dropping stopwords. Order of first occurrence is preserved.
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
