package isoglot

import "strings"

// TokenKey returns the canonical glossary key for a single token: the
// lower-cased text for word-like tokens, the literal text for punctuation.
func TokenKey(text string, category Category) string {
	if category == CategoryPunctuation {
		return text
	}
	return strings.ToLower(text)
}

// LocutionKey returns the composite glossary key for a fused span: the
// space-joined, lower-cased source texts in original order.
func LocutionKey(texts []string) string {
	lowered := make([]string, len(texts))
	for i, t := range texts {
		lowered[i] = strings.ToLower(t)
	}
	return strings.Join(lowered, " ")
}
