package isoglot

import (
	"regexp"
	"strings"
)

// Category classifies a token. The set is closed: synchronization and
// rendering switch exhaustively over it.
type Category string

const (
	// CategoryCore is a content word carrying lexical meaning.
	CategoryCore Category = "CORE"
	// CategoryParticle is a function word (article, preposition, conjunction).
	CategoryParticle Category = "PARTICLE"
	// CategoryLocution marks the head slot of a fused multi-token span.
	CategoryLocution Category = "LOCUTION"
	// CategoryPunctuation is a single punctuation mark.
	CategoryPunctuation Category = "PUNCTUATION"
)

// Token is one lexical unit produced by the tokenizer.
type Token struct {
	Text     string
	Category Category
}

// DefaultParticles is the closed set of function words classified as
// PARTICLE. The classification is advisory: it drives display and default
// glossary registration and is overridden when a span is fused.
var DefaultParticles = map[string]bool{
	// Spanish
	"el": true, "la": true, "los": true, "las": true,
	"un": true, "una": true, "unos": true, "unas": true,
	"de": true, "del": true, "al": true, "a": true, "en": true,
	"y": true, "o": true, "u": true, "e": true,
	"que": true, "no": true, "se": true, "su": true, "sus": true,
	"con": true, "por": true, "para": true, "es": true, "lo": true,
	// English
	"the": true, "an": true, "of": true, "and": true, "or": true,
	"in": true, "to": true, "is": true, "it": true, "for": true,
}

// tokenPattern matches a maximal run of word characters or a single
// non-word, non-space character. The hyphen is deliberately excluded from
// both alternatives: it acts as a pure separator, so a hyphenated compound
// like "al-ilm" tokenizes as its components and can be reassembled by
// locution fusion.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s-]`)

// wordPattern reports whether a token text is a word run (as opposed to a
// single punctuation character).
var wordPattern = regexp.MustCompile(`^[\p{L}\p{N}_]+$`)

// Tokenizer splits raw text into ordered, classified tokens.
type Tokenizer struct {
	particles map[string]bool
}

// NewTokenizer creates a tokenizer. With no arguments it uses
// DefaultParticles; otherwise the given words form the particle set.
func NewTokenizer(particles ...string) *Tokenizer {
	if len(particles) == 0 {
		return &Tokenizer{particles: DefaultParticles}
	}
	set := make(map[string]bool, len(particles))
	for _, p := range particles {
		set[strings.ToLower(p)] = true
	}
	return &Tokenizer{particles: set}
}

// Tokenize splits text into tokens. Whitespace and hyphens separate tokens
// and produce none of their own; every other character is covered.
func (t *Tokenizer) Tokenize(text string) []Token {
	matches := tokenPattern.FindAllString(text, -1)
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{Text: m, Category: t.classify(m)})
	}
	return tokens
}

// classify applies the classification rules in order: non-word text is
// punctuation, a known function word is a particle, everything else is core.
func (t *Tokenizer) classify(text string) Category {
	if !wordPattern.MatchString(text) {
		return CategoryPunctuation
	}
	if t.particles[strings.ToLower(text)] {
		return CategoryParticle
	}
	return CategoryCore
}
