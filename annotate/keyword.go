package annotate

import (
	"regexp"
	"strings"

	"github.com/c360studio/clausegraph/vocabulary/contract"
)

// maxKeywords caps the keyword set per clause.
const maxKeywords = 15

// KeywordExtractor builds a bounded keyword set from a clause title and span.
type KeywordExtractor struct {
	word      *regexp.Regexp
	capPhrase *regexp.Regexp
	stopWords map[string]bool
}

// NewKeywordExtractor compiles the tokenizer patterns and stop-word set.
func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{
		word:      regexp.MustCompile(`\w+`),
		capPhrase: regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`),
		stopWords: contract.StopWords(),
	}
}

// Extract returns at most 15 keywords, alphabetically sorted: lower-cased
// title tokens minus stop words, unioned with lower-cased capitalized
// multi-word phrases longer than 3 characters found in the span. Truncation
// is alphabetical, not relevance-ranked, so late-alphabet terms can drop.
func (e *KeywordExtractor) Extract(text, title string) []string {
	keywords := make(map[string]bool)

	for _, w := range e.word.FindAllString(title, -1) {
		lower := strings.ToLower(w)
		if !e.stopWords[lower] {
			keywords[lower] = true
		}
	}

	for _, phrase := range e.capPhrase.FindAllString(text, -1) {
		if len(phrase) > 3 {
			keywords[strings.ToLower(phrase)] = true
		}
	}

	sorted := sortedKeys(keywords)
	if len(sorted) > maxKeywords {
		sorted = sorted[:maxKeywords]
	}
	return sorted
}
