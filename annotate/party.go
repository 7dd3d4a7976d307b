// Package annotate provides the per-clause annotators: party, obligation,
// cross-reference, external-reference, and keyword extraction. Every
// annotator is a pure function over its input span, built once from the
// fixed contract vocabularies; none carries cross-clause state, so callers
// may fan out per clause if they serialize final assembly.
package annotate

import (
	"regexp"
	"sort"

	"github.com/c360studio/clausegraph/vocabulary/contract"
)

// PartyExtractor detects which contract parties a text span mentions.
type PartyExtractor struct {
	patterns []partyMatcher
}

type partyMatcher struct {
	party contract.PartyType
	re    *regexp.Regexp
}

// NewPartyExtractor compiles the party lexicon into an extractor.
func NewPartyExtractor() *PartyExtractor {
	lexicon := contract.PartyPatterns()
	patterns := make([]partyMatcher, 0, len(lexicon))
	for _, p := range lexicon {
		patterns = append(patterns, partyMatcher{
			party: p.Party,
			re:    regexp.MustCompile(p.Pattern),
		})
	}
	return &PartyExtractor{patterns: patterns}
}

// Extract returns the sorted distinct party names whose lexical markers,
// including possessive forms, occur anywhere in the span.
func (e *PartyExtractor) Extract(text string) []string {
	var parties []string
	for _, m := range e.patterns {
		if m.re.MatchString(text) {
			parties = append(parties, string(m.party))
		}
	}
	sort.Strings(parties)
	return parties
}
