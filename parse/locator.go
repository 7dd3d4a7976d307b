// Package parse implements the clause parsing engine: boundary detection
// over the full document text and per-clause assembly of the annotated
// clause tree.
package parse

import (
	"regexp"

	"github.com/c360studio/clausegraph/document"
)

// headingSkip is how far past a clause heading the search for the next
// heading begins, so the heading itself is not immediately re-matched.
const headingSkip = 100

// fallbackWindow bounds a clause span when no subsequent heading exists
// (the final clause, or a malformed document).
const fallbackWindow = 50000

// Span is the character range [Start, End) of one clause's content.
type Span struct {
	Start int
	End   int
}

// Locator finds top-level clause boundaries using the fixed title lexicon.
// Sub-clause boundaries are not detected in this pass.
type Locator struct {
	lexicon []document.Heading
}

// NewLocator creates a locator over the given clause lexicon.
func NewLocator(lexicon []document.Heading) *Locator {
	return &Locator{lexicon: lexicon}
}

// Locate finds the span of clause number n in the content. The second
// return value is false when the clause heading is absent, which is
// non-fatal: the clause is simply skipped.
//
// The span starts at the case-insensitive match of "Clause <n> <title>".
// It ends at the heading of clause n+1 when found (searching from 100
// characters past the start), otherwise at start+50000 or end-of-document,
// whichever is smaller.
func (l *Locator) Locate(content string, h document.Heading) (Span, bool) {
	// Title text is quoted so punctuation cannot alter matching semantics.
	pattern := regexp.MustCompile(`(?i)(?:Clause|CLAUSE)\s+` + h.Number + `\s+` + regexp.QuoteMeta(h.Title))
	loc := pattern.FindStringIndex(content)
	if loc == nil {
		return Span{}, false
	}
	start := loc[0]

	end := len(content)
	if next, ok := l.nextHeading(h.Number); ok {
		searchFrom := start + headingSkip
		if searchFrom > len(content) {
			searchFrom = len(content)
		}
		nextPattern := regexp.MustCompile(`(?i)(?:Clause|CLAUSE)\s+` + next + `\s+`)
		if nextLoc := nextPattern.FindStringIndex(content[searchFrom:]); nextLoc != nil {
			return Span{Start: start, End: searchFrom + nextLoc[0]}, true
		}
	}
	if start+fallbackWindow < end {
		end = start + fallbackWindow
	}
	return Span{Start: start, End: end}, true
}

// nextHeading returns the clause number that follows n in the lexicon.
func (l *Locator) nextHeading(number string) (string, bool) {
	for i, h := range l.lexicon {
		if h.Number == number {
			if i+1 < len(l.lexicon) {
				return l.lexicon[i+1].Number, true
			}
			return "", false
		}
	}
	return "", false
}

// Lexicon returns the locator's clause lexicon in document order.
func (l *Locator) Lexicon() []document.Heading {
	return l.lexicon
}
